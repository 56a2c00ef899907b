package service

import (
	"context"
	"errors"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/models"
	"bookhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewAuthor = errors.New("not the review author")
	ErrAlreadyReviewed = errors.New("book already reviewed by this user")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	Add(ctx context.Context, bookID, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, reviewID, userID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, reviewID, userID string) error
	ListByUser(ctx context.Context, userID string, page int) (*dto.UserReviewsResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// Add posts a review on a book. A user gets one review per book; the rule
// is a pre-insert existence check, so two concurrent Adds can both pass it.
func (s *reviewService) Add(ctx context.Context, bookID, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// Check if book exists
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// Check if user already reviewed this book
	if _, err := s.reviewRepo.FindByBookAndUser(ctx, bookID, userID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		BookID:     bookID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Reload with author and book summaries
	created, err := s.reviewRepo.FindByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToReviewResponse(created)
	return &resp, nil
}

// Update merges rating and text over an existing review. Only the author
// may update; the book and user references are immutable.
func (s *reviewService) Update(ctx context.Context, reviewID, userID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrNotReviewAuthor
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *req.Rating
	}
	if req.ReviewText != nil {
		review.ReviewText = req.ReviewText
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	resp := dto.FromModelToReviewResponse(review)
	return &resp, nil
}

// Delete removes a review; only its author may do so.
func (s *reviewService) Delete(ctx context.Context, reviewID, userID string) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrNotReviewAuthor
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

// ListByUser retrieves one page of a user's reviews, newest first, each
// joined with its book's title and author.
func (s *reviewService) ListByUser(ctx context.Context, userID string, page int) (*dto.UserReviewsResponse, error) {
	if page < 1 {
		page = 1
	}

	reviews, total, err := s.reviewRepo.FindByUser(ctx, userID, page, reviewPageSize)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, dto.FromModelToReviewResponse(&reviews[i]))
	}

	return &dto.UserReviewsResponse{
		Reviews:    reviewResponses,
		Pagination: dto.NewPagination(page, reviewPageSize, total),
	}, nil
}
