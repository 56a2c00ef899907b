package service

import (
	"context"
	"errors"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidUserID = errors.New("invalid user id format")

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
}

type userService struct {
	userRepo   repository.UserRepository
	bookRepo   repository.BookRepository
	reviewRepo repository.ReviewRepository
}

func NewUserService(userRepo repository.UserRepository, bookRepo repository.BookRepository, reviewRepo repository.ReviewRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
	}
}

// GetProfile returns the user, everything they own (books and reviews,
// newest first, unpaginated) and their summary statistics.
func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	books, err := s.bookRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewRepo.StatsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, dto.FromModelToReviewResponse(&reviews[i]))
	}

	return &dto.ProfileResponse{
		User:    *user,
		Books:   books,
		Reviews: reviewResponses,
		Stats: dto.ProfileStats{
			TotalBooks:         int64(len(books)),
			TotalReviews:       stats.Count,
			AverageRatingGiven: roundRating(stats.Average),
		},
	}, nil
}
