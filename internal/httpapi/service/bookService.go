package service

import (
	"context"
	"errors"
	"math"
	"time"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/models"
	"bookhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotBookOwner = errors.New("not the book owner")
	ErrInvalidYear  = errors.New("invalid publication year")
)

// Fixed page sizes of the catalog and of the review slice on book details.
const (
	bookPageSize   = 5
	reviewPageSize = 10
)

type BookService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreateBookRequest) (*models.Book, error)
	List(ctx context.Context, query *dto.BookQuery) (*dto.BookListResponse, error)
	GetDetails(ctx context.Context, id string, reviewPage int) (*dto.BookDetailsResponse, error)
	Update(ctx context.Context, id, callerID string, req *dto.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, id, callerID string) error
}

type bookService struct {
	bookRepo   repository.BookRepository
	reviewRepo repository.ReviewRepository
}

func NewBookService(bookRepo repository.BookRepository, reviewRepo repository.ReviewRepository) BookService {
	return &bookService{
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
	}
}

// Create persists a new book owned by the caller.
func (s *bookService) Create(ctx context.Context, ownerID string, req *dto.CreateBookRequest) (*models.Book, error) {
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genre:       req.Genre,
		Year:        req.Year,
		AddedBy:     ownerID,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// List retrieves one catalog page matching the filters, each book enriched
// with its average rating and review count from a single grouped query.
func (s *bookService) List(ctx context.Context, query *dto.BookQuery) (*dto.BookListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	filter := repository.BookFilter{
		Search: query.Search,
		Genre:  query.Genre,
		Year:   query.Year,
		Sort:   query.Sort,
	}

	books, total, err := s.bookRepo.List(ctx, filter, page, bookPageSize)
	if err != nil {
		return nil, err
	}

	bookIDs := make([]string, 0, len(books))
	for _, b := range books {
		bookIDs = append(bookIDs, b.ID)
	}

	stats, err := s.reviewRepo.StatsForBooks(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	statsByBook := make(map[string]repository.RatingStats, len(stats))
	for _, st := range stats {
		statsByBook[st.BookID] = st
	}

	data := make([]dto.BookWithRating, 0, len(books))
	for _, b := range books {
		st := statsByBook[b.ID] // zero value when the book has no reviews
		data = append(data, dto.BookWithRating{
			Book:          b,
			AverageRating: roundRating(st.Average),
			ReviewsCount:  st.Count,
		})
	}

	return &dto.BookListResponse{
		Data:       data,
		Pagination: dto.NewPagination(page, bookPageSize, total),
	}, nil
}

// GetDetails retrieves a book, one page of its reviews (newest first) and
// the aggregate rating statistics including the 1..5 histogram.
func (s *bookService) GetDetails(ctx context.Context, id string, reviewPage int) (*dto.BookDetailsResponse, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if reviewPage < 1 {
		reviewPage = 1
	}

	reviews, totalReviews, err := s.reviewRepo.FindByBook(ctx, id, reviewPage, reviewPageSize)
	if err != nil {
		return nil, err
	}

	stats, err := s.reviewRepo.StatsForBook(ctx, id)
	if err != nil {
		return nil, err
	}

	buckets, err := s.reviewRepo.DistributionForBook(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, dto.FromModelToReviewResponse(&reviews[i]))
	}

	return &dto.BookDetailsResponse{
		Book:               *book,
		Reviews:            reviewResponses,
		AverageRating:      roundRating(stats.Average),
		ReviewsCount:       stats.Count,
		RatingDistribution: fillDistribution(buckets),
		ReviewPagination:   dto.NewPagination(reviewPage, reviewPageSize, totalReviews),
	}, nil
}

// Update merges the allow-listed fields over the existing record. Only the
// owner may update; the owner reference itself is immutable.
func (s *bookService) Update(ctx context.Context, id, callerID string, req *dto.UpdateBookRequest) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if book.AddedBy != callerID {
		return nil, ErrNotBookOwner
	}

	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Description != nil {
		book.Description = req.Description
	}
	if req.Genre != nil {
		book.Genre = req.Genre
	}
	if req.Year != nil {
		book.Year = req.Year
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// Delete removes a book and all reviews referencing it. The two deletes are
// independent store calls; a crash in between leaves orphaned reviews.
func (s *bookService) Delete(ctx context.Context, id, callerID string) error {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if book.AddedBy != callerID {
		return ErrNotBookOwner
	}

	// Delete associated reviews first
	if err := s.reviewRepo.DeleteByBook(ctx, id); err != nil {
		return err
	}

	return s.bookRepo.Delete(ctx, id)
}

func validateYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year < 1000 || *year > time.Now().Year()+1 {
		return ErrInvalidYear
	}
	return nil
}

// roundRating rounds an average rating to one decimal place.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// fillDistribution turns the sparse histogram rows into a complete 1..5 map
// with zero counts for absent ratings.
func fillDistribution(buckets []repository.RatingBucket) map[int]int64 {
	distribution := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, b := range buckets {
		if b.Rating >= 1 && b.Rating <= 5 {
			distribution[b.Rating] = b.Count
		}
	}
	return distribution
}
