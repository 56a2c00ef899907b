package repository

import (
	"context"
	"fmt"

	"bookhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// RatingStats is one row of the per-book AVG/COUNT aggregation.
type RatingStats struct {
	BookID  string
	Average float64
	Count   int64
}

// RatingBucket is one row of the per-rating histogram aggregation.
type RatingBucket struct {
	Rating int
	Count  int64
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
	DeleteByBook(ctx context.Context, bookID string) error
	FindByBookAndUser(ctx context.Context, bookID, userID string) (*models.Review, error)
	FindByBook(ctx context.Context, bookID string, page, pageSize int) ([]models.Review, int64, error)
	FindByUser(ctx context.Context, userID string, page, pageSize int) ([]models.Review, int64, error)
	FindAllByUser(ctx context.Context, userID string) ([]models.Review, error)
	StatsForBooks(ctx context.Context, bookIDs []string) ([]RatingStats, error)
	StatsForBook(ctx context.Context, bookID string) (*RatingStats, error)
	DistributionForBook(ctx context.Context, bookID string) ([]RatingBucket, error)
	StatsForUser(ctx context.Context, userID string) (*RatingStats, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// FindByID retrieves a review with its author and book loaded
func (r *reviewRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Book").
		First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Update an existing review
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete a review by id
func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// DeleteByBook removes every review referencing the book (cascade delete).
func (r *reviewRepository) DeleteByBook(ctx context.Context, bookID string) error {
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("delete reviews by book: %w", err)
	}
	return nil
}

// FindByBookAndUser retrieves a user's review for a specific book
func (r *reviewRepository) FindByBookAndUser(ctx context.Context, bookID, userID string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByBook retrieves reviews for a book, newest first, with pagination
func (r *reviewRepository) FindByBook(ctx context.Context, bookID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("book_id = ?", bookID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// FindByUser retrieves reviews authored by a user, newest first, with pagination
func (r *reviewRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Book").
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// FindAllByUser retrieves every review authored by a user, newest first
func (r *reviewRepository) FindAllByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("find reviews by user: %w", err)
	}
	return reviews, nil
}

// StatsForBooks computes AVG(rating) and COUNT(*) grouped by book for the
// given set of books in a single query. Books without reviews produce no row.
func (r *reviewRepository) StatsForBooks(ctx context.Context, bookIDs []string) ([]RatingStats, error) {
	var stats []RatingStats
	if len(bookIDs) == 0 {
		return stats, nil
	}
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("book_id, COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("book_id IN ?", bookIDs).
		Group("book_id").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("stats for books: %w", err)
	}
	return stats, nil
}

// StatsForBook computes AVG(rating) and COUNT(*) for a single book.
func (r *reviewRepository) StatsForBook(ctx context.Context, bookID string) (*RatingStats, error) {
	stats := RatingStats{BookID: bookID}
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("stats for book: %w", err)
	}
	return &stats, nil
}

// DistributionForBook counts reviews grouped by rating value. Ratings with
// no reviews produce no row; zero-filling happens in the service layer.
func (r *reviewRepository) DistributionForBook(ctx context.Context, bookID string) ([]RatingBucket, error) {
	var buckets []RatingBucket
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Group("rating").
		Scan(&buckets).Error; err != nil {
		return nil, fmt.Errorf("distribution for book: %w", err)
	}
	return buckets, nil
}

// StatsForUser computes the count and mean of ratings the user has given.
func (r *reviewRepository) StatsForUser(ctx context.Context, userID string) (*RatingStats, error) {
	var stats RatingStats
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("stats for user: %w", err)
	}
	return &stats, nil
}
