package repository

import (
	"context"
	"fmt"

	"bookhub/internal/httpapi/models"

	"gorm.io/gorm"
)

// BookFilter carries the optional list filters from the query string.
type BookFilter struct {
	Search string // case-insensitive substring over title OR author OR description
	Genre  string // case-insensitive substring
	Year   int    // exact match, 0 means unset
	Sort   string // "year", "title", "author" or "" (newest first)
}

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, id string) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter BookFilter, page, pageSize int) ([]models.Book, int64, error)
	FindByUser(ctx context.Context, userID string) ([]models.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Preload("Owner").First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// List retrieves a page of books matching the filter along with the total
// matching count. Search uses ILIKE for case-insensitive partial matching;
// COALESCE avoids NULL description/genre breaking the comparison.
func (r *bookRepository) List(ctx context.Context, filter BookFilter, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	// Count total matching records
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Book{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Secondary order on id keeps page boundaries stable when the primary
	// sort key collides, so concatenated pages never duplicate or drop rows.
	order := "created_at DESC, id DESC"
	switch filter.Sort {
	case "year":
		order = "year DESC NULLS LAST, id DESC"
	case "title":
		order = "title ASC, id ASC"
	case "author":
		order = "author ASC, id ASC"
	}

	offset := (page - 1) * pageSize
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Owner").
		Order(order).
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *bookRepository) applyFilter(db *gorm.DB, filter BookFilter) *gorm.DB {
	if filter.Search != "" {
		p := "%" + filter.Search + "%"
		db = db.Where("title ILIKE ? OR author ILIKE ? OR COALESCE(description, '') ILIKE ?", p, p, p)
	}
	if filter.Genre != "" {
		db = db.Where("COALESCE(genre, '') ILIKE ?", "%"+filter.Genre+"%")
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	return db
}

func (r *bookRepository) FindByUser(ctx context.Context, userID string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("added_by = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find books by user: %w", err)
	}
	return list, nil
}
