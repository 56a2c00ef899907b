package dto

import "bookhub/internal/httpapi/models"

// CreateBookRequest: payload for adding a book to the catalog
type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Author      string  `json:"author" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Genre       *string `json:"genre" binding:"omitempty,max=50"`
	Year        *int    `json:"year"`
}

// UpdateBookRequest: partial update, every field optional. The owner
// reference is deliberately absent - only these fields are mutable.
type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Author      *string `json:"author" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Genre       *string `json:"genre" binding:"omitempty,max=50"`
	Year        *int    `json:"year"`
}

// BookQuery: query string parameters accepted by GET /books
type BookQuery struct {
	Page   int    `form:"page,default=1"`
	Search string `form:"search"`
	Genre  string `form:"genre"`
	Year   int    `form:"year"`
	Sort   string `form:"sort" binding:"omitempty,oneof=year title author"`
}

// BookWithRating: a catalog entry enriched with its review statistics
type BookWithRating struct {
	models.Book
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int64   `json:"reviewsCount"`
}

// BookListResponse: paginated catalog page, pagination fields flattened
type BookListResponse struct {
	Data []BookWithRating `json:"data"`
	Pagination
}

// BookDetailsResponse: a single book with a page of its reviews and the
// aggregate rating statistics
type BookDetailsResponse struct {
	Book               models.Book      `json:"book"`
	Reviews            []ReviewResponse `json:"reviews"`
	AverageRating      float64          `json:"averageRating"`
	ReviewsCount       int64            `json:"reviewsCount"`
	RatingDistribution map[int]int64    `json:"ratingDistribution"`
	ReviewPagination   Pagination       `json:"reviewPagination"`
}
