package dto

import (
	"time"

	"bookhub/internal/httpapi/models"
)

// CreateReviewRequest: payload for posting a review on a book
type CreateReviewRequest struct {
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
	ReviewText *string `json:"reviewText"`
}

// UpdateReviewRequest: partial update of a review. Only rating and text are
// mutable; the book and author references are fixed at creation.
type UpdateReviewRequest struct {
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

// BookSummary: the joined book fields returned alongside a review
type BookSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ReviewResponse: a review joined with its author and book summaries
type ReviewResponse struct {
	ID         string       `json:"id"`
	Rating     int          `json:"rating"`
	ReviewText *string      `json:"reviewText,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	User       *UserSummary `json:"user,omitempty"`
	Book       *BookSummary `json:"book,omitempty"`
}

// UserReviewsResponse: paginated reviews authored by one user
type UserReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination Pagination       `json:"pagination"`
}

// FromModelToReviewResponse converts a Review model to its response DTO.
// Author and book summaries are included only when the association was
// preloaded by the repository.
func FromModelToReviewResponse(review *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
	if review.User.ID != "" {
		user := FromModelToUserSummary(&review.User)
		resp.User = &user
	}
	if review.Book.ID != "" {
		resp.Book = &BookSummary{
			ID:     review.Book.ID,
			Title:  review.Book.Title,
			Author: review.Book.Author,
		}
	}
	return resp
}
