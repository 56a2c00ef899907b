package dto

import "bookhub/internal/httpapi/models"

// ProfileStats: summary statistics shown on a user profile
type ProfileStats struct {
	TotalBooks         int64   `json:"totalBooks"`
	TotalReviews       int64   `json:"totalReviews"`
	AverageRatingGiven float64 `json:"averageRatingGiven"`
}

// ProfileResponse: a user with everything they own - books, reviews, stats
type ProfileResponse struct {
	User    models.User      `json:"user"`
	Books   []models.Book    `json:"books"`
	Reviews []ReviewResponse `json:"reviews"`
	Stats   ProfileStats     `json:"stats"`
}
