package service

import (
	"context"
	"testing"

	"bookhub/internal/httpapi/models"
	"bookhub/internal/httpapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const profileUserID = "4f9b0f7e-3a68-4c6e-9a5a-3a2b1c0d9e8f"

func TestGetProfile_InvalidID(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	svc := NewUserService(mockUserRepo, mockBookRepo, mockReviewRepo)

	_, err := svc.GetProfile(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidUserID)
	mockUserRepo.AssertNotCalled(t, "FindByID")
}

func TestGetProfile_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	svc := NewUserService(mockUserRepo, mockBookRepo, mockReviewRepo)

	mockUserRepo.On("FindByID", mock.Anything, profileUserID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(context.Background(), profileUserID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_Aggregates(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockBookRepo := new(MockBookRepository)
	mockReviewRepo := new(MockReviewRepository)
	svc := NewUserService(mockUserRepo, mockBookRepo, mockReviewRepo)

	user := &models.User{ID: profileUserID, Name: "Test User", Email: "test@example.com"}
	mockUserRepo.On("FindByID", mock.Anything, profileUserID).Return(user, nil)
	mockBookRepo.On("FindByUser", mock.Anything, profileUserID).
		Return([]models.Book{{ID: "book-1"}, {ID: "book-2"}}, nil)
	mockReviewRepo.On("FindAllByUser", mock.Anything, profileUserID).
		Return([]models.Review{{ID: "review-1", Rating: 5}, {ID: "review-2", Rating: 4}, {ID: "review-3", Rating: 4}}, nil)
	mockReviewRepo.On("StatsForUser", mock.Anything, profileUserID).
		Return(&repository.RatingStats{Average: 13.0 / 3.0, Count: 3}, nil)

	resp, err := svc.GetProfile(context.Background(), profileUserID)

	assert.NoError(t, err)
	assert.Equal(t, profileUserID, resp.User.ID)
	assert.Len(t, resp.Books, 2)
	assert.Len(t, resp.Reviews, 3)
	assert.Equal(t, int64(2), resp.Stats.TotalBooks)
	assert.Equal(t, int64(3), resp.Stats.TotalReviews)
	assert.Equal(t, 4.3, resp.Stats.AverageRatingGiven)
}
