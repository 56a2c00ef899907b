package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/models"
	"bookhub/internal/httpapi/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func TestGetProfile_Success(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.GET("/users/:id", handler.GetProfile)

	resp := &dto.ProfileResponse{
		User:    models.User{ID: "user-1", Name: "Test User", Email: "test@example.com"},
		Books:   []models.Book{},
		Reviews: []dto.ReviewResponse{},
		Stats:   dto.ProfileStats{TotalBooks: 0, TotalReviews: 0, AverageRatingGiven: 0},
	}
	mockUserService.On("GetProfile", mock.Anything, "user-1").Return(resp, nil)

	req, _ := http.NewRequest("GET", "/users/user-1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The password hash is excluded from the profile payload
	assert.NotContains(t, w.Body.String(), "password")

	var body dto.ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, "user-1", body.User.ID)
	assert.Zero(t, body.Stats.AverageRatingGiven)
}

func TestGetProfile_InvalidID(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.GET("/users/:id", handler.GetProfile)

	mockUserService.On("GetProfile", mock.Anything, "not-a-uuid").
		Return(nil, service.ErrInvalidUserID)

	req, _ := http.NewRequest("GET", "/users/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Invalid user ID format", response["message"])
}

func TestGetProfile_NotFound(t *testing.T) {
	mockUserService := new(MockUserService)
	handler := NewUserHandler(mockUserService)
	router := setupRouter()
	router.GET("/users/:id", handler.GetProfile)

	mockUserService.On("GetProfile", mock.Anything, "4f9b0f7e-3a68-4c6e-9a5a-3a2b1c0d9e8f").
		Return(nil, service.ErrUserNotFound)

	req, _ := http.NewRequest("GET", "/users/4f9b0f7e-3a68-4c6e-9a5a-3a2b1c0d9e8f", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
