package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/models"
	"bookhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookService mocks the BookService interface
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Create(ctx context.Context, ownerID string, req *dto.CreateBookRequest) (*models.Book, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) List(ctx context.Context, query *dto.BookQuery) (*dto.BookListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookListResponse), args.Error(1)
}

func (m *MockBookService) GetDetails(ctx context.Context, id string, reviewPage int) (*dto.BookDetailsResponse, error) {
	args := m.Called(ctx, id, reviewPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookDetailsResponse), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, id, callerID string, req *dto.UpdateBookRequest) (*models.Book, error) {
	args := m.Called(ctx, id, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, id, callerID string) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}

// setUser fakes the auth middleware by placing an identity in the context.
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func TestCreateBook_Success(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.POST("/books", setUser("user-1"), handler.Create)

	book := &models.Book{ID: "book-1", Title: "Dune", Author: "Frank Herbert", AddedBy: "user-1"}
	mockBookService.On("Create", mock.Anything, "user-1", mock.AnythingOfType("*dto.CreateBookRequest")).
		Return(book, nil)

	body, _ := json.Marshal(dto.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"})
	req, _ := http.NewRequest("POST", "/books", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Book created successfully", response["message"])

	mockBookService.AssertExpectations(t)
}

func TestCreateBook_MissingTitle(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.POST("/books", setUser("user-1"), handler.Create)

	body, _ := json.Marshal(map[string]string{"author": "Frank Herbert"})
	req, _ := http.NewRequest("POST", "/books", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Title and author are required", response["message"])
	mockBookService.AssertNotCalled(t, "Create")
}

func TestListBooks_PassesFilters(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.GET("/books", handler.List)

	resp := &dto.BookListResponse{
		Data:       []dto.BookWithRating{},
		Pagination: dto.NewPagination(2, 5, 12),
	}
	mockBookService.On("List", mock.Anything, &dto.BookQuery{
		Page:   2,
		Search: "dune",
		Genre:  "scifi",
		Year:   1965,
		Sort:   "title",
	}).Return(resp, nil)

	req, _ := http.NewRequest("GET", "/books?page=2&search=dune&genre=scifi&year=1965&sort=title", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.BookListResponse
	json.Unmarshal(w.Body.Bytes(), &body)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, int64(12), body.Total)
	assert.True(t, body.HasNextPage)
	assert.True(t, body.HasPrevPage)

	mockBookService.AssertExpectations(t)
}

func TestGetBookDetails_NotFound(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.GET("/books/:id", handler.GetDetails)

	mockBookService.On("GetDetails", mock.Anything, "missing", 1).
		Return(nil, service.ErrBookNotFound)

	req, _ := http.NewRequest("GET", "/books/missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Book not found", response["message"])
}

func TestUpdateBook_Forbidden(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.PUT("/books/:id", setUser("intruder"), handler.Update)

	mockBookService.On("Update", mock.Anything, "book-1", "intruder", mock.AnythingOfType("*dto.UpdateBookRequest")).
		Return(nil, service.ErrNotBookOwner)

	title := "Hijacked"
	body, _ := json.Marshal(dto.UpdateBookRequest{Title: &title})
	req, _ := http.NewRequest("PUT", "/books/book-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "You can only update books you created", response["message"])
}

func TestDeleteBook_Success(t *testing.T) {
	mockBookService := new(MockBookService)
	handler := NewBookHandler(mockBookService)
	router := setupRouter()
	router.DELETE("/books/:id", setUser("user-1"), handler.Delete)

	mockBookService.On("Delete", mock.Anything, "book-1", "user-1").Return(nil)

	req, _ := http.NewRequest("DELETE", "/books/book-1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Book and all associated reviews deleted successfully", response["message"])

	mockBookService.AssertExpectations(t)
}
