package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes registers book catalog routes. Reads are public, writes go
// through the auth middleware.
func (h *BookHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	books := r.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/:id", h.GetDetails)
		books.POST("", auth, h.Create)
		books.PUT("/:id", auth, h.Update)
		books.DELETE("/:id", auth, h.Delete)
	}
}

// Create adds a book owned by the authenticated caller
// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and author are required"})
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), userID.(string), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidYear) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid publication year"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book created successfully",
		"book":    book,
	})
}

// List retrieves a filtered, sorted catalog page with rating enrichment
// GET /books?page&search&genre&year&sort
func (h *BookHandler) List(c *gin.Context) {
	var query dto.BookQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}

	resp, err := h.bookService.List(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDetails retrieves a book with a page of reviews and rating statistics
// GET /books/:id?reviewPage
func (h *BookHandler) GetDetails(c *gin.Context) {
	reviewPage, _ := strconv.Atoi(c.DefaultQuery("reviewPage", "1"))

	resp, err := h.bookService.GetDetails(c.Request.Context(), c.Param("id"), reviewPage)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update merges the supplied fields over the caller's own book
// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid book fields"})
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), c.Param("id"), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		case errors.Is(err, service.ErrNotBookOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only update books you created"})
		case errors.Is(err, service.ErrInvalidYear):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid publication year"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book updated successfully",
		"book":    book,
	})
}

// Delete removes the caller's own book and all of its reviews
// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		case errors.Is(err, service.ErrNotBookOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete books you created"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book and all associated reviews deleted successfully",
	})
}
