package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bookhub/internal/httpapi/dto"
	"bookhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes. Adding a review hangs off the
// book resource; the per-user listing is public.
func (h *ReviewHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/books/:id/reviews", auth, h.Add)

	reviews := r.Group("/reviews")
	{
		reviews.PUT("/:id", auth, h.Update)
		reviews.DELETE("/:id", auth, h.Delete)
		reviews.GET("/user/:userId", h.ListByUser)
	}
}

// Add posts a review on a book by the authenticated caller
// POST /books/:id/reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating is required and must be between 1 and 5"})
		return
	}

	review, err := h.reviewService.Add(c.Request.Context(), c.Param("id"), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating is required and must be between 1 and 5"})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		case errors.Is(err, service.ErrAlreadyReviewed):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already reviewed this book. You can update your existing review instead."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added successfully",
		"review":  review,
	})
}

// Update merges rating/text over the caller's own review
// PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review fields"})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), c.Param("id"), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		case errors.Is(err, service.ErrNotReviewAuthor):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only update your own reviews"})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// Delete removes the caller's own review
// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		case errors.Is(err, service.ErrNotReviewAuthor):
			c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own reviews"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// ListByUser retrieves a page of reviews authored by a user
// GET /reviews/user/:userId?page
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	resp, err := h.reviewService.ListByUser(c.Request.Context(), c.Param("userId"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
