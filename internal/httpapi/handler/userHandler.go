package handler

import (
	"errors"
	"net/http"

	"bookhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the public profile route
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/users/:id", h.GetProfile)
}

// GetProfile retrieves a user with their books, reviews and statistics
// GET /users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID format"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
