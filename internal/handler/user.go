package handler

import (
	"errors"
	"net/http"

	"wagehire/internal/middleware"
	"wagehire/internal/model"
	"wagehire/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users      *service.UserService
	interviews *service.InterviewService
}

func NewUserHandler(users *service.UserService, interviews *service.InterviewService) *UserHandler {
	return &UserHandler{users: users, interviews: interviews}
}

// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/users/me/dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	stats, err := h.interviews.Dashboard(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
