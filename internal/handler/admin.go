package handler

import (
	"net/http"

	"wagehire/internal/model"
	"wagehire/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	users      *service.UserService
	interviews *service.InterviewService
}

func NewAdminHandler(users *service.UserService, interviews *service.InterviewService) *AdminHandler {
	return &AdminHandler{users: users, interviews: interviews}
}

// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.interviews.AdminDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GET /api/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/admin/interviews
func (h *AdminHandler) Interviews(c *gin.Context) {
	ivs, err := h.interviews.List(c.Request.Context(), "", model.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if ivs == nil {
		ivs = []model.Interview{}
	}
	c.JSON(http.StatusOK, ivs)
}
