package handler

import (
	"errors"
	"net/http"
	"time"

	"wagehire/internal/logger"
	"wagehire/internal/middleware"
	"wagehire/internal/model"
	"wagehire/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      *service.AuthService
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthHandler(auth *service.AuthService, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		logger.Error("register.failed", "email", req.Email, "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "registration unavailable"})
		return
	}

	logger.Info("register.ok", "uid", user.ID, "role", user.Role)

	token, err := middleware.NewToken(h.jwtSecret, user, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}
	c.JSON(http.StatusCreated, model.AuthResponse{
		User:    *user,
		Token:   token,
		IsAdmin: user.Role == model.RoleAdmin,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warn("login.failed", "email", req.Email)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		logger.Error("login.error", "email", req.Email, "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "login unavailable"})
		return
	}

	logger.Info("login.ok", "uid", user.ID, "name", user.Name)

	token, err := middleware.NewToken(h.jwtSecret, user, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{
		User:    *user,
		Token:   token,
		IsAdmin: user.Role == model.RoleAdmin,
	})
}
