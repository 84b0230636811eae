package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"wagehire/internal/config"
	"wagehire/internal/handler"
	"wagehire/internal/logger"
	"wagehire/internal/middleware"
	"wagehire/internal/repository"
	"wagehire/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if cfg.JWT.Secret == "" {
		slog.Error("jwt secret not configured")
		os.Exit(1)
	}
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)

	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo)
	interviewSvc := service.NewInterviewService(interviewRepo, userRepo)

	secret := []byte(cfg.JWT.Secret)
	ttl := time.Duration(cfg.JWT.TTLHours) * time.Hour

	authH := handler.NewAuthHandler(authSvc, secret, ttl)
	userH := handler.NewUserHandler(userSvc, interviewSvc)
	interviewH := handler.NewInterviewHandler(interviewSvc)
	adminH := handler.NewAdminHandler(userSvc, interviewSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/auth/register", authH.Register)
	r.POST("/api/auth/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth(secret, ttl))
	api.GET("/users/me", userH.Me)
	api.PUT("/users/me", userH.UpdateMe)
	api.GET("/users/me/dashboard", userH.Dashboard)

	api.POST("/interviews", interviewH.Create)
	api.GET("/interviews", interviewH.List)
	api.GET("/interviews/export", interviewH.Export)
	api.POST("/interviews/import", interviewH.Import)
	api.GET("/interviews/:id", interviewH.Get)
	api.PUT("/interviews/:id", interviewH.Update)
	api.DELETE("/interviews/:id", interviewH.Delete)

	admin := api.Group("/admin", middleware.AdminOnly())
	admin.GET("/dashboard", adminH.Dashboard)
	admin.GET("/users", adminH.Users)
	admin.GET("/interviews", adminH.Interviews)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
