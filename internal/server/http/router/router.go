package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(cfg *config.Config, facade handlers.OrderDeskFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger.With("component", "http")))
	engine.Use(middleware.DecompressRequest(middleware.MaxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	authHandler := handlers.NewAuthHandler(facade, cfg.CookieSecure)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.GET("/catalog", orderHandler.Catalog)
	api.POST("/orders", orderHandler.Submit)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)

	adminAuth := admin.Group("/orders")
	adminAuth.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleAdmin))
	adminAuth.GET("", adminHandler.List)
	adminAuth.GET("/stats", adminHandler.Stats)
	adminAuth.GET("/export", adminHandler.Export)
	adminAuth.PATCH("/:id/status", adminHandler.UpdateStatus)
	adminAuth.PATCH("/:id/notes", adminHandler.UpdateNotes)
	adminAuth.DELETE("/:id", adminHandler.Delete)

	return engine
}
