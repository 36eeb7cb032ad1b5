package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupFeedRoutes(v1, c)
		setupContactRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Reads are public.
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/:id", c.PostHandler.GetPost)
	}

	// Post mutations are admin-only; the service enforces the same rule
	// so the middleware is a first line, not the only one.
	adminPosts := v1.Group("/posts")
	adminPosts.Use(middleware.Auth(c.JWTManager), middleware.RequireAdmin())
	{
		adminPosts.POST("", c.PostHandler.CreatePost)
		adminPosts.PUT("/:id", c.PostHandler.UpdatePost)
		adminPosts.DELETE("/:id", c.PostHandler.DeletePost)
	}

	// Any authenticated user may comment.
	comments := v1.Group("/posts")
	comments.Use(middleware.Auth(c.JWTManager))
	{
		comments.POST("/:id/comments", c.PostHandler.AddComment)
	}
}

// ========================================
// FEED ROUTES
// ========================================
func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	feed := v1.Group("/feed")
	{
		feed.GET("", c.FeedHandler.ListRecords)
		feed.GET("/:id", c.FeedHandler.GetRecord)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/contact", c.ContactHandler.SubmitMessage)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Backend,
		}

		dbStatus := "ok"
		if appCtx.Config.Storage.Backend == "memory" {
			dbStatus = "memory"
		} else if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
