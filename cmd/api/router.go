package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/pkg/container"
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
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupPostRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupAdRoutes(v1, c)
		setupNewsletterRoutes(v1, c)
	}

	return router
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/featured", c.PostHandler.GetFeaturedPosts)
		posts.GET("/trending", c.PostHandler.GetTrendingPosts)
		posts.GET("/:slug", c.PostHandler.GetPostDetail)
		posts.GET("/:slug/related", c.PostHandler.GetRelatedPosts)
		posts.GET("/:slug/adjacent", c.PostHandler.GetAdjacentPosts)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.ListCategories)
		categories.GET("/:slug", c.CategoryHandler.GetCategoryBySlug)
		categories.GET("/:slug/posts", c.PostHandler.GetPostsByCategory)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		// Listing filters by ?post={post_id}
		comments.GET("", c.CommentHandler.ListComments)

		// Authentication is optional: a valid bearer token attributes
		// the comment to its author, everything else stays anonymous.
		comments.POST("/create", middleware.OptionalAuth(c.JWTManager), c.CommentHandler.CreateComment)
	}
}

// ========================================
// AD ROUTES
// ========================================
func setupAdRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ads := v1.Group("/ads")
	{
		ads.GET("", c.AdHandler.ListActiveAds)
	}
}

// ========================================
// NEWSLETTER ROUTES
// ========================================
func setupNewsletterRoutes(v1 *gin.RouterGroup, c *container.Container) {
	newsletter := v1.Group("/newsletter")
	{
		newsletter.POST("/subscribe", c.NewsletterHandler.Subscribe)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
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

		// Check redis
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
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// DATABASE TEST HANDLER
// ========================================
func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		c.JSON(http.StatusOK, gin.H{
			"message": "Database test successful",
			"database": gin.H{
				"postgres_version": version,
				"pool_stats": gin.H{
					"total_connections":    stats.TotalConns(),
					"idle_connections":     stats.IdleConns(),
					"acquired_connections": stats.AcquiredConns(),
					"max_connections":      stats.MaxConns(),
				},
			},
		})
	}
}
