package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/olympics-access-go/internal/config"
	"github.com/jengzang/olympics-access-go/internal/handler"
	"github.com/jengzang/olympics-access-go/internal/middleware"
)

// Handlers bundles everything the router wires up
type Handlers struct {
	Venue         *handler.VenueHandler
	Accessibility *handler.AccessibilityHandler
	Query         *handler.QueryHandler
	Auth          *handler.AuthHandler
}

// SetupRouter sets up routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Olympics Access API is running",
		})
	})

	// Dashboard page
	r.StaticFile("/", filepath.Join(cfg.WebDir, "index.html"))

	// API routes
	api := r.Group("/api/v1")
	{
		api.GET("/venues", h.Venue.List)
		api.GET("/venues/near", h.Venue.Near)

		// One accessibility query at a time; repeat clicks get a 409
		api.GET("/accessibility", middleware.SingleFlight(), h.Accessibility.Query)

		api.POST("/auth/token", h.Auth.Token)

		queries := api.Group("/queries", middleware.RequireAuth(cfg.JWTSecret))
		{
			queries.GET("", h.Query.Recent)
		}
	}

	return r
}
