// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hashlab/backend/internal/integration/entrypoint/controller"
	"github.com/hashlab/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	hashingController *controller.HashingController
	rateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	hashingController *controller.HashingController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		hashingController: hashingController,
		rateLimiter:       rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Hashing routes (only setup if hashing controller is available)
		if r.hashingController != nil {
			hashingGroup := v1.Group("/hashing")
			if r.rateLimiter != nil {
				hashingGroup.Use(r.rateLimiter.Middleware())
			}
			hashingGroup.POST("/hash", r.hashingController.Hash)
			hashingGroup.POST("/verify", r.hashingController.Verify)
		}
	}
}
