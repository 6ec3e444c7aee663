package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/tokens", handler.CreateDeployedToken)
		api.GET("/tokens/:walletAddress", handler.ListDeployedTokens)

		api.POST("/compile", handler.Compile)
	}
}
