package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Jps0717/MealMap-sub001/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		nutrition := v1.Group("/nutrition")
		{
			nutrition.POST("/resolve", handler.ResolveNutrition)
			nutrition.GET("/usda/:fdcId", handler.GetFoodDetails)
		}

		v1.GET("/restaurants", handler.GetRestaurants)
		v1.GET("/cache/stats", handler.GetCacheStats)
	}

	return router
}
