package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// NutritionResolver resolves a raw name to a scored result.
type NutritionResolver interface {
	Resolve(ctx context.Context, rawName string) domain.ScoredResult
}

// RestaurantFinder serves location-scoped restaurant lists.
type RestaurantFinder interface {
	GetRestaurants(ctx context.Context, center domain.Point) ([]domain.Restaurant, string, error)
	LastRefreshed() time.Time
}

// DetailsFetcher retrieves full nutrition for a known source id.
type DetailsFetcher interface {
	FetchDetails(ctx context.Context, id string) (domain.NutritionEstimate, error)
}

// CacheStats is the diagnostics payload for /cache/stats.
type CacheStats struct {
	ResultEntries int `json:"resultEntries"`
	GeoRegions    int `json:"geoRegions"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver NutritionResolver
	finder   RestaurantFinder
	details  DetailsFetcher
	stats    func() CacheStats
}

// NewHandler creates a new HTTP handler
func NewHandler(resolver NutritionResolver, finder RestaurantFinder, details DetailsFetcher, stats func() CacheStats) *Handler {
	return &Handler{
		resolver: resolver,
		finder:   finder,
		details:  details,
		stats:    stats,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealmap-resolver",
		"version": "1.0.0",
	})
}

type resolveRequest struct {
	Name string `json:"name" binding:"required"`
}

// ResolveNutrition resolves a free-text food name. The response is
// always 200 with a ScoredResult; clients branch on isAvailable.
func (h *Handler) ResolveNutrition(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	result := h.resolver.Resolve(c.Request.Context(), req.Name)
	c.JSON(http.StatusOK, result)
}

// GetRestaurants returns restaurants near ?lat=&lon= plus refresh
// diagnostics.
func (h *Handler) GetRestaurants(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required and must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon is required and must be a number"})
		return
	}

	restaurants, status, err := h.finder.GetRestaurants(c.Request.Context(), domain.Point{Latitude: lat, Longitude: lon})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "status": status})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants":   restaurants,
		"status":        status,
		"lastRefreshed": h.finder.LastRefreshed(),
	})
}

// GetFoodDetails proxies a USDA details fetch for a known FDC id.
func (h *Handler) GetFoodDetails(c *gin.Context) {
	id := c.Param("fdcId")
	nutrition, err := h.details.FetchDetails(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nutrition)
}

// GetCacheStats reports cache sizes for diagnostics.
func (h *Handler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats())
}
