package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Jps0717/MealMap-sub001/config"
	httpDelivery "github.com/Jps0717/MealMap-sub001/internal/delivery/http"
	"github.com/Jps0717/MealMap-sub001/internal/domain"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/cache"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/geocache"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/menucatalog"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/openfoodfacts"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/places"
	"github.com/Jps0717/MealMap-sub001/internal/infrastructure/usda"
	"github.com/Jps0717/MealMap-sub001/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MealMap Resolver v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	resultCache := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.Capacity)
	geoCache := geocache.New(cfg.Geo.TTL, cfg.Geo.Capacity)

	// Sources in priority order: the in-process catalog first, then
	// USDA, then Open Food Facts as the capped fallback.
	sources := []domain.Source{menucatalog.New(menucatalog.DefaultEntries())}

	usdaClient := usda.NewClient(usda.Config{
		APIKey:      cfg.USDA.APIKey,
		BaseURL:     cfg.USDA.BaseURL,
		MinInterval: cfg.USDA.MinInterval,
		Debug:       cfg.Matching.Debug,
	})
	if cfg.USDA.Enabled {
		sources = append(sources, usdaClient)
		log.Printf("USDA source enabled: %s", cfg.USDA.BaseURL)
	}

	if cfg.OpenFoodFacts.Enabled {
		sources = append(sources, openfoodfacts.NewClient(openfoodfacts.Config{
			BaseURL:     cfg.OpenFoodFacts.BaseURL,
			MinInterval: cfg.OpenFoodFacts.MinInterval,
			Debug:       cfg.Matching.Debug,
		}))
		log.Printf("Open Food Facts source enabled: %s", cfg.OpenFoodFacts.BaseURL)
	}

	scorer := usecase.NewConfidenceScorer(cfg.Matching.AcceptThreshold, cfg.Matching.CacheThreshold)
	resolver := usecase.NewResolverService(resultCache, scorer, usecase.ResolverConfig{
		MaxQueriesPerSource:   cfg.Matching.MaxQueries,
		QueryQualityThreshold: cfg.Matching.EarlyExit,
		EnableDebugLogging:    cfg.Matching.Debug,
	}, sources...)

	placesClient := places.NewClient(places.Config{
		BaseURL: cfg.Places.BaseURL,
		Debug:   cfg.Matching.Debug,
	})

	restaurants := usecase.NewRestaurantService(geoCache, placesClient, resolver, usecase.RestaurantServiceConfig{
		RadiusMiles:            cfg.Geo.RadiusMiles,
		StaleAfter:             cfg.Geo.StaleAfter,
		MaxBackgroundRefreshes: int64(cfg.Geo.MaxBackgroundRefreshes),
		PreloadLimit:           cfg.Geo.PreloadLimit,
		EnableDebugLogging:     cfg.Matching.Debug,
	})

	handler := httpDelivery.NewHandler(resolver, restaurants, usdaClient, func() httpDelivery.CacheStats {
		return httpDelivery.CacheStats{
			ResultEntries: resultCache.Size(),
			GeoRegions:    geoCache.Size(),
		}
	})

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
