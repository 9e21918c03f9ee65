package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	USDA          USDAConfig
	OpenFoodFacts OpenFoodFactsConfig
	Places        PlacesConfig
	Matching      MatchingConfig
	Cache         CacheConfig
	Geo           GeoConfig
	RateLimit     RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// USDAConfig holds USDA FoodData Central configuration
type USDAConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	MinInterval time.Duration `mapstructure:"min_interval"`
}

// OpenFoodFactsConfig holds the fallback source configuration
type OpenFoodFactsConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"base_url"`
	MinInterval time.Duration `mapstructure:"min_interval"`
}

// PlacesConfig holds the restaurant discovery endpoint
type PlacesConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// MatchingConfig holds matcher and confidence thresholds
type MatchingConfig struct {
	MinScore        float64 `mapstructure:"min_score"`
	AcceptThreshold float64 `mapstructure:"accept_threshold"`
	CacheThreshold  float64 `mapstructure:"cache_threshold"`
	EarlyExit       float64 `mapstructure:"early_exit"`
	MaxQueries      int     `mapstructure:"max_queries"`
	Debug           bool    `mapstructure:"debug"`
}

// CacheConfig holds result cache sizing
type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

// GeoConfig holds geo cache and background refresh settings
type GeoConfig struct {
	TTL                    time.Duration `mapstructure:"ttl"`
	StaleAfter             time.Duration `mapstructure:"stale_after"`
	Capacity               int           `mapstructure:"capacity"`
	RadiusMiles            float64       `mapstructure:"radius_miles"`
	MaxBackgroundRefreshes int           `mapstructure:"max_background_refreshes"`
	PreloadLimit           int           `mapstructure:"preload_limit"`
}

// RateLimitConfig holds HTTP rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mealmap/")

	v.SetEnvPrefix("MEALMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("usda.enabled", true)
	// Registered empty so AutomaticEnv can see MEALMAP_USDA_API_KEY.
	v.SetDefault("usda.api_key", "")
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("usda.min_interval", "2s")

	v.SetDefault("openfoodfacts.enabled", true)
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.min_interval", "5s")

	v.SetDefault("places.base_url", "http://localhost:9090")

	v.SetDefault("matching.min_score", 0.3)
	v.SetDefault("matching.accept_threshold", 0.60)
	v.SetDefault("matching.cache_threshold", 0.75)
	v.SetDefault("matching.early_exit", 0.8)
	v.SetDefault("matching.max_queries", 3)

	v.SetDefault("cache.ttl", "30m")
	v.SetDefault("cache.capacity", 200)

	v.SetDefault("geo.ttl", "30m")
	v.SetDefault("geo.stale_after", "15m")
	v.SetDefault("geo.capacity", 50)
	v.SetDefault("geo.radius_miles", 5.0)
	v.SetDefault("geo.max_background_refreshes", 3)
	v.SetDefault("geo.preload_limit", 5)

	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.USDA.Enabled && config.USDA.APIKey == "" {
		return fmt.Errorf("USDA API key is required when usda is enabled (set MEALMAP_USDA_API_KEY)")
	}

	if t := config.Matching.AcceptThreshold; t < 0 || t > 1 {
		return fmt.Errorf("matching.accept_threshold must be in [0,1], got: %v", t)
	}
	if t := config.Matching.CacheThreshold; t < 0 || t > 1 {
		return fmt.Errorf("matching.cache_threshold must be in [0,1], got: %v", t)
	}
	if config.Matching.CacheThreshold < config.Matching.AcceptThreshold {
		return fmt.Errorf("matching.cache_threshold must be >= matching.accept_threshold")
	}

	if config.Geo.StaleAfter > config.Geo.TTL {
		return fmt.Errorf("geo.stale_after must not exceed geo.ttl")
	}

	return nil
}
