package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// Open Food Facts is a fallback source: community data is noisier than
// USDA, so its confidence is capped below the primary sources.
const fallbackConfidenceCap = 0.75

// Config holds Open Food Facts client configuration
type Config struct {
	BaseURL     string
	MinInterval time.Duration
	PageSize    int
	Debug       bool
}

// Client is the Open Food Facts search source.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	minInterval time.Duration
	pageSize    int
	debug       bool
}

// NewClient creates a new Open Food Facts client
func NewClient(config Config) *Client {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     config.BaseURL,
		minInterval: config.MinInterval,
		pageSize:    pageSize,
		debug:       config.Debug,
	}
}

// ID identifies this source in results and logs.
func (c *Client) ID() string { return "openfoodfacts" }

// ConfidenceCap returns the fallback-source cap.
func (c *Client) ConfidenceCap() float64 { return fallbackConfidenceCap }

// MinInterval returns the minimum spacing between calls.
func (c *Client) MinInterval() time.Duration { return c.minInterval }

type searchResponse struct {
	Products []product `json:"products"`
	Count    int       `json:"count"`
}

// product is the minimal subset of an Open Food Facts record.
type product struct {
	Code        string         `json:"code"`
	ProductName string         `json:"product_name"`
	GenericName string         `json:"generic_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

// name returns the best available product name: product_name, then
// generic_name, then brands.
func (p *product) name() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	if p.GenericName != "" {
		return p.GenericName
	}
	return p.Brands
}

// Search queries the Open Food Facts search API and maps products to
// source candidates. Nameless products are skipped.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SourceCandidate, error) {
	if c.debug {
		log.Printf("[OFF] search: %q", query)
	}

	params := url.Values{}
	params.Add("search_terms", query)
	params.Add("search_simple", "1")
	params.Add("action", "process")
	params.Add("json", "1")
	params.Add("page_size", fmt.Sprintf("%d", c.pageSize))

	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MealMap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: openfoodfacts throttled", domain.ErrRateLimited)
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrSourceUnavailable, err)
	}
	if len(searchResp.Products) == 0 {
		return nil, domain.ErrSourceDeclined
	}

	candidates := make([]domain.SourceCandidate, 0, len(searchResp.Products))
	for i := range searchResp.Products {
		p := &searchResp.Products[i]
		name := p.name()
		if name == "" {
			continue
		}
		candidates = append(candidates, domain.SourceCandidate{
			Name:      name,
			ID:        p.Code,
			Nutrition: extractNutrition(p.Nutriments),
		})
	}
	if len(candidates) == 0 {
		return nil, domain.ErrSourceDeclined
	}
	return candidates, nil
}

// extractNutrition reads per-100g nutriments, clamping to plausible
// ranges. Calories fall back to kJ / 4.184 when kcal is missing.
func extractNutrition(nutriments map[string]any) domain.NutritionEstimate {
	est := domain.NutritionEstimate{}
	found := 0

	if v, ok := plausible(nutriments, "energy-kcal_100g", 0, 10000); ok {
		est.Calories = domain.PointRange(v, "kcal")
		found++
	} else if v, ok := plausible(nutriments, "energy-kj_100g", 0, 42000); ok {
		est.Calories = domain.PointRange(v/4.184, "kcal")
		found++
	}
	if v, ok := plausible(nutriments, "proteins_100g", 0, 100); ok {
		est.Protein = domain.PointRange(v, "g")
		found++
	}
	if v, ok := plausible(nutriments, "carbohydrates_100g", 0, 100); ok {
		est.Carbohydrates = domain.PointRange(v, "g")
		found++
	}
	if v, ok := plausible(nutriments, "fat_100g", 0, 100); ok {
		est.TotalFat = domain.PointRange(v, "g")
		found++
	}

	est.Completeness = float64(found) / 4.0
	return est
}

// plausible coerces a nutriments value to float64 and rejects values
// outside [min, max].
func plausible(m map[string]any, key string, min, max float64) (float64, bool) {
	raw, ok := m[key]
	if !ok {
		return 0, false
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}

	if v < min || v > max {
		return 0, false
	}
	return v, true
}
