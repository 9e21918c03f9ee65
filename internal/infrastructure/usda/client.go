package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// USDA nutrient IDs for the key macronutrients
const (
	nutrientIDEnergy       = 1008 // Calories (kcal)
	nutrientIDProtein      = 1003 // Protein (g)
	nutrientIDCarbohydrate = 1005 // Carbohydrates (g)
	nutrientIDTotalFat     = 1004 // Total Fat (g)

	expectedNutrientCount = 4
)

// Config holds USDA client configuration
type Config struct {
	APIKey      string
	BaseURL     string
	MinInterval time.Duration
	PageSize    int
	Debug       bool
}

// Client is the FoodData Central source. Call spacing is enforced by
// the resolver's per-source rate limiter, not inside the client.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	minInterval time.Duration
	pageSize    int
	debug       bool
}

// NewClient creates a new USDA API client
func NewClient(config Config) *Client {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      config.APIKey,
		baseURL:     config.BaseURL,
		minInterval: config.MinInterval,
		pageSize:    pageSize,
		debug:       config.Debug,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ID identifies this source in results and logs.
func (c *Client) ID() string { return "usda" }

// ConfidenceCap returns 1.0: USDA is a primary source, uncapped.
func (c *Client) ConfidenceCap() float64 { return 1.0 }

// MinInterval returns the minimum spacing between calls.
func (c *Client) MinInterval() time.Duration { return c.minInterval }

// searchResponse is the wire shape of /v1/foods/search
type searchResponse struct {
	Foods     []food `json:"foods"`
	TotalHits int    `json:"totalHits"`
}

type food struct {
	FdcID       int64      `json:"fdcId"`
	Description string     `json:"description"`
	DataType    string     `json:"dataType"`
	Nutrients   []nutrient `json:"foodNutrients"`
}

type nutrient struct {
	NutrientID int     `json:"nutrientId"`
	UnitName   string  `json:"unitName"`
	Value      float64 `json:"value"`
}

// Search queries FoodData Central and maps each hit to a source
// candidate. Transient failures are retried up to 3 times with
// backoff; throttling surfaces as ErrRateLimited so the fallback
// chain skips this source for the call.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SourceCandidate, error) {
	if c.debug {
		log.Printf("[USDA] search: %q", query)
	}

	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Survey (FNDDS),Foundation,Branded")
	params.Add("pageSize", fmt.Sprintf("%d", c.pageSize))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			var searchResp searchResponse
			if err := json.Unmarshal(body, &searchResp); err != nil {
				return nil, fmt.Errorf("%w: decode: %v", domain.ErrSourceUnavailable, err)
			}
			if len(searchResp.Foods) == 0 {
				return nil, domain.ErrSourceDeclined
			}
			return mapCandidates(searchResp.Foods), nil
		case http.StatusNotFound:
			return nil, domain.ErrSourceDeclined
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: usda throttled", domain.ErrRateLimited)
		default:
			if c.debug {
				log.Printf("[USDA] status %d (attempt %d): %s", resp.StatusCode, attempt, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
		}
	}

	return nil, lastErr
}

// FetchDetails retrieves full nutrition for a specific food by FDC ID.
func (c *Client) FetchDetails(ctx context.Context, fdcID string) (domain.NutritionEstimate, error) {
	endpoint := fmt.Sprintf("%s/v1/food/%s", c.baseURL, url.PathEscape(fdcID))
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	resp, err := c.doRequest(ctx, fmt.Sprintf("%s?%s", endpoint, params.Encode()))
	if err != nil {
		return domain.NutritionEstimate{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.NutritionEstimate{}, domain.ErrSourceDeclined
	case http.StatusTooManyRequests:
		return domain.NutritionEstimate{}, fmt.Errorf("%w: usda throttled", domain.ErrRateLimited)
	default:
		return domain.NutritionEstimate{}, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var f food
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return domain.NutritionEstimate{}, fmt.Errorf("%w: decode: %v", domain.ErrSourceUnavailable, err)
	}
	return extractNutrition(f.Nutrients), nil
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MealMap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return resp, nil
}

func mapCandidates(foods []food) []domain.SourceCandidate {
	candidates := make([]domain.SourceCandidate, 0, len(foods))
	for _, f := range foods {
		candidates = append(candidates, domain.SourceCandidate{
			Name:      f.Description,
			ID:        fmt.Sprintf("%d", f.FdcID),
			Nutrition: extractNutrition(f.Nutrients),
		})
	}
	return candidates
}

// extractNutrition pulls the four tracked macronutrients out of a USDA
// nutrient list. Completeness is the fraction of them present.
func extractNutrition(nutrients []nutrient) domain.NutritionEstimate {
	est := domain.NutritionEstimate{}
	found := 0

	for _, n := range nutrients {
		switch n.NutrientID {
		case nutrientIDEnergy:
			est.Calories = domain.PointRange(n.Value, "kcal")
			found++
		case nutrientIDProtein:
			est.Protein = domain.PointRange(n.Value, "g")
			found++
		case nutrientIDCarbohydrate:
			est.Carbohydrates = domain.PointRange(n.Value, "g")
			found++
		case nutrientIDTotalFat:
			est.TotalFat = domain.PointRange(n.Value, "g")
			found++
		}
	}

	est.Completeness = float64(found) / float64(expectedNutrientCount)
	return est
}
