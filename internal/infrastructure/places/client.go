package places

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

// Config holds places client configuration
type Config struct {
	BaseURL string
	Debug   bool
}

// Client fetches nearby restaurants from the places API. It sits
// behind the geo cache; the refresh coordinator decides when to call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient creates a new places client
func NewClient(config Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: config.BaseURL,
		debug:   config.Debug,
	}
}

// placeRecord is the wire shape of one nearby result
type placeRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category"`
	RCode     string   `json:"r_code"`
	MenuItems []string `json:"menu_items"`
}

// FetchNearby returns restaurants within the radius of the center.
func (c *Client) FetchNearby(ctx context.Context, center domain.Point, radiusMiles float64) ([]domain.Restaurant, error) {
	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%f", center.Latitude))
	params.Add("lon", fmt.Sprintf("%f", center.Longitude))
	params.Add("radius", fmt.Sprintf("%f", radiusMiles))

	reqURL := fmt.Sprintf("%s/nearby?%s", c.baseURL, params.Encode())
	if c.debug {
		log.Printf("[PLACES] fetch: %s", reqURL)
	}

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

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	var records []placeRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrSourceUnavailable, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoRestaurants
	}

	restaurants := make([]domain.Restaurant, 0, len(records))
	for _, r := range records {
		restaurants = append(restaurants, domain.Restaurant{
			ID:        r.ID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Category:  r.Category,
			RCode:     r.RCode,
			MenuItems: r.MenuItems,
		})
	}
	return restaurants, nil
}
