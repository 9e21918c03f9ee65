package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

func TestSearch_MapsCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "greek yogurt", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "1", r.URL.Query().Get("json"))

		w.Write([]byte(`{
			"count": 1,
			"products": [{
				"code": "0123456789012",
				"product_name": "Greek Yogurt Plain",
				"nutriments": {
					"energy-kcal_100g": 59,
					"proteins_100g": 10.2,
					"carbohydrates_100g": 3.6,
					"fat_100g": 0.4
				}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	candidates, err := client.Search(context.Background(), "greek yogurt")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "0123456789012", c.ID)
	assert.Equal(t, "Greek Yogurt Plain", c.Name)
	assert.Equal(t, 59.0, c.Nutrition.Calories.Min)
	assert.Equal(t, 10.2, c.Nutrition.Protein.Min)
	assert.Equal(t, 1.0, c.Nutrition.Completeness)
}

func TestSearch_NameFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 3,
			"products": [
				{"code": "1", "product_name": "", "generic_name": "Sparkling Water", "nutriments": {}},
				{"code": "2", "product_name": "", "generic_name": "", "brands": "AquaBrand", "nutriments": {}},
				{"code": "3", "product_name": "", "generic_name": "", "brands": "", "nutriments": {}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	candidates, err := client.Search(context.Background(), "water")
	require.NoError(t, err)
	require.Len(t, candidates, 2, "nameless products are skipped")
	assert.Equal(t, "Sparkling Water", candidates[0].Name)
	assert.Equal(t, "AquaBrand", candidates[1].Name)
}

func TestSearch_KilojouleFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 1,
			"products": [{
				"code": "1",
				"product_name": "Muesli",
				"nutriments": {"energy-kj_100g": 1674}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	candidates, err := client.Search(context.Background(), "muesli")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 400.0, candidates[0].Nutrition.Calories.Min, 0.1)
	assert.Equal(t, "kcal", candidates[0].Nutrition.Calories.Unit)
}

func TestSearch_ImplausibleValuesRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 1,
			"products": [{
				"code": "1",
				"product_name": "Bad Data Bar",
				"nutriments": {
					"energy-kcal_100g": 99999,
					"proteins_100g": -5,
					"carbohydrates_100g": 250,
					"fat_100g": 12
				}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	candidates, err := client.Search(context.Background(), "bar")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	n := candidates[0].Nutrition
	assert.Empty(t, n.Calories.Unit, "out-of-range calories rejected")
	assert.Empty(t, n.Protein.Unit, "negative protein rejected")
	assert.Empty(t, n.Carbohydrates.Unit, "over-100g carbs rejected")
	assert.Equal(t, 12.0, n.TotalFat.Min)
	assert.Equal(t, 0.25, n.Completeness)
}

func TestSearch_NoProductsDeclines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "products": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.Search(context.Background(), "zzzz")
	assert.ErrorIs(t, err, domain.ErrSourceDeclined)
}

func TestSearch_Throttled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestSearch_ServerErrorUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestSourceIdentity(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, "openfoodfacts", client.ID())
	assert.Equal(t, 0.75, client.ConfidenceCap())
}
