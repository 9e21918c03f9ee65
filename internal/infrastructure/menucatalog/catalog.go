package menucatalog

import (
	"context"
	"time"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
	"github.com/Jps0717/MealMap-sub001/internal/usecase"
)

// sourceID identifies the in-process catalog in results and logs.
const sourceID = "menu-catalog"

// mergeEpsilon: entries scoring within this of the best are folded
// into one candidate with widened nutrient ranges.
const mergeEpsilon = 0.05

// Entry is one catalog row supplied at construction: an R-code chain
// item (Priority tier) or a generic food (Generic tier) with its
// nutrition record.
type Entry struct {
	Key       string
	Name      string
	Tier      domain.Tier
	Nutrition domain.NutritionEstimate
}

// Catalog is the restaurant-code / generic-food source. It is built
// once from static entries, runs the tiered matcher in process, and
// needs no rate limiting or network.
type Catalog struct {
	matcher   *usecase.Matcher
	entries   []domain.CatalogEntry
	nutrition map[string]domain.NutritionEstimate
}

// New builds a catalog snapshot. Tokens are computed once per entry;
// the snapshot is immutable afterwards and safe for concurrent use.
func New(entries []Entry) *Catalog {
	catalogEntries := make([]domain.CatalogEntry, 0, len(entries))
	nutrition := make(map[string]domain.NutritionEstimate, len(entries))

	for _, e := range entries {
		catalogEntries = append(catalogEntries, domain.CatalogEntry{
			RawKey:      e.Key,
			CleanedName: e.Name,
			Tokens:      usecase.Tokenize(e.Name),
			Tier:        e.Tier,
			SourceID:    sourceID,
		})
		nutrition[e.Key] = e.Nutrition
	}

	return &Catalog{
		matcher:   usecase.NewMatcher(catalogEntries, usecase.MatcherConfig{}),
		entries:   catalogEntries,
		nutrition: nutrition,
	}
}

// ID identifies this source.
func (c *Catalog) ID() string { return sourceID }

// ConfidenceCap returns 1.0: R-code entries carry structured data.
func (c *Catalog) ConfidenceCap() float64 { return 1.0 }

// MinInterval returns zero: no network, no spacing needed.
func (c *Catalog) MinInterval() time.Duration { return 0 }

// Search matches the query against the catalog snapshot. Near-tie
// entries in the winning tier are merged into a single candidate with
// range nutrition, so callers see honest uncertainty instead of an
// arbitrary pick.
func (c *Catalog) Search(_ context.Context, query string) ([]domain.SourceCandidate, error) {
	tokens := usecase.Tokenize(query)
	if len(tokens) == 0 {
		return nil, domain.ErrInvalidInput
	}

	best := c.matcher.FindBestMatch(tokens)
	if best == nil {
		return nil, domain.ErrSourceDeclined
	}

	merged := c.nutrition[best.Entry.RawKey]
	for _, entry := range c.entries {
		if entry.Tier != best.Entry.Tier || entry.RawKey == best.Entry.RawKey {
			continue
		}
		score, _ := usecase.ScoreTokens(tokens, entry.Tokens)
		if score >= best.Score-mergeEpsilon && score > 0 {
			merged = merged.Merge(c.nutrition[entry.RawKey])
		}
	}

	return []domain.SourceCandidate{{
		Name:      best.Entry.CleanedName,
		ID:        best.Entry.RawKey,
		Nutrition: merged,
	}}, nil
}
