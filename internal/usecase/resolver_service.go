package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// ResolverConfig holds configuration for the resolver service
type ResolverConfig struct {
	MaxQueriesPerSource   int     // search-strategy queries generated per source
	QueryQualityThreshold float64 // stop generating queries once a query's best crosses this
	EnableDebugLogging    bool
}

const (
	defaultMaxQueries       = 3
	defaultQualityThreshold = 0.8
)

// sourceState pairs a source with its own rate limiter. Limiters are
// never shared across sources.
type sourceState struct {
	src     domain.Source
	limiter *rate.Limiter
}

// ResolverService resolves a free-text food name against an ordered
// list of sources, stopping at the first result above the acceptance
// threshold. Source failures are downgraded to "this source declined";
// exhaustion yields the explicit unavailable result, never an error.
type ResolverService struct {
	sources []sourceState
	cache   domain.ResultCache
	scorer  *ConfidenceScorer
	config  ResolverConfig
}

// NewResolverService creates a resolver. Sources are tried strictly in
// the order given.
func NewResolverService(cache domain.ResultCache, scorer *ConfidenceScorer, config ResolverConfig, sources ...domain.Source) *ResolverService {
	if config.MaxQueriesPerSource <= 0 {
		config.MaxQueriesPerSource = defaultMaxQueries
	}
	if config.QueryQualityThreshold <= 0 {
		config.QueryQualityThreshold = defaultQualityThreshold
	}

	states := make([]sourceState, 0, len(sources))
	for _, src := range sources {
		states = append(states, sourceState{src: src, limiter: newSourceLimiter(src)})
	}

	return &ResolverService{
		sources: states,
		cache:   cache,
		scorer:  scorer,
		config:  config,
	}
}

// newSourceLimiter enforces minimum spacing between calls to a source.
// Burst 1 with rate.Every gives exactly that: no burst allowance, just
// spacing.
func newSourceLimiter(src domain.Source) *rate.Limiter {
	interval := src.MinInterval()
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Resolve runs the full pipeline for one raw name: normalize, check
// cache, then walk the source chain. The returned result is always
// usable; callers branch on IsAvailable only.
func (s *ResolverService) Resolve(ctx context.Context, rawName string) domain.ScoredResult {
	trimmed := strings.TrimSpace(rawName)
	if trimmed == "" {
		return domain.Unavailable(rawName)
	}

	terms := ExtractCoreFoodTerms(trimmed)
	if terms.PrimaryFood == "" {
		return domain.Unavailable(rawName)
	}
	cleanedQuery := BuildCleanedQuery(terms)
	cacheKey := NormalizeCacheKey(cleanedQuery)

	if cached, ok := s.cache.Get(cacheKey); ok && cached.Confidence >= s.scorer.AcceptThreshold() {
		if s.config.EnableDebugLogging {
			log.Printf("[RESOLVE] cache hit for %q (confidence %.2f)", cleanedQuery, cached.Confidence)
		}
		cached.OriginalInput = trimmed
		return cached
	}

	for _, st := range s.sources {
		result, err := s.trySource(ctx, st, terms, trimmed, cleanedQuery)
		if err == nil {
			if s.scorer.Cacheable(result.Confidence) {
				s.cache.Put(cacheKey, result)
			}
			return result
		}
		if ctx.Err() != nil {
			break
		}
		switch {
		case errors.Is(err, domain.ErrSourceDeclined):
			if s.config.EnableDebugLogging {
				log.Printf("[RESOLVE] source %s declined %q", st.src.ID(), cleanedQuery)
			}
		case errors.Is(err, domain.ErrRateLimited):
			log.Printf("[RESOLVE] source %s rate limited, skipping for %q", st.src.ID(), cleanedQuery)
		default:
			log.Printf("[RESOLVE] source %s failed for %q: %v", st.src.ID(), cleanedQuery, err)
		}
	}

	result := domain.Unavailable(trimmed)
	result.CleanedQuery = cleanedQuery
	return result
}

// trySource runs one source: rate-limit wait, generated queries, score
// candidates, accept the best if it clears the threshold.
func (s *ResolverService) trySource(ctx context.Context, st sourceState, terms domain.CoreFoodTerms, original, cleanedQuery string) (domain.ScoredResult, error) {
	var zero domain.ScoredResult

	if err := st.limiter.Wait(ctx); err != nil {
		return zero, err
	}

	var bestCandidate *domain.SourceCandidate
	var bestScore float64

	for _, query := range s.buildQueries(terms) {
		candidates, err := st.src.Search(ctx, query)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) {
				// Throttled: abandon this source's remaining queries.
				return zero, err
			}
			if errors.Is(err, domain.ErrSourceDeclined) {
				continue
			}
			return zero, err
		}

		queryTokens := Tokenize(query)
		for i := range candidates {
			score, _ := ScoreTokens(queryTokens, Tokenize(candidates[i].Name))
			if score > bestScore {
				bestScore = score
				bestCandidate = &candidates[i]
			}
		}
		if bestScore >= s.config.QueryQualityThreshold {
			break
		}
	}

	if bestCandidate == nil {
		return zero, domain.ErrSourceDeclined
	}

	confidence := s.scorer.Score(bestScore, bestCandidate.Nutrition.Completeness, terms.Confidence, st.src.ConfidenceCap())
	if !s.scorer.Acceptable(confidence) {
		return zero, domain.ErrSourceDeclined
	}

	if s.config.EnableDebugLogging {
		log.Printf("[RESOLVE] %s matched %q -> %q (score %.2f, confidence %.2f)",
			st.src.ID(), cleanedQuery, bestCandidate.Name, bestScore, confidence)
	}

	return domain.ScoredResult{
		OriginalInput: original,
		CleanedQuery:  cleanedQuery,
		MatchedKey:    bestCandidate.ID,
		SourceID:      st.src.ID(),
		Nutrition:     bestCandidate.Nutrition,
		MatchScore:    bestScore,
		Confidence:    confidence,
		IsAvailable:   true,
		Timestamp:     time.Now(),
	}, nil
}

// buildQueries generates up to MaxQueriesPerSource search strategies
// in decreasing specificity: primary with modifier, primary alone,
// primary with accompaniment, inferred category.
func (s *ResolverService) buildQueries(terms domain.CoreFoodTerms) []string {
	var queries []string
	add := func(q string) {
		if q == "" || len(queries) >= s.config.MaxQueriesPerSource {
			return
		}
		for _, existing := range queries {
			if existing == q {
				return
			}
		}
		queries = append(queries, q)
	}

	if len(terms.Modifiers) > 0 {
		add(terms.Modifiers[0] + " " + terms.PrimaryFood)
	}
	add(terms.PrimaryFood)
	if len(terms.Accompaniments) > 0 {
		add(terms.PrimaryFood + " " + terms.Accompaniments[0])
	}
	if category, ok := categoryByFood[terms.PrimaryFood]; ok {
		add(category)
	}

	return queries
}
