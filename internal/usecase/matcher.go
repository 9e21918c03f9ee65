package usecase

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// Default matcher thresholds
const (
	defaultMinMatchScore  = 0.3 // candidates below this never replace the running best
	defaultEarlyExitScore = 0.8 // a running best above this skips remaining strategies
)

// MatcherConfig holds configuration for the matcher
type MatcherConfig struct {
	MinScore  float64
	EarlyExit float64
}

// Matcher runs the ordered matching strategies over a tiered catalog
// snapshot. Priority-tier entries are always exhausted before Generic
// entries: a low-scoring Priority hit beats a higher-scoring Generic
// hit, because Priority entries have richer backing data. Matchers are
// purely functions of their immutable inputs and safe for concurrent
// use.
type Matcher struct {
	tiers     [][]domain.CatalogEntry
	minScore  float64
	earlyExit float64
}

// NewMatcher builds a matcher over a catalog snapshot, partitioning
// entries by tier while preserving construction order within a tier.
func NewMatcher(entries []domain.CatalogEntry, config MatcherConfig) *Matcher {
	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinMatchScore
	}
	earlyExit := config.EarlyExit
	if earlyExit <= 0 {
		earlyExit = defaultEarlyExitScore
	}

	tiers := make([][]domain.CatalogEntry, 2)
	for _, e := range entries {
		switch e.Tier {
		case domain.TierPriority:
			tiers[0] = append(tiers[0], e)
		default:
			tiers[1] = append(tiers[1], e)
		}
	}

	return &Matcher{tiers: tiers, minScore: minScore, earlyExit: earlyExit}
}

// FindBestMatch returns the best candidate for the input tokens, or
// nil when no entry reaches the minimum score. Tier order decides the
// final winner before score does.
func (m *Matcher) FindBestMatch(inputTokens []string) *domain.MatchCandidate {
	if len(inputTokens) == 0 {
		return nil
	}
	for _, tier := range m.tiers {
		if best := m.bestInTier(inputTokens, tier); best != nil {
			return best
		}
	}
	return nil
}

// bestInTier applies the strategies in fixed order across the tier's
// entries. A strategy's candidate replaces the running best only on a
// strict score improvement at or above the minimum; a best above the
// early-exit threshold stops further strategies.
func (m *Matcher) bestInTier(input []string, entries []domain.CatalogEntry) *domain.MatchCandidate {
	var best *domain.MatchCandidate

	for _, strat := range matchStrategies {
		for i := range entries {
			score := strat.score(input, entries[i].Tokens)
			if score < m.minScore {
				continue
			}
			if best == nil || score > best.Score {
				best = &domain.MatchCandidate{
					Entry:        entries[i],
					Score:        score,
					StrategyName: strat.name,
				}
			}
		}
		if best != nil && best.Score > m.earlyExit {
			break
		}
	}

	return best
}

// ScoreTokens runs the strategy sequence on a single token-set pair,
// with the same ordering and early exit as the tier loop. Used to
// score candidates returned by remote sources, where there is no
// pre-built catalog.
func ScoreTokens(input, entry []string) (float64, string) {
	var best float64
	var strategy string
	for _, strat := range matchStrategies {
		if score := strat.score(input, entry); score > best {
			best = score
			strategy = strat.name
		}
		if best > defaultEarlyExitScore {
			break
		}
	}
	return best, strategy
}

type matchStrategy struct {
	name  string
	score func(input, entry []string) float64
}

// matchStrategies run in this exact order; the ordering is part of the
// observable contract.
var matchStrategies = []matchStrategy{
	{"exact", exactScore},
	{"substring", substringScore},
	{"token-overlap", tokenOverlapScore},
	{"fuzzy-edit-distance", fuzzyScore},
}

// exactScore: 1.0 for identical token sets, 0.9 when the input set is
// a strict subset of the entry's set.
func exactScore(input, entry []string) float64 {
	if len(input) == 0 || len(entry) == 0 {
		return 0
	}
	entrySet := toSet(entry)
	for _, t := range input {
		if !entrySet[t] {
			return 0
		}
	}
	if len(toSet(input)) == len(entrySet) {
		return 1.0
	}
	return 0.9
}

// substringScore: 0.8 when the sorted joined input is a substring of
// the sorted joined entry, 0.6 when any input token of length >= 4
// contains or is contained by an entry token.
func substringScore(input, entry []string) float64 {
	if len(input) == 0 || len(entry) == 0 {
		return 0
	}
	if strings.Contains(joinSorted(entry), joinSorted(input)) {
		return 0.8
	}
	for _, in := range input {
		if len(in) < 4 {
			continue
		}
		for _, en := range entry {
			if strings.Contains(en, in) || strings.Contains(in, en) {
				return 0.6
			}
		}
	}
	return 0
}

// tokenOverlapScore: Jaccard similarity plus domain boosts for shared
// brand, protein, and preparation terms, clamped to 1.0.
func tokenOverlapScore(input, entry []string) float64 {
	inputSet := toSet(input)
	entrySet := toSet(entry)
	if len(inputSet) == 0 || len(entrySet) == 0 {
		return 0
	}

	intersection := 0
	for t := range inputSet {
		if entrySet[t] {
			intersection++
		}
	}
	union := len(inputSet) + len(entrySet) - intersection
	score := float64(intersection) / float64(union)

	if sharesTerm(inputSet, entrySet, brandTerms) {
		score += 0.3
	}
	if sharesTerm(inputSet, entrySet, proteinTerms) {
		score += 0.2
	}
	if sharesPreparation(inputSet, entrySet) {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// fuzzyScore: normalized Levenshtein similarity over the full sorted
// joined strings, for maximal sensitivity to small typos.
func fuzzyScore(input, entry []string) float64 {
	a := joinSorted(input)
	b := joinSorted(entry)
	if a == "" || b == "" {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	dist := edlib.LevenshteinDistance(a, b)
	score := 1.0 - float64(dist)/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}

func sharesTerm(a, b map[string]bool, vocab map[string]bool) bool {
	for t := range a {
		if vocab[t] && b[t] {
			return true
		}
	}
	return false
}

func sharesPreparation(a, b map[string]bool) bool {
	for _, m := range cookingMethods {
		if a[m] && b[m] {
			return true
		}
	}
	return false
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func joinSorted(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}
