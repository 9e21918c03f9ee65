package usecase

import (
	"testing"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

func entry(key, name string, tier domain.Tier) domain.CatalogEntry {
	return domain.CatalogEntry{
		RawKey:      key,
		CleanedName: name,
		Tokens:      Tokenize(name),
		Tier:        tier,
		SourceID:    "test",
	}
}

func TestFindBestMatch_ExactWinsWithShortCircuit(t *testing.T) {
	m := NewMatcher([]domain.CatalogEntry{
		entry("R0056", "mcdonalds", domain.TierPriority),
		entry("chicken_breast", "chicken breast", domain.TierGeneric),
	}, MatcherConfig{})

	got := m.FindBestMatch(Tokenize("mcdonalds"))
	if got == nil {
		t.Fatal("FindBestMatch returned nil")
	}
	if got.Entry.RawKey != "R0056" {
		t.Errorf("RawKey = %q, want R0056", got.Entry.RawKey)
	}
	if got.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", got.Score)
	}
	if got.StrategyName != "exact" {
		t.Errorf("StrategyName = %q, want exact", got.StrategyName)
	}
}

func TestFindBestMatch_PriorityTierBeatsHigherGenericScore(t *testing.T) {
	// The priority entry only reaches a substring hit (0.6) while the
	// generic entry matches exactly (1.0); tier order still decides.
	m := NewMatcher([]domain.CatalogEntry{
		entry("R0200", "chicken deluxe meal sandwich", domain.TierPriority),
		entry("grilled_chicken", "grilled chicken", domain.TierGeneric),
	}, MatcherConfig{})

	got := m.FindBestMatch(Tokenize("grilled chicken"))
	if got == nil {
		t.Fatal("FindBestMatch returned nil")
	}
	if got.Entry.RawKey != "R0200" {
		t.Errorf("RawKey = %q, want priority entry R0200", got.Entry.RawKey)
	}
	if got.Score >= 1.0 {
		t.Errorf("Score = %v, want below the generic entry's exact score", got.Score)
	}
}

func TestFindBestMatch_FallsThroughToGenericTier(t *testing.T) {
	m := NewMatcher([]domain.CatalogEntry{
		entry("R0056", "mcdonalds", domain.TierPriority),
		entry("white_rice", "white rice", domain.TierGeneric),
	}, MatcherConfig{})

	got := m.FindBestMatch(Tokenize("white rice"))
	if got == nil {
		t.Fatal("FindBestMatch returned nil")
	}
	if got.Entry.RawKey != "white_rice" {
		t.Errorf("RawKey = %q, want white_rice", got.Entry.RawKey)
	}
}

func TestFindBestMatch_NoMatchBelowMinimum(t *testing.T) {
	m := NewMatcher([]domain.CatalogEntry{
		entry("oatmeal", "oatmeal", domain.TierGeneric),
	}, MatcherConfig{})

	if got := m.FindBestMatch(Tokenize("pepperoni pizza")); got != nil {
		t.Errorf("FindBestMatch = %+v, want nil for unrelated input", got)
	}
}

func TestFindBestMatch_EmptyInput(t *testing.T) {
	m := NewMatcher([]domain.CatalogEntry{
		entry("oatmeal", "oatmeal", domain.TierGeneric),
	}, MatcherConfig{})

	if got := m.FindBestMatch(nil); got != nil {
		t.Errorf("FindBestMatch = %+v, want nil for empty input", got)
	}
}

func TestExactScore(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		entry []string
		want  float64
	}{
		{"identical sets", []string{"grilled", "chicken"}, []string{"chicken", "grilled"}, 1.0},
		{"strict subset", []string{"chicken"}, []string{"grilled", "chicken"}, 0.9},
		{"superset is not subset", []string{"grilled", "chicken"}, []string{"chicken"}, 0},
		{"disjoint", []string{"pizza"}, []string{"chicken"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exactScore(tt.input, tt.entry); got != tt.want {
				t.Errorf("exactScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubstringScore(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		entry []string
		want  float64
	}{
		{"joined substring", []string{"chicken"}, []string{"chicken", "deluxe"}, 0.8},
		{"token containment", []string{"burgers"}, []string{"burger", "deluxe"}, 0.6},
		{"short joined input still substring", []string{"ham"}, []string{"hamburger"}, 0.8},
		{"short tokens skipped by containment rule", []string{"bbq"}, []string{"ribs"}, 0},
		{"no relation", []string{"pizza"}, []string{"chicken"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := substringScore(tt.input, tt.entry); got != tt.want {
				t.Errorf("substringScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenOverlapScore_Boosts(t *testing.T) {
	// Jaccard 1/3 plus the brand boost
	got := tokenOverlapScore([]string{"mcdonalds", "fries"}, []string{"mcdonalds", "shake"})
	want := 1.0/3.0 + 0.3
	if got < want-0.001 || got > want+0.001 {
		t.Errorf("score = %v, want %v (jaccard + brand boost)", got, want)
	}

	// Protein and preparation boosts stack
	got = tokenOverlapScore([]string{"grilled", "chicken"}, []string{"grilled", "chicken", "platter"})
	// Jaccard 2/3 + 0.2 protein + 0.1 preparation
	want = 2.0/3.0 + 0.3
	if got < want-0.001 || got > want+0.001 {
		t.Errorf("score = %v, want %v", got, want)
	}

	// Clamped to 1.0
	got = tokenOverlapScore([]string{"mcdonalds", "grilled", "chicken"}, []string{"mcdonalds", "grilled", "chicken"})
	if got != 1.0 {
		t.Errorf("score = %v, want clamp at 1.0", got)
	}
}

func TestFuzzyScore_Typo(t *testing.T) {
	got := fuzzyScore([]string{"chiken"}, []string{"chicken"})
	// One edit over seven characters
	want := 1.0 - 1.0/7.0
	if got < want-0.001 || got > want+0.001 {
		t.Errorf("fuzzyScore = %v, want %v", got, want)
	}
}

func TestFindBestMatch_FuzzyCatchesTypo(t *testing.T) {
	m := NewMatcher([]domain.CatalogEntry{
		entry("chicken_breast", "chicken", domain.TierGeneric),
	}, MatcherConfig{})

	got := m.FindBestMatch([]string{"chiken"})
	if got == nil {
		t.Fatal("FindBestMatch returned nil for a one-letter typo")
	}
	if got.StrategyName != "fuzzy-edit-distance" {
		t.Errorf("StrategyName = %q, want fuzzy-edit-distance", got.StrategyName)
	}
}

func TestScoreTokens_StrategyOrder(t *testing.T) {
	score, strategy := ScoreTokens([]string{"grilled", "chicken"}, []string{"chicken", "grilled"})
	if score != 1.0 || strategy != "exact" {
		t.Errorf("ScoreTokens = (%v, %q), want (1.0, exact)", score, strategy)
	}
}
