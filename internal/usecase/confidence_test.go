package usecase

import "testing"

func TestNewConfidenceScorer_Defaults(t *testing.T) {
	s := NewConfidenceScorer(0, 0)
	if s.acceptThreshold != defaultAcceptThreshold {
		t.Errorf("acceptThreshold = %v, want %v", s.acceptThreshold, defaultAcceptThreshold)
	}
	if s.cacheThreshold != defaultCacheThreshold {
		t.Errorf("cacheThreshold = %v, want %v", s.cacheThreshold, defaultCacheThreshold)
	}
}

func TestScore_WeightedFormula(t *testing.T) {
	s := NewConfidenceScorer(0, 0)

	// The weighted sum of perfect inputs lands a float ulp below 1.0.
	got := s.Score(1.0, 1.0, 1.0, 1.0)
	if got < 0.999 || got > 1.0 {
		t.Errorf("Score = %v, want 1.0 for perfect inputs", got)
	}

	got = s.Score(0.5, 0.5, 0.5, 1.0)
	if got < 0.499 || got > 0.501 {
		t.Errorf("Score = %v, want 0.5", got)
	}

	// 0.7*0.8 + 0.2*0.5 + 0.1*0.4 = 0.70
	got = s.Score(0.8, 0.5, 0.4, 1.0)
	if got < 0.699 || got > 0.701 {
		t.Errorf("Score = %v, want 0.70", got)
	}
}

func TestScore_SourceCap(t *testing.T) {
	s := NewConfidenceScorer(0, 0)

	// Fallback sources are capped below primary sources
	got := s.Score(1.0, 1.0, 1.0, 0.75)
	if got != 0.75 {
		t.Errorf("Score = %v, want capped at 0.75", got)
	}

	// Cap of zero means uncapped
	got = s.Score(1.0, 1.0, 1.0, 0)
	if got < 0.999 || got > 1.0 {
		t.Errorf("Score = %v, want 1.0 when uncapped", got)
	}

	// Cap above the score leaves it alone
	got = s.Score(0.5, 0.5, 0.5, 0.75)
	if got < 0.499 || got > 0.501 {
		t.Errorf("Score = %v, want 0.5 below the cap", got)
	}
}

func TestThresholds_AcceptVersusCache(t *testing.T) {
	s := NewConfidenceScorer(0.60, 0.75)

	// Acceptable but not cacheable: served, never persisted
	if !s.Acceptable(0.65) {
		t.Error("0.65 should be acceptable")
	}
	if s.Cacheable(0.65) {
		t.Error("0.65 should not be cacheable")
	}

	if !s.Cacheable(0.80) {
		t.Error("0.80 should be cacheable")
	}
	if s.Acceptable(0.50) {
		t.Error("0.50 should not be acceptable")
	}
}
