package usecase

// Confidence formula weights: match quality dominates, data
// completeness and parse quality refine.
const (
	weightMatchScore   = 0.7
	weightCompleteness = 0.2
	weightParsing      = 0.1

	defaultAcceptThreshold = 0.60
	defaultCacheThreshold  = 0.75
)

// ConfidenceScorer combines match score, nutrition completeness, and
// parsing confidence into one bounded score per source. Secondary
// sources are capped below primary sources so the scale stays
// calibrated across heterogeneous catalogs.
type ConfidenceScorer struct {
	acceptThreshold float64
	cacheThreshold  float64
}

// NewConfidenceScorer creates a scorer. The accept threshold is the
// minimum to serve a result; the cache threshold is the higher bar for
// persisting one, so marginal guesses are served but never entrenched.
func NewConfidenceScorer(acceptThreshold, cacheThreshold float64) *ConfidenceScorer {
	if acceptThreshold <= 0 {
		acceptThreshold = defaultAcceptThreshold
	}
	if cacheThreshold <= 0 {
		cacheThreshold = defaultCacheThreshold
	}
	return &ConfidenceScorer{
		acceptThreshold: acceptThreshold,
		cacheThreshold:  cacheThreshold,
	}
}

// Score computes 0.7*match + 0.2*completeness + 0.1*parsing, clamped
// to [0, sourceCap]. A cap of 0 or above 1 means uncapped.
func (s *ConfidenceScorer) Score(matchScore, completeness, parsingConfidence, sourceCap float64) float64 {
	score := weightMatchScore*matchScore +
		weightCompleteness*completeness +
		weightParsing*parsingConfidence

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	if sourceCap > 0 && sourceCap < 1 && score > sourceCap {
		score = sourceCap
	}
	return score
}

// Acceptable reports whether a confidence is high enough to serve.
func (s *ConfidenceScorer) Acceptable(confidence float64) bool {
	return confidence >= s.acceptThreshold
}

// Cacheable reports whether a confidence is high enough to persist.
func (s *ConfidenceScorer) Cacheable(confidence float64) bool {
	return confidence >= s.cacheThreshold
}

// AcceptThreshold returns the minimum serving confidence.
func (s *ConfidenceScorer) AcceptThreshold() float64 {
	return s.acceptThreshold
}
