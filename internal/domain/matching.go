package domain

// CoreFoodTerms is the Normalizer's view of a raw menu-item name:
// the primary food, cooking-method modifiers, side/sauce accompaniments,
// the text spans removed as noise, and a parse confidence in [0,1].
type CoreFoodTerms struct {
	PrimaryFood    string   `json:"primaryFood"`
	Modifiers      []string `json:"modifiers,omitempty"`
	Accompaniments []string `json:"accompaniments,omitempty"`
	RemovedText    []string `json:"removedText,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// Tier partitions a catalog by data richness. Priority entries have
// structured nutrition backing and outrank Generic entries in ties.
type Tier int

const (
	TierPriority Tier = iota
	TierGeneric
)

func (t Tier) String() string {
	if t == TierPriority {
		return "priority"
	}
	return "generic"
}

// CatalogEntry is one matchable row of a catalog snapshot. Tokens are
// built once at catalog load; entries are immutable afterwards.
type CatalogEntry struct {
	RawKey      string
	CleanedName string
	Tokens      []string
	Tier        Tier
	SourceID    string
}

// MatchCandidate pairs an entry with the score and strategy that
// produced it. Transient, never persisted.
type MatchCandidate struct {
	Entry        CatalogEntry
	Score        float64
	StrategyName string
}
