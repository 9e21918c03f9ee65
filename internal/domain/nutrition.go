package domain

import "time"

// NutrientRange holds a per-nutrient value range. Min == Max for point
// values; a widened range results from merging multiple catalog matches.
type NutrientRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// PointRange builds a single-value range.
func PointRange(v float64, unit string) NutrientRange {
	if v < 0 {
		v = 0
	}
	return NutrientRange{Min: v, Max: v, Unit: unit}
}

// merge widens r to cover o. A zero range on either side adopts the other.
func (r NutrientRange) merge(o NutrientRange) NutrientRange {
	if r.Unit == "" {
		return o
	}
	if o.Unit == "" {
		return r
	}
	out := r
	if o.Min < out.Min {
		out.Min = o.Min
	}
	if o.Max > out.Max {
		out.Max = o.Max
	}
	return out
}

// NutritionEstimate holds the key macronutrient ranges for a resolved
// food. Completeness is the fraction of expected nutrient fields that
// were present in the source data, used as a confidence input.
type NutritionEstimate struct {
	Calories      NutrientRange `json:"calories"`
	Protein       NutrientRange `json:"protein"`
	Carbohydrates NutrientRange `json:"carbohydrates"`
	TotalFat      NutrientRange `json:"totalFat"`
	Completeness  float64       `json:"completeness"`
}

// IsZero reports whether no nutrient field carries a value.
func (n NutritionEstimate) IsZero() bool {
	return n.Calories.Unit == "" && n.Protein.Unit == "" &&
		n.Carbohydrates.Unit == "" && n.TotalFat.Unit == ""
}

// Merge widens each nutrient range to cover both estimates and keeps
// the higher completeness.
func (n NutritionEstimate) Merge(o NutritionEstimate) NutritionEstimate {
	out := NutritionEstimate{
		Calories:      n.Calories.merge(o.Calories),
		Protein:       n.Protein.merge(o.Protein),
		Carbohydrates: n.Carbohydrates.merge(o.Carbohydrates),
		TotalFat:      n.TotalFat.merge(o.TotalFat),
		Completeness:  n.Completeness,
	}
	if o.Completeness > out.Completeness {
		out.Completeness = o.Completeness
	}
	return out
}

// ScoredResult is the unit stored in the result cache and returned to
// callers. IsAvailable == false implies Confidence == 0 and a zero
// estimate: "unavailable" is a first-class value, never an error.
type ScoredResult struct {
	OriginalInput string            `json:"originalInput"`
	CleanedQuery  string            `json:"cleanedQuery"`
	MatchedKey    string            `json:"matchedKey"`
	SourceID      string            `json:"sourceId"`
	Nutrition     NutritionEstimate `json:"nutrition"`
	MatchScore    float64           `json:"matchScore"`
	Confidence    float64           `json:"confidence"`
	IsAvailable   bool              `json:"isAvailable"`
	Timestamp     time.Time         `json:"timestamp"`
}

// Unavailable builds the canonical not-found result for an input.
func Unavailable(originalInput string) ScoredResult {
	return ScoredResult{
		OriginalInput: originalInput,
		IsAvailable:   false,
		Timestamp:     time.Now(),
	}
}
