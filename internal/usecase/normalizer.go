package usecase

import (
	"regexp"
	"strings"

	"github.com/Jps0717/MealMap-sub001/internal/domain"
)

// Compiled patterns for price/number/weight removal. Menu text from
// OCR is frequently price-contaminated ("$12.99 Grilled Chicken").
var (
	// Currency amounts like "$12.99", "$ 8", "8.99"
	pricePattern = regexp.MustCompile(`\$\s*\d+(?:\.\d{1,2})?|\b\d+\.\d{2}\b`)

	// Quantity-with-unit like "12 oz", "350 g", "1.5 lb"
	weightPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:fl\s*oz|oz|ounces?|lbs?|pounds?|grams?|g|kg|ml|l)\b`)

	// Standalone one or two digit numbers (menu item numbers, counts)
	standaloneNumberPattern = regexp.MustCompile(`\b\d{1,2}\b`)
)

// ExtractCoreFoodTerms parses a raw menu-item name into its core food
// terms. Deterministic and total: it never fails, falling back to the
// longest surviving token or the original trimmed text when nothing
// recognizable remains.
//
// The steps run in fixed order, each on the previous step's output:
// price/number removal, noise-word removal, cooking-method extraction,
// primary-food selection, accompaniment collection, confidence.
func ExtractCoreFoodTerms(text string) domain.CoreFoodTerms {
	original := strings.TrimSpace(text)
	terms := domain.CoreFoodTerms{}
	working := strings.ToLower(original)

	// Step 1: strip prices, weights, and stray small numbers. Removed
	// spans are kept for diagnostics only.
	for _, re := range []*regexp.Regexp{pricePattern, weightPattern, standaloneNumberPattern} {
		for _, m := range re.FindAllString(working, -1) {
			if trimmed := strings.TrimSpace(m); trimmed != "" {
				terms.RemovedText = append(terms.RemovedText, trimmed)
			}
		}
		working = re.ReplaceAllString(working, " ")
	}
	working = nonAlphanumericRegex.ReplaceAllString(working, " ")
	working = collapse(working)

	// Step 2: drop connectives and menu filler, whole words only.
	working = removeNoiseWords(working)

	// Step 3: pull cooking methods out of the text. Each found term is
	// recorded as a modifier and deleted so it cannot double as the
	// primary food.
	for _, method := range cookingMethods {
		if containsWord(working, method) {
			terms.Modifiers = append(terms.Modifiers, method)
			working = removeWord(working, method)
		}
	}

	// Step 4: pick the primary food via the strategy cascade.
	primary, fromCompound := choosePrimaryFood(working, original)
	terms.PrimaryFood = primary

	// Step 5: accompaniments are recognized sides/sauces left in the
	// text, excluding the primary food itself.
	for _, tok := range strings.Fields(working) {
		if containsWord(primary, tok) || !accompanimentTerms[tok] {
			continue
		}
		if !containsString(terms.Accompaniments, tok) {
			terms.Accompaniments = append(terms.Accompaniments, tok)
		}
	}

	terms.Confidence = parseConfidence(primary, terms.Modifiers, fromCompound)
	return terms
}

// choosePrimaryFood runs the primary-food cascade: known protein, then
// known generic food, then compound phrase, then first plausible token.
// Returns the chosen term and whether the compound strategy picked it.
func choosePrimaryFood(working, original string) (string, bool) {
	fields := strings.Fields(working)

	for _, tok := range fields {
		if proteinTerms[tok] {
			return tok, false
		}
	}
	for _, tok := range fields {
		if genericFoodTerms[tok] {
			return tok, false
		}
	}
	padded := " " + working + " "
	for _, phrase := range compoundPhrases {
		// Noise words are already gone from the working text, so strip
		// them from the phrase too before comparing.
		stripped := removeNoiseWords(phrase)
		if stripped == "" {
			continue
		}
		if strings.Contains(padded, " "+stripped+" ") {
			return phrase, true
		}
	}
	for _, tok := range fields {
		if len(tok) > 2 && !noiseWords[tok] && !isCookingMethod(tok) {
			return tok, false
		}
	}

	// All-noise input: longest remaining non-stopword token, else the
	// original trimmed text.
	longest := ""
	for _, tok := range fields {
		if !stopWords[tok] && len(tok) > len(longest) {
			longest = tok
		}
	}
	if longest != "" {
		return longest, false
	}
	return strings.ToLower(strings.TrimSpace(original)), false
}

// parseConfidence scores how trustworthy the extraction is, in [0,1].
func parseConfidence(primary string, modifiers []string, fromCompound bool) float64 {
	if primary == "" {
		return 0
	}

	var conf float64
	switch {
	case proteinTerms[primary] || genericFoodTerms[primary] || fromCompound:
		conf = 0.6
	case len(primary) > 2:
		conf = 0.3
	}
	if len(modifiers) > 0 {
		conf += 0.2
	}
	if fromCompound {
		conf += 0.2
	}
	if len(primary) <= 2 {
		conf -= 0.3
	}

	if conf < 0 {
		return 0
	}
	if conf > 1 {
		return 1
	}
	return conf
}

// BuildCleanedQuery reassembles the extracted terms into the cleaned
// query string reported on results and used for cache keys.
func BuildCleanedQuery(terms domain.CoreFoodTerms) string {
	parts := make([]string, 0, 1+len(terms.Modifiers)+len(terms.Accompaniments))
	parts = append(parts, terms.Modifiers...)
	parts = append(parts, terms.PrimaryFood)
	parts = append(parts, terms.Accompaniments...)
	return strings.Join(parts, " ")
}

func removeNoiseWords(s string) string {
	var kept []string
	for _, tok := range strings.Fields(s) {
		if !noiseWords[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

func isCookingMethod(tok string) bool {
	for _, m := range cookingMethods {
		if m == tok {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	return strings.Contains(" "+s+" ", " "+word+" ")
}

func removeWord(s, word string) string {
	return collapse(strings.ReplaceAll(" "+s+" ", " "+word+" ", " "))
}

func collapse(s string) string {
	return strings.TrimSpace(multipleSpacesRegex.ReplaceAllString(s, " "))
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
