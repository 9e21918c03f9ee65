package menucatalog

import "github.com/Jps0717/MealMap-sub001/internal/domain"

// point builds a point nutrition record with full completeness.
func point(kcal, protein, carbs, fat float64) domain.NutritionEstimate {
	return domain.NutritionEstimate{
		Calories:      domain.PointRange(kcal, "kcal"),
		Protein:       domain.PointRange(protein, "g"),
		Carbohydrates: domain.PointRange(carbs, "g"),
		TotalFat:      domain.PointRange(fat, "g"),
		Completeness:  1.0,
	}
}

// DefaultEntries returns the built-in catalog: R-code restaurant
// chains with structured menu data in the Priority tier, common foods
// in the Generic tier. Values are per typical serving.
func DefaultEntries() []Entry {
	return []Entry{
		// R-code chains (Priority tier)
		{Key: "R0056", Name: "mcdonalds", Tier: domain.TierPriority, Nutrition: point(563, 26, 44, 33)},
		{Key: "R0057", Name: "mcdonalds big mac", Tier: domain.TierPriority, Nutrition: point(563, 26, 44, 33)},
		{Key: "R0058", Name: "mcdonalds french fries", Tier: domain.TierPriority, Nutrition: point(320, 5, 43, 15)},
		{Key: "R0101", Name: "wendys", Tier: domain.TierPriority, Nutrition: point(570, 29, 39, 34)},
		{Key: "R0102", Name: "wendys baconator", Tier: domain.TierPriority, Nutrition: point(960, 58, 39, 65)},
		{Key: "R0140", Name: "subway", Tier: domain.TierPriority, Nutrition: point(350, 19, 44, 9)},
		{Key: "R0141", Name: "subway turkey sandwich", Tier: domain.TierPriority, Nutrition: point(280, 18, 46, 4)},
		{Key: "R0172", Name: "chipotle", Tier: domain.TierPriority, Nutrition: point(905, 45, 101, 32)},
		{Key: "R0173", Name: "chipotle chicken burrito", Tier: domain.TierPriority, Nutrition: point(975, 52, 104, 34)},
		{Key: "R0204", Name: "kfc", Tier: domain.TierPriority, Nutrition: point(390, 21, 11, 23)},
		{Key: "R0205", Name: "kfc fried chicken", Tier: domain.TierPriority, Nutrition: point(390, 21, 11, 23)},
		{Key: "R0231", Name: "starbucks", Tier: domain.TierPriority, Nutrition: point(250, 2, 41, 9)},

		// Generic foods (Generic tier)
		{Key: "chicken_breast", Name: "chicken breast", Tier: domain.TierGeneric, Nutrition: point(165, 31, 0, 3.6)},
		{Key: "grilled_chicken", Name: "grilled chicken", Tier: domain.TierGeneric, Nutrition: point(187, 35, 0, 4.1)},
		{Key: "cheeseburger", Name: "cheeseburger", Tier: domain.TierGeneric, Nutrition: point(535, 27, 40, 29)},
		{Key: "caesar_salad", Name: "caesar salad", Tier: domain.TierGeneric, Nutrition: point(360, 8, 14, 31)},
		{Key: "french_fries", Name: "french fries", Tier: domain.TierGeneric, Nutrition: point(312, 3.4, 41, 15)},
		{Key: "white_rice", Name: "white rice", Tier: domain.TierGeneric, Nutrition: point(205, 4.3, 45, 0.4)},
		{Key: "salmon_fillet", Name: "salmon fillet", Tier: domain.TierGeneric, Nutrition: point(367, 40, 0, 22)},
		{Key: "pepperoni_pizza", Name: "pepperoni pizza", Tier: domain.TierGeneric, Nutrition: point(298, 13, 34, 12)},
		{Key: "beef_taco", Name: "beef taco", Tier: domain.TierGeneric, Nutrition: point(226, 13, 20, 11)},
		{Key: "pancakes", Name: "pancakes", Tier: domain.TierGeneric, Nutrition: point(227, 6.4, 28, 9.7)},
		{Key: "scrambled_eggs", Name: "scrambled eggs", Tier: domain.TierGeneric, Nutrition: point(182, 12, 2, 13)},
		{Key: "oatmeal", Name: "oatmeal", Tier: domain.TierGeneric, Nutrition: point(158, 5.5, 27, 3.2)},
	}
}
