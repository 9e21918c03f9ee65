package domain

import "testing"

func TestPointRange_ClampsNegative(t *testing.T) {
	r := PointRange(-5, "g")
	if r.Min != 0 || r.Max != 0 {
		t.Errorf("PointRange(-5) = [%v, %v], want [0, 0]", r.Min, r.Max)
	}
	if r.Unit != "g" {
		t.Errorf("Unit = %q, want g", r.Unit)
	}
}

func TestNutritionEstimate_Merge(t *testing.T) {
	a := NutritionEstimate{
		Calories:     PointRange(975, "kcal"),
		Protein:      PointRange(52, "g"),
		Completeness: 1.0,
	}
	b := NutritionEstimate{
		Calories:     PointRange(390, "kcal"),
		Protein:      PointRange(21, "g"),
		TotalFat:     PointRange(23, "g"),
		Completeness: 0.75,
	}

	m := a.Merge(b)
	if m.Calories.Min != 390 || m.Calories.Max != 975 {
		t.Errorf("Calories = [%v, %v], want [390, 975]", m.Calories.Min, m.Calories.Max)
	}
	if m.Protein.Min != 21 || m.Protein.Max != 52 {
		t.Errorf("Protein = [%v, %v], want [21, 52]", m.Protein.Min, m.Protein.Max)
	}
	// A zero range on one side adopts the other.
	if m.TotalFat.Min != 23 || m.TotalFat.Max != 23 {
		t.Errorf("TotalFat = [%v, %v], want [23, 23]", m.TotalFat.Min, m.TotalFat.Max)
	}
	if m.Completeness != 1.0 {
		t.Errorf("Completeness = %v, want the higher 1.0", m.Completeness)
	}
}

func TestNutritionEstimate_IsZero(t *testing.T) {
	var n NutritionEstimate
	if !n.IsZero() {
		t.Error("empty estimate should be zero")
	}
	n.Protein = PointRange(10, "g")
	if n.IsZero() {
		t.Error("estimate with protein should not be zero")
	}
}

func TestUnavailable(t *testing.T) {
	r := Unavailable("mystery dish")
	if r.IsAvailable {
		t.Error("Unavailable result must not be available")
	}
	if r.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", r.Confidence)
	}
	if !r.Nutrition.IsZero() {
		t.Error("Nutrition should be zero")
	}
	if r.OriginalInput != "mystery dish" {
		t.Errorf("OriginalInput = %q", r.OriginalInput)
	}
	if r.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestBoundsFromCenter(t *testing.T) {
	center := Point{Latitude: 40.0, Longitude: -75.0}
	b := BoundsFromCenter(center, 69.0)

	if b.MinLat != 39.0 || b.MaxLat != 41.0 {
		t.Errorf("lat bounds = [%v, %v], want [39, 41]", b.MinLat, b.MaxLat)
	}
	if b.MinLon != -76.0 || b.MaxLon != -74.0 {
		t.Errorf("lon bounds = [%v, %v], want [-76, -74]", b.MinLon, b.MaxLon)
	}
}

func TestGeographicBounds_ContainsInclusive(t *testing.T) {
	b := BoundsFromCenter(Point{Latitude: 40.0, Longitude: -75.0}, 69.0)

	if !b.Contains(Point{Latitude: 41.0, Longitude: -75.0}) {
		t.Error("boundary point should be contained")
	}
	if b.Contains(Point{Latitude: 41.0001, Longitude: -75.0}) {
		t.Error("point past the boundary should not be contained")
	}
}

func TestRegionKey(t *testing.T) {
	key := RegionKey(Point{Latitude: 40.712776, Longitude: -74.005974})
	if key != "40.7128,-74.0060" {
		t.Errorf("RegionKey = %q, want 40.7128,-74.0060", key)
	}

	// Nearby points within rounding distance share a key.
	other := RegionKey(Point{Latitude: 40.71278, Longitude: -74.00597})
	if key != other {
		t.Errorf("keys differ: %q vs %q", key, other)
	}
}
