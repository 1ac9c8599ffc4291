package core

// DietaryPreference is the judged dietary classification of a customer.
type DietaryPreference string

// Allowed dietary preference values.
const (
	DietVegan         DietaryPreference = "vegan"
	DietVegetarian    DietaryPreference = "vegetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
	DietUnknown       DietaryPreference = "unknown"
)

// Valid reports whether the value is one of the four allowed preferences.
func (d DietaryPreference) Valid() bool {
	switch d {
	case DietVegan, DietVegetarian, DietNonVegetarian, DietUnknown:
		return true
	}
	return false
}

// AnalysisResult is the structured judgment extracted from a completed
// transcript. The engine validates only its shape; the classification
// semantics are the generation provider's responsibility.
type AnalysisResult struct {
	DietaryPreference DietaryPreference `json:"dietary_preference"`
	ConfidencePercent int               `json:"confidence_percent"`
	Evidence          string            `json:"evidence"`
	OrderedDishes     []string          `json:"ordered_dishes"`
	FavoriteDishes    []string          `json:"favorite_dishes"`
}

// Clone returns a deep copy of the result.
func (a *AnalysisResult) Clone() *AnalysisResult {
	clone := *a
	clone.OrderedDishes = append([]string(nil), a.OrderedDishes...)
	clone.FavoriteDishes = append([]string(nil), a.FavoriteDishes...)
	return &clone
}
