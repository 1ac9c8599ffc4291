package validate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/dinersim/core"
)

// Schema-level failures for the analysis payload. A malformed payload is a
// rejected result, never a panic or an unhandled fault.
var (
	ErrNotJSON       = errors.New("analysis payload is not valid JSON")
	ErrMissingKey    = errors.New("analysis payload is missing a required key")
	ErrBadPreference = errors.New("analysis payload has an unknown dietary preference")
	ErrBadConfidence = errors.New("analysis payload confidence must be an integer in [0,100]")
	ErrBadList       = errors.New("analysis payload list must contain only strings")
)

var analysisKeys = []string{
	"dietary_preference",
	"confidence_percent",
	"evidence",
	"ordered_dishes",
	"favorite_dishes",
}

// Analysis parses raw provider text as JSON and validates it against the
// AnalysisResult schema: enum membership, integer bounds, list-of-string
// typing and required-key presence. Unknown extra keys are tolerated.
func Analysis(text string) (*core.AnalysisResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	for _, key := range analysisKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}

	var result core.AnalysisResult

	var pref string
	if err := json.Unmarshal(fields["dietary_preference"], &pref); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPreference, err)
	}
	result.DietaryPreference = core.DietaryPreference(pref)
	if !result.DietaryPreference.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadPreference, pref)
	}

	var confidence float64
	if err := json.Unmarshal(fields["confidence_percent"], &confidence); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfidence, err)
	}
	if confidence != float64(int(confidence)) || confidence < 0 || confidence > 100 {
		return nil, fmt.Errorf("%w: got %v", ErrBadConfidence, confidence)
	}
	result.ConfidencePercent = int(confidence)

	// Evidence may be empty but must be a string.
	if err := json.Unmarshal(fields["evidence"], &result.Evidence); err != nil {
		return nil, fmt.Errorf("analysis payload evidence must be a string: %w", err)
	}

	ordered, err := stringList(fields["ordered_dishes"])
	if err != nil {
		return nil, fmt.Errorf("%w: ordered_dishes: %v", ErrBadList, err)
	}
	result.OrderedDishes = ordered

	favorites, err := stringList(fields["favorite_dishes"])
	if err != nil {
		return nil, fmt.Errorf("%w: favorite_dishes: %v", ErrBadList, err)
	}
	result.FavoriteDishes = favorites

	return &result, nil
}

// stringList decodes a JSON array of strings, rejecting any non-string
// element instead of coercing it.
func stringList(raw json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
