// Package validate holds the pure, stateless checks applied to generated
// output before it is persisted: syntactic constraints on free-text turns
// and a schema check for the structured analysis payload. Nothing here
// judges semantics; a syntactically valid but nonsensical turn passes.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Profile configures the syntactic constraints applied to one step's output.
// RequireQuestionMark and ForbidQuestionMark are mutually exclusive; setting
// both makes every input fail, which Text reports explicitly.
type Profile struct {
	ForbidWrappedQuotes bool
	ForbidNewline       bool
	RequireQuestionMark bool
	ForbidQuestionMark  bool
	RequireContains     []string
}

// Validation failures. Callers generally only care that the text was
// rejected, but the distinct errors keep log lines actionable.
var (
	ErrEmpty              = errors.New("text is empty")
	ErrWrappedQuotes      = errors.New("text should not be quoted")
	ErrMultiline          = errors.New("text should be single line")
	ErrMissingQuestion    = errors.New("text should contain a question mark")
	ErrUnexpectedQuestion = errors.New("text should not contain question marks")
	ErrConflictingProfile = errors.New("profile both requires and forbids a question mark")
)

// Text checks the given text against the profile, returning nil when it
// passes. Checks run in a fixed order and the first failure wins.
func Text(text string, p Profile) error {
	if text == "" {
		return ErrEmpty
	}
	if p.RequireQuestionMark && p.ForbidQuestionMark {
		return ErrConflictingProfile
	}
	if p.ForbidWrappedQuotes {
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) && len(trimmed) > 1 {
			return ErrWrappedQuotes
		}
	}
	if p.ForbidNewline && strings.Contains(text, "\n") {
		return ErrMultiline
	}
	if p.RequireQuestionMark && !strings.Contains(text, "?") {
		return ErrMissingQuestion
	}
	if p.ForbidQuestionMark && strings.Contains(text, "?") {
		return ErrUnexpectedQuestion
	}
	lower := strings.ToLower(text)
	for _, phrase := range p.RequireContains {
		if !strings.Contains(lower, strings.ToLower(phrase)) {
			return fmt.Errorf("text should contain phrase: %s", phrase)
		}
	}
	return nil
}
