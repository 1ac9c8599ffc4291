package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_EmptyRejected(t *testing.T) {
	err := Text("", Profile{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestText_NoConstraintsPasses(t *testing.T) {
	assert.NoError(t, Text("Anything goes here.", Profile{}))
}

func TestText_WrappedQuotes(t *testing.T) {
	p := Profile{ForbidWrappedQuotes: true}

	assert.ErrorIs(t, Text(`"Hello there!"`, p), ErrWrappedQuotes)
	assert.ErrorIs(t, Text(`  "Hello there!"  `, p), ErrWrappedQuotes)

	// Interior quotes are fine; only fully wrapped output is rejected.
	assert.NoError(t, Text(`He said "hello" to me.`, p))
	assert.NoError(t, Text(`"Hello there!`, p))
}

func TestText_Multiline(t *testing.T) {
	p := Profile{ForbidNewline: true}

	assert.ErrorIs(t, Text("line one\nline two", p), ErrMultiline)
	assert.NoError(t, Text("just one line", p))
}

func TestText_RequireQuestionMark(t *testing.T) {
	p := Profile{RequireQuestionMark: true}

	assert.ErrorIs(t, Text("Hello.", p), ErrMissingQuestion)
	assert.NoError(t, Text("Hello?", p))
}

func TestText_ForbidQuestionMark(t *testing.T) {
	p := Profile{ForbidQuestionMark: true}

	assert.ErrorIs(t, Text("Hello?", p), ErrUnexpectedQuestion)
	assert.NoError(t, Text("Hello.", p))
}

func TestText_ConflictingProfile(t *testing.T) {
	p := Profile{RequireQuestionMark: true, ForbidQuestionMark: true}

	// Even text that would satisfy either rule on its own is rejected.
	assert.ErrorIs(t, Text("Hello?", p), ErrConflictingProfile)
	assert.ErrorIs(t, Text("Hello.", p), ErrConflictingProfile)
}

func TestText_RequireContains(t *testing.T) {
	p := Profile{RequireContains: []string{"lentil soup"}}

	assert.NoError(t, Text("I'd love the Lentil Soup today.", p))
	assert.Error(t, Text("I'd love the Quinoa Salad today.", p))
}

func TestText_CheckOrder(t *testing.T) {
	// Wrapped quotes are checked before the newline rule.
	p := Profile{ForbidWrappedQuotes: true, ForbidNewline: true}
	err := Text("\"line one\nline two\"", p)
	assert.ErrorIs(t, err, ErrWrappedQuotes)
}
