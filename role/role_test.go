package role

import (
	"testing"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transcript = []core.DialogMessage{
	{Speaker: core.SpeakerWaiter, Text: "Good evening! How has your day been?"},
	{Speaker: core.SpeakerCustomer, Text: "It was a lovely day."},
	{Speaker: core.SpeakerWaiter, Text: "What are your favorite dishes?"},
}

func TestBuildMessages_WaiterPerspective(t *testing.T) {
	msgs := Waiter().BuildMessages("system prompt", transcript)

	require.Len(t, msgs, 4)
	assert.Equal(t, model.RoleSystem, msgs[0].Role)
	assert.Equal(t, "system prompt", msgs[0].Content)

	// The waiter's own turns read as assistant, the customer's as user.
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.Equal(t, model.RoleUser, msgs[2].Role)
	assert.Equal(t, model.RoleAssistant, msgs[3].Role)
}

func TestBuildMessages_CustomerPerspective(t *testing.T) {
	msgs := Customer().BuildMessages("system prompt", transcript)

	require.Len(t, msgs, 4)

	// Mirror image of the waiter's view over the same transcript.
	assert.Equal(t, model.RoleUser, msgs[1].Role)
	assert.Equal(t, model.RoleAssistant, msgs[2].Role)
	assert.Equal(t, model.RoleUser, msgs[3].Role)
}

func TestBuildMessages_AnalyzerSkipsTranscript(t *testing.T) {
	facts := model.Developer("Customer's Favorite: soup")
	msgs := Analyzer().BuildMessages("judge prompt", transcript, facts)

	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleSystem, msgs[0].Role)
	assert.Equal(t, facts, msgs[1])
}

func TestBuildMessages_ExtraAppendedLast(t *testing.T) {
	seed := model.Developer("Start your chat.")
	msgs := Waiter().BuildMessages("system prompt", transcript, seed)

	require.Len(t, msgs, 5)
	assert.Equal(t, seed, msgs[4])
}

func TestRole_Actor(t *testing.T) {
	assert.Equal(t, core.SpeakerWaiter, Waiter().Actor())
	assert.Equal(t, core.SpeakerCustomer, Customer().Actor())
	assert.Empty(t, Analyzer().Actor())
}

func TestRole_Persona(t *testing.T) {
	assert.Contains(t, Waiter().Persona(), "waiter")
	assert.Contains(t, Customer().Persona(), "customer")
	assert.Contains(t, Analyzer().Persona(), "dietary preference")
}
