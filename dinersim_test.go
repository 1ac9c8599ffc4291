package dinersim

import (
	"context"
	"testing"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/fsm"
	"github.com/hupe1980/dinersim/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisJSON = `{"dietary_preference":"vegetarian","confidence_percent":70,` +
	`"evidence":"Dairy dishes but no meat.",` +
	`"ordered_dishes":["Margherita Pizza"],"favorite_dishes":["Paneer Tikka"]}`

func scriptedOutputs() []string {
	return []string{
		"Good evening! How has your day been?",
		"It was a lovely day, thank you.",
		"What are your favorite dishes?",
		"I love the Paneer Tikka.",
		"What would you like to order tonight?",
		"I will take the Margherita Pizza, please.",
		analysisJSON,
	}
}

func TestDinerSim_SingleSessionWalk(t *testing.T) {
	sim := New(model.NewMockModel(scriptedOutputs()...))
	ctx := context.Background()

	sess, err := sim.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.StateInit, sess.State)

	for _, trigger := range fsm.ScriptedTriggers() {
		ok, err := sim.Trigger(ctx, sess, trigger)
		require.NoError(t, err, trigger)
		require.True(t, ok, trigger)
	}

	assert.Equal(t, core.StateAnalyze, sess.State)
	require.NotNil(t, sess.Analysis)
	assert.Equal(t, core.DietVegetarian, sess.Analysis.DietaryPreference)

	// The stored snapshot agrees with the driven session.
	stored, err := sim.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StateAnalyze, stored.State)
	assert.Len(t, stored.Messages, 6)
}

func TestDinerSim_RunBatch(t *testing.T) {
	m := model.Func(func(_ context.Context, req model.Request) (string, error) {
		if req.ResponseFormat == model.FormatJSON {
			return analysisJSON, nil
		}
		outputs := scriptedOutputs()
		i := len(req.Messages) - 2
		if i < 0 || i >= 6 {
			i = 5
		}
		return outputs[i], nil
	})

	sim := New(m, func(o *Options) {
		o.Concurrency = 2
	})

	results := sim.Run(context.Background(), 4)
	require.Len(t, results, 4)
	for _, res := range results {
		assert.True(t, res.Completed())
		assert.Equal(t, core.StateAnalyze, res.FinalState)
	}
}
