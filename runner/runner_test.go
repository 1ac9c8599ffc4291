package runner

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/fsm"
	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/model"
	"github.com/hupe1980/dinersim/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisJSON = `{"dietary_preference":"vegan","confidence_percent":85,` +
	`"evidence":"Plant-based favorites and order.",` +
	`"ordered_dishes":["Vegan Burger"],"favorite_dishes":["Lentil Soup"]}`

// scriptedModel answers every generating step deterministically by inspecting
// the request, so any number of concurrent sessions can share it.
func scriptedModel() model.Model {
	return model.Func(func(_ context.Context, req model.Request) (string, error) {
		if req.ResponseFormat == model.FormatJSON {
			return analysisJSON, nil
		}
		// Turn index equals the transcript turns already present: system +
		// transcript + developer seed.
		switch len(req.Messages) - 2 {
		case 0:
			return "Good evening! How has your day been?", nil
		case 1:
			return "It was a lovely day, thank you.", nil
		case 2:
			return "What are your favorite dishes?", nil
		case 3:
			return "I love the Lentil Soup.", nil
		case 4:
			return "What would you like to order tonight?", nil
		default:
			return "I will take the Vegan Burger, please.", nil
		}
	})
}

func newTestRunner(m model.Model, optFns ...func(o *Options)) (*Runner, *session.InMemoryStore) {
	store := session.NewInMemoryStore()
	machine := fsm.NewMachine(store, m, menu.Default())
	return New(store, machine, optFns...), store
}

func TestRunner_RunCompletesAllSessions(t *testing.T) {
	r, store := newTestRunner(scriptedModel())
	ctx := context.Background()

	results := r.Run(ctx, 8)
	require.Len(t, results, 8)

	seen := map[string]bool{}
	for _, res := range results {
		assert.True(t, res.Completed(), res.SessionID)
		assert.Equal(t, core.StateAnalyze, res.FinalState)
		assert.False(t, seen[res.SessionID], "duplicate session id")
		seen[res.SessionID] = true

		sess, err := store.Get(ctx, res.SessionID)
		require.NoError(t, err)
		assert.Equal(t, core.StateAnalyze, sess.State)
		assert.Len(t, sess.Messages, 6)
		require.NotNil(t, sess.Analysis)
		assert.Equal(t, core.DietVegan, sess.Analysis.DietaryPreference)
	}
}

func TestRunner_ConcurrencyBound(t *testing.T) {
	var active, peak int64

	m := model.Func(func(ctx context.Context, req model.Request) (string, error) {
		cur := atomic.AddInt64(&active, 1)
		defer atomic.AddInt64(&active, -1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		return scriptedModel().Complete(ctx, req)
	})

	r, _ := newTestRunner(m, func(o *Options) {
		o.Concurrency = 2
	})

	results := r.Run(context.Background(), 10)
	for _, res := range results {
		assert.True(t, res.Completed())
	}
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestRunner_FailureIsolation(t *testing.T) {
	var calls int64

	// Every third session's first generation fails hard; the rest complete.
	m := model.Func(func(ctx context.Context, req model.Request) (string, error) {
		if len(req.Messages) == 2 { // first generating step of a session
			if n := atomic.AddInt64(&calls, 1); n%3 == 0 {
				return "", model.ErrTransport
			}
		}
		return scriptedModel().Complete(ctx, req)
	})

	r, _ := newTestRunner(m)
	results := r.Run(context.Background(), 9)

	completed, failed := 0, 0
	for _, res := range results {
		if res.Completed() {
			completed++
			continue
		}
		failed++
		assert.Equal(t, fsm.TriggerStartGreeting, res.FailedTrigger)
		assert.ErrorIs(t, res.Err, model.ErrTransport)
		assert.Equal(t, core.StateInit, res.FinalState)
	}
	assert.Equal(t, 6, completed)
	assert.Equal(t, 3, failed)
}

func TestRunner_CustomTriggerSequence(t *testing.T) {
	r, store := newTestRunner(scriptedModel(), func(o *Options) {
		o.Triggers = []string{fsm.TriggerStartGreeting}
	})

	results := r.Run(context.Background(), 1)
	require.Len(t, results, 1)
	assert.True(t, results[0].Completed())
	assert.Equal(t, core.StateGreeting, results[0].FinalState)

	sess, err := store.Get(context.Background(), results[0].SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Messages, 1)
}

func TestRunner_CancelledContext(t *testing.T) {
	r, _ := newTestRunner(scriptedModel())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := r.Run(ctx, 3)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.False(t, res.Completed())
		assert.Error(t, res.Err)
	}
}

func TestResult_Completed(t *testing.T) {
	assert.True(t, Result{SessionID: "a", FinalState: core.StateAnalyze}.Completed())
	assert.False(t, Result{FailedTrigger: fsm.TriggerRunAnalysis}.Completed())
	assert.False(t, Result{Err: assert.AnError}.Completed())
}
