// Package runner implements the fan-out driver: it launches N independent
// sessions, walks each one through the scripted trigger sequence, and bounds
// how many sessions progress at any instant. Within one session transitions
// are strictly sequential; across sessions there is no ordering guarantee
// and a failing session never aborts its siblings.
package runner

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/fsm"
	"github.com/hupe1980/dinersim/logging"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Concurrency limits how many sessions progress at any instant.
	// Additional sessions queue until a slot frees.
	Concurrency int

	// Triggers overrides the walked trigger sequence. Defaults to the
	// scripted seven-step conversation.
	Triggers []string

	// Logger receives per-session progress diagnostics.
	Logger logging.Logger
}

// Result reports where one session's walk ended. FailedTrigger is empty when
// the full sequence succeeded; Err is non-nil only for hard failures
// (generation, validation or storage faults), not for lost races or invalid
// transitions.
type Result struct {
	SessionID     string
	FinalState    core.PipelineState
	FailedTrigger string
	Err           error
}

// Completed reports whether the session walked the full trigger sequence.
func (r Result) Completed() bool { return r.FailedTrigger == "" && r.Err == nil }

// Runner drives concurrent session walks against one machine and store.
// Public methods are safe for concurrent use.
type Runner struct {
	store       core.SessionStore
	machine     *fsm.Machine
	concurrency int64
	triggers    []string
	logger      logging.Logger
}

// New constructs a Runner with optional overrides.
func New(store core.SessionStore, machine *fsm.Machine, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Concurrency: 5,
		Triggers:    fsm.ScriptedTriggers(),
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Runner{
		store:       store,
		machine:     machine,
		concurrency: int64(opts.Concurrency),
		triggers:    append([]string(nil), opts.Triggers...),
		logger:      opts.Logger,
	}
}

// Run creates count sessions and walks each to completion or first failure,
// returning one Result per session in creation order. At most Concurrency
// sessions are actively progressing at any instant.
func (r *Runner) Run(ctx context.Context, count int) []Result {
	results := make([]Result, count)
	sem := semaphore.NewWeighted(r.concurrency)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = Result{Err: err}
				return
			}
			defer sem.Release(1)
			results[i] = r.runOne(ctx)
		}(i)
	}
	wg.Wait()

	return results
}

// runOne walks a single fresh session through the trigger sequence,
// stopping at the first failed trigger.
func (r *Runner) runOne(ctx context.Context) Result {
	sess := core.NewSession()
	if err := r.store.Create(ctx, sess); err != nil {
		return Result{SessionID: sess.ID, Err: err}
	}
	r.logger.Info("session created", "session_id", sess.ID)

	result := Result{SessionID: sess.ID}
	for _, trigger := range r.triggers {
		ok, err := r.machine.Trigger(ctx, sess, trigger)
		if err != nil {
			r.logger.Error("trigger failed",
				"trigger", trigger, "session_id", sess.ID, "state", sess.State.String(), "error", err)
			result.FailedTrigger = trigger
			result.Err = err
			break
		}
		if !ok {
			r.logger.Warn("trigger rejected",
				"trigger", trigger, "session_id", sess.ID, "state", sess.State.String())
			result.FailedTrigger = trigger
			break
		}
		r.logger.Debug("trigger ok",
			"trigger", trigger, "session_id", sess.ID, "state", sess.State.String())
	}

	result.FinalState = sess.State
	r.logger.Info("session finished",
		"session_id", sess.ID, "state", sess.State.String(), "completed", result.Completed())
	return result
}
