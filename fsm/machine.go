package fsm

import (
	"context"
	"fmt"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/logging"
	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/model"
)

// Trigger names, one per pipeline edge.
const (
	TriggerStartGreeting         = "start_greeting"
	TriggerReceiveDayReply       = "receive_day_reply"
	TriggerProceedToAskFavorites = "proceed_to_ask_favorites"
	TriggerReceiveFavoritesReply = "receive_favorites_reply"
	TriggerProceedToAskOrder     = "proceed_to_ask_order"
	TriggerReceiveOrderReply     = "receive_order_reply"
	TriggerRunAnalysis           = "run_analysis"
	TriggerCompleteSession       = "complete_session"
)

// Transition is one named, directed edge between two pipeline states.
type Transition struct {
	Trigger string
	Source  core.PipelineState
	Dest    core.PipelineState
}

// Transitions returns the full transition table in pipeline order.
func Transitions() []Transition {
	return []Transition{
		{TriggerStartGreeting, core.StateInit, core.StateGreeting},
		{TriggerReceiveDayReply, core.StateGreeting, core.StateDayReply},
		{TriggerProceedToAskFavorites, core.StateDayReply, core.StateAskFavorites},
		{TriggerReceiveFavoritesReply, core.StateAskFavorites, core.StateFavoritesReply},
		{TriggerProceedToAskOrder, core.StateFavoritesReply, core.StateAskOrder},
		{TriggerReceiveOrderReply, core.StateAskOrder, core.StateOrderReply},
		{TriggerRunAnalysis, core.StateOrderReply, core.StateAnalyze},
		{TriggerCompleteSession, core.StateAnalyze, core.StateComplete},
	}
}

// ScriptedTriggers returns the seven triggers a full simulated conversation
// fires, in order. TriggerCompleteSession is a valid edge but is not part of
// the scripted walk.
func ScriptedTriggers() []string {
	return []string{
		TriggerStartGreeting,
		TriggerReceiveDayReply,
		TriggerProceedToAskFavorites,
		TriggerReceiveFavoritesReply,
		TriggerProceedToAskOrder,
		TriggerReceiveOrderReply,
		TriggerRunAnalysis,
	}
}

// Options configures a Machine.
type Options struct {
	// Logger receives per-transition diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Machine enforces the pipeline's transition table and makes each
// transition's effects durable exactly once. It holds no per-session state
// and is safe for concurrent use across sessions; concurrent triggers on the
// same session are serialized by the store's conditional update.
type Machine struct {
	store       core.SessionStore
	handlers    map[core.PipelineState]StepHandler
	transitions map[string]Transition
	logger      logging.Logger
}

// NewMachine builds a machine with the fixed handler table for the given
// generation model and menu catalog.
func NewMachine(store core.SessionStore, m model.Model, catalog *menu.Catalog, optFns ...func(o *Options)) *Machine {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	transitions := make(map[string]Transition)
	for _, t := range Transitions() {
		transitions[t.Trigger] = t
	}

	return &Machine{
		store:       store,
		handlers:    newHandlers(m, catalog),
		transitions: transitions,
		logger:      opts.Logger,
	}
}

// Trigger attempts to fire the named transition on the session.
//
// It returns (false, nil) for the safe, expected failures: an unknown
// trigger, a source-state mismatch, or a conditional update that matched
// zero records because another writer already advanced the session. It
// returns (false, err) when generation or validation failed, or the store
// itself errored; such a transition aborts without mutating anything and the
// caller decides whether to retry. On success the in-memory session is
// refreshed to the destination state before (true, nil) is returned.
func (ma *Machine) Trigger(ctx context.Context, sess *core.Session, trigger string) (bool, error) {
	t, ok := ma.transitions[trigger]
	if !ok {
		ma.logger.Debug("unknown trigger", "trigger", trigger, "session_id", sess.ID)
		return false, nil
	}
	if sess.State != t.Source {
		ma.logger.Debug("trigger does not match current state",
			"trigger", trigger, "session_id", sess.ID,
			"state", sess.State.String(), "required", t.Source.String())
		return false, nil
	}

	handler := ma.handlers[t.Dest]
	output, err := handler.Generate(ctx, sess)
	if err != nil {
		ma.logger.Error("step generation failed",
			"trigger", trigger, "session_id", sess.ID, "state", t.Dest.String(), "error", err)
		return false, fmt.Errorf("generate for state %s: %w", t.Dest, err)
	}

	matched, err := ma.store.ConditionalUpdate(ctx, sess.ID, t.Source, output.Update, t.Dest)
	if err != nil {
		return false, fmt.Errorf("commit transition %s: %w", trigger, err)
	}
	if matched == 0 {
		// Another writer advanced the session first; the transition is lost
		// and retrying the same trigger is pointless.
		ma.logger.Warn("transition lost to concurrent writer",
			"trigger", trigger, "session_id", sess.ID, "expected_state", t.Source.String())
		return false, nil
	}

	sess.Apply(output.Update, t.Dest)
	ma.logger.Debug("transition committed",
		"trigger", trigger, "session_id", sess.ID, "state", t.Dest.String())
	return true, nil
}
