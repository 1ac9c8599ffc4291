package core

import "fmt"

// PipelineState identifies one node in the fixed linear pipeline a session
// walks through. The zero-th state is StateInit; each non-initial state has
// exactly one valid predecessor, so the pipeline is a straight chain rather
// than a general graph.
type PipelineState string

// Pipeline states in chain order.
const (
	StateInit           PipelineState = "init"
	StateGreeting       PipelineState = "greeting"
	StateDayReply       PipelineState = "day_reply"
	StateAskFavorites   PipelineState = "ask_favorites"
	StateFavoritesReply PipelineState = "favorites_reply"
	StateAskOrder       PipelineState = "ask_order"
	StateOrderReply     PipelineState = "order_reply"
	StateAnalyze        PipelineState = "analyze"
	StateComplete       PipelineState = "complete"
)

// pipelineOrder lists every state in chain order. It is the single source of
// truth for Index, Next and ParsePipelineState.
var pipelineOrder = []PipelineState{
	StateInit,
	StateGreeting,
	StateDayReply,
	StateAskFavorites,
	StateFavoritesReply,
	StateAskOrder,
	StateOrderReply,
	StateAnalyze,
	StateComplete,
}

// String returns the wire representation of the state.
func (s PipelineState) String() string { return string(s) }

// Index returns the position of the state within the pipeline chain, or -1
// for an unknown state.
func (s PipelineState) Index() int {
	for i, st := range pipelineOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the state is one of the defined pipeline states.
func (s PipelineState) Valid() bool { return s.Index() >= 0 }

// Next returns the successor state in the chain. The second return value is
// false for StateComplete (no successor) and for unknown states.
func (s PipelineState) Next() (PipelineState, bool) {
	i := s.Index()
	if i < 0 || i == len(pipelineOrder)-1 {
		return "", false
	}
	return pipelineOrder[i+1], true
}

// ParsePipelineState converts a raw string into a PipelineState.
func ParsePipelineState(raw string) (PipelineState, error) {
	s := PipelineState(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown pipeline state: %q", raw)
	}
	return s, nil
}

// PipelineStates returns a copy of all states in chain order.
func PipelineStates() []PipelineState {
	states := make([]PipelineState, len(pipelineOrder))
	copy(states, pipelineOrder)
	return states
}
