package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Role identifies the author of a chat message in provider terms.
type Role string

// Chat roles understood by the provider adapters.
const (
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is the minimal chat message structure compatible with common
// generation providers.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// System builds a system message.
func System(content string) ChatMessage { return ChatMessage{Role: RoleSystem, Content: content} }

// Developer builds a developer/instruction message, used to seed a turn
// without transcript or to pass auxiliary extracted facts.
func Developer(content string) ChatMessage {
	return ChatMessage{Role: RoleDeveloper, Content: content}
}

// User builds an incoming-turn message.
func User(content string) ChatMessage { return ChatMessage{Role: RoleUser, Content: content} }

// Assistant builds an outgoing-turn message.
func Assistant(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

// ResponseFormat selects the completion output shape.
type ResponseFormat string

// Supported response formats.
const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json"
)

// Request captures the normalized input for a single non-streaming
// completion. Model and Temperature are optional per-call overrides; the
// adapter's configured defaults apply when unset.
type Request struct {
	Model          string         `json:"model,omitempty"`
	Messages       []ChatMessage  `json:"messages"`
	Temperature    *float64       `json:"temperature,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive generation. Complete
// performs one non-streaming chat completion and returns its primary text
// content. Implementations map provider faults onto the sentinel error kinds
// below so callers can distinguish failure classes with errors.Is.
type Model interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// Sentinel error kinds surfaced by provider adapters. Wrapped errors retain
// the provider detail; use errors.Is against these to branch on kind.
var (
	// ErrClient indicates a client-side validation or configuration fault
	// (bad parameters, missing credentials).
	ErrClient = errors.New("model: client error")

	// ErrTransport indicates a transport or provider-side fault (timeouts,
	// connection failures, non-2xx responses, rate limits).
	ErrTransport = errors.New("model: transport error")

	// ErrInvalidResponse indicates the provider returned malformed or
	// incomplete data (e.g. a completion without choices).
	ErrInvalidResponse = errors.New("model: invalid response")
)

// Func is a functional adapter to allow ordinary functions to be used as
// Models. Useful in tests and examples.
type Func func(ctx context.Context, req Request) (string, error)

// Complete implements Model.
func (f Func) Complete(ctx context.Context, req Request) (string, error) { return f(ctx, req) }

// Info implements Model.
func (Func) Info() Info { return Info{Name: "func", Provider: "func"} }

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It replays a scripted sequence of outputs in FIFO order and is safe for
// concurrent use. When the script is exhausted it falls back to echoing the
// last request message.
type MockModel struct {
	mu      sync.Mutex
	info    Info
	outputs []string
	err     error
	calls   []Request
}

// NewMockModel constructs a MockModel replaying the given outputs in order.
func NewMockModel(outputs ...string) *MockModel {
	return &MockModel{
		info:    Info{Name: "mock", Provider: "mock"},
		outputs: append([]string(nil), outputs...),
	}
}

// AddOutput appends another scripted completion.
func (m *MockModel) AddOutput(output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs = append(m.outputs, output)
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns a copy of all requests seen so far.
func (m *MockModel) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// Complete implements Model; pops the next scripted output.
func (m *MockModel) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return "", m.err
	}
	if len(m.outputs) > 0 {
		out := m.outputs[0]
		m.outputs = m.outputs[1:]
		return out, nil
	}
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("%w: no messages provided", ErrClient)
	}
	return fmt.Sprintf("Mock response to: %s", req.Messages[len(req.Messages)-1].Content), nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
