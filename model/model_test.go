package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_ReplaysOutputsInOrder(t *testing.T) {
	mock := NewMockModel("first", "second")
	ctx := context.Background()

	out, err := mock.Complete(ctx, Request{Messages: []ChatMessage{User("hi")}})
	require.NoError(t, err)
	assert.Equal(t, "first", out)

	out, err = mock.Complete(ctx, Request{Messages: []ChatMessage{User("hi")}})
	require.NoError(t, err)
	assert.Equal(t, "second", out)
}

func TestMockModel_FallbackEchoesLastMessage(t *testing.T) {
	mock := NewMockModel()

	out, err := mock.Complete(context.Background(), Request{
		Messages: []ChatMessage{System("sys"), User("hello there")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello there", out)
}

func TestMockModel_NoMessages(t *testing.T) {
	mock := NewMockModel()

	_, err := mock.Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrClient)
}

func TestMockModel_FailWith(t *testing.T) {
	mock := NewMockModel("unused")
	sentinel := errors.New("boom")
	mock.FailWith(sentinel)

	_, err := mock.Complete(context.Background(), Request{Messages: []ChatMessage{User("hi")}})
	assert.ErrorIs(t, err, sentinel)
}

func TestMockModel_RecordsCalls(t *testing.T) {
	mock := NewMockModel("a", "b")
	ctx := context.Background()

	_, _ = mock.Complete(ctx, Request{Messages: []ChatMessage{User("one")}})
	_, _ = mock.Complete(ctx, Request{Messages: []ChatMessage{User("two")}})

	calls := mock.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "one", calls[0].Messages[0].Content)
	assert.Equal(t, "two", calls[1].Messages[0].Content)
}

func TestMockModel_CancelledContext(t *testing.T) {
	mock := NewMockModel("unused")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Complete(ctx, Request{Messages: []ChatMessage{User("hi")}})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFunc_AdaptsOrdinaryFunctions(t *testing.T) {
	m := Func(func(ctx context.Context, req Request) (string, error) {
		return "from func", nil
	})

	out, err := m.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "from func", out)
	assert.Equal(t, "func", m.Info().Provider)
}

func TestMessageHelpers(t *testing.T) {
	assert.Equal(t, ChatMessage{Role: RoleSystem, Content: "s"}, System("s"))
	assert.Equal(t, ChatMessage{Role: RoleDeveloper, Content: "d"}, Developer("d"))
	assert.Equal(t, ChatMessage{Role: RoleUser, Content: "u"}, User("u"))
	assert.Equal(t, ChatMessage{Role: RoleAssistant, Content: "a"}, Assistant("a"))
}
