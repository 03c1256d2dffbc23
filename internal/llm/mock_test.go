package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCompleter_ReplaysResponses(t *testing.T) {
	t.Parallel()

	mock := &MockCompleter{Responses: []string{"first", "second"}, Response: "default"}

	got, err := mock.Complete(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = mock.Complete(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// Scripted responses exhausted, fall back to the fixed one.
	got, err = mock.Complete(context.Background(), "p3")
	require.NoError(t, err)
	assert.Equal(t, "default", got)

	assert.Equal(t, 3, mock.Calls())
	assert.Equal(t, []string{"p1", "p2", "p3"}, mock.Prompts())
}

func TestMockCompleter_Err(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mock := &MockCompleter{Err: boom}

	_, err := mock.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, mock.Calls())
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewGeminiClient(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
