package llm

import (
	"context"
	"sync"
)

// MockCompleter is a test implementation that replays scripted responses
// and counts calls, so pipeline tests can assert that no network traffic
// happened (or exactly how much did).
type MockCompleter struct {
	mu sync.Mutex

	// Response is returned for every call unless Responses has entries.
	Response string
	// Responses is consumed one entry per call when non-empty.
	Responses []string
	// Err, when set, fails every call.
	Err error

	calls   int
	prompts []string
}

// NewMockCompleter creates a mock that always returns response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

func (m *MockCompleter) Name() string { return "mock" }

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.prompts = append(m.prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		resp := m.Responses[0]
		m.Responses = m.Responses[1:]
		return resp, nil
	}
	return m.Response, nil
}

// Calls reports how many completions were requested.
func (m *MockCompleter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Prompts returns the prompts seen so far, in call order.
func (m *MockCompleter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
