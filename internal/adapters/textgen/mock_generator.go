package textgen

import (
	"context"
	"sync"
)

// MockGenerator returns a scripted response and records the prompts it received.
type MockGenerator struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

func NewMockGenerator(response string, err error) *MockGenerator {
	return &MockGenerator{Response: response, Err: err}
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Prompts returns the prompts received so far.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
