package provider

import (
	"context"
	"strings"
	"time"
)

// MockProvider simulates completions with a configurable delay. Used for
// development and testing without real credentials.
type MockProvider struct {
	Delay time.Duration
}

func (m *MockProvider) Name() string { return "mock" }

// Complete echoes the article prefixed with the first line of the system
// instruction, so the two tasks remain distinguishable in the UI.
func (m *MockProvider) Complete(ctx context.Context, key string, req TaskRequest) Result {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return failure(normalizeTransport(ctx.Err()))
		}
	}

	label, _, _ := strings.Cut(strings.TrimSpace(req.System), "\n")
	content := strings.TrimSpace(req.User)
	if label != "" {
		content = "[" + label + "] " + content
	}
	return Result{Success: true, Content: content}
}

func (m *MockProvider) Models(ctx context.Context, key string) ([]string, bool) {
	return []string{"mock"}, false
}
