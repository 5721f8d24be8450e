package provider

import "context"

// TaskRequest is one chat-completion job: a model, a system instruction
// defining the transformation, and the user-supplied article text.
// Immutable once built.
type TaskRequest struct {
	Model  string
	System string
	User   string
}

// Result is the outcome of exactly one TaskRequest. When Success is true,
// Content holds the generated text; otherwise Content holds a normalized,
// human-readable error message. Provider failures never surface as Go errors.
type Result struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

// Pair holds the two task results in fixed order: Left first, Right second,
// independent of which call finished first. Both slots are always populated.
type Pair struct {
	Left  Result `json:"left"`
	Right Result `json:"right"`
}

// Completer performs a single chat-completion call. The API key is passed
// per call and never retained.
type Completer interface {
	Complete(ctx context.Context, key string, req TaskRequest) Result
}

// Provider is the full contract the handlers depend on: completions plus
// the best-effort model directory.
type Provider interface {
	Completer
	Name() string
	Models(ctx context.Context, key string) (ids []string, fallback bool)
}
