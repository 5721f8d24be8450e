package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// stubCompleter resolves each task from its system instruction, optionally
// delaying one side to force a completion-order inversion.
type stubCompleter struct {
	resolve   func(req TaskRequest) Result
	delayFor  string
	delay     time.Duration
	callCount atomic.Int32
}

func (s *stubCompleter) Complete(ctx context.Context, key string, req TaskRequest) Result {
	s.callCount.Add(1)
	if s.delayFor != "" && req.System == s.delayFor {
		time.Sleep(s.delay)
	}
	return s.resolve(req)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func echoReverseStub() *stubCompleter {
	return &stubCompleter{
		resolve: func(req TaskRequest) Result {
			switch req.System {
			case "Echo the text":
				return Result{Success: true, Content: req.User}
			case "Reverse the text":
				return Result{Success: true, Content: reverse(req.User)}
			}
			return failure("unknown task")
		},
	}
}

func TestDispatchBothSucceed(t *testing.T) {
	pair := Dispatch(context.Background(), echoReverseStub(), "sk-test", "test-model",
		"Hello world", "Echo the text", "Reverse the text")

	if !pair.Left.Success || pair.Left.Content != "Hello world" {
		t.Errorf("left: got %+v, want success %q", pair.Left, "Hello world")
	}
	if !pair.Right.Success || pair.Right.Content != "dlrow olleH" {
		t.Errorf("right: got %+v, want success %q", pair.Right, "dlrow olleH")
	}
}

func TestDispatchOrderInvariance(t *testing.T) {
	// Left finishes well after right; the pair must still be left-first.
	stub := echoReverseStub()
	stub.delayFor = "Echo the text"
	stub.delay = 100 * time.Millisecond

	pair := Dispatch(context.Background(), stub, "sk-test", "test-model",
		"Hello world", "Echo the text", "Reverse the text")

	if pair.Left.Content != "Hello world" {
		t.Errorf("left: got %q, want %q", pair.Left.Content, "Hello world")
	}
	if pair.Right.Content != "dlrow olleH" {
		t.Errorf("right: got %q, want %q", pair.Right.Content, "dlrow olleH")
	}
}

func TestDispatchFailureIsolation(t *testing.T) {
	stub := &stubCompleter{
		resolve: func(req TaskRequest) Result {
			if req.System == "Echo the text" {
				return failure("connection reset")
			}
			return Result{Success: true, Content: reverse(req.User)}
		},
	}

	pair := Dispatch(context.Background(), stub, "sk-test", "test-model",
		"Hello world", "Echo the text", "Reverse the text")

	if pair.Left.Success {
		t.Error("left: expected failure")
	}
	if !strings.HasPrefix(pair.Left.Content, "error: ") {
		t.Errorf("left content missing error marker: %q", pair.Left.Content)
	}
	if !pair.Right.Success || pair.Right.Content != "dlrow olleH" {
		t.Errorf("right: got %+v, want success %q", pair.Right, "dlrow olleH")
	}
}

func TestDispatchBothFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"No auth credentials found"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	pair := Dispatch(context.Background(), c, "bad-key", "test-model",
		"Hello world", "Echo the text", "Reverse the text")

	for name, res := range map[string]Result{"left": pair.Left, "right": pair.Right} {
		if res.Success {
			t.Errorf("%s: expected failure", name)
		}
		if !strings.Contains(res.Content, msgUnauthorized) {
			t.Errorf("%s content: got %q, want it to contain %q", name, res.Content, msgUnauthorized)
		}
	}
}

func TestDispatchSharedInputs(t *testing.T) {
	var reqs [2]TaskRequest
	var idx atomic.Int32
	stub := &stubCompleter{
		resolve: func(req TaskRequest) Result {
			reqs[idx.Add(1)-1] = req
			return Result{Success: true, Content: "ok"}
		},
	}

	Dispatch(context.Background(), stub, "sk-test", "test-model",
		"article body", "left prompt", "right prompt")

	if got := stub.callCount.Load(); got != 2 {
		t.Fatalf("calls: got %d, want 2", got)
	}
	for _, req := range reqs {
		if req.Model != "test-model" {
			t.Errorf("model: got %q, want %q", req.Model, "test-model")
		}
		if req.User != "article body" {
			t.Errorf("user content: got %q, want %q", req.User, "article body")
		}
	}
	systems := map[string]bool{reqs[0].System: true, reqs[1].System: true}
	if !systems["left prompt"] || !systems["right prompt"] {
		t.Errorf("system instructions: got %v", systems)
	}
}
