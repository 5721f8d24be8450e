package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wuyazuofeiji919/textfork/internal/metrics"
	"github.com/wuyazuofeiji919/textfork/internal/provider"
)

const maxArticleLength = 10000

// Options carries the per-deployment inputs the rewrite handler passes into
// each dispatch: provider credentials, the default model, and the two task
// prompts. Requests may override the model and prompts, never the key.
type Options struct {
	APIKey      string
	Model       string
	PromptLeft  string
	PromptRight string
}

type rewriteRequest struct {
	Article     string `json:"article"`
	Model       string `json:"model"`
	PromptLeft  string `json:"prompt_left"`
	PromptRight string `json:"prompt_right"`
}

type rewriteResponse struct {
	Left      provider.Result `json:"left"`
	Right     provider.Result `json:"right"`
	Model     string          `json:"model"`
	ElapsedMs int64           `json:"elapsed_ms"`
}

// Rewrite runs both tasks over the submitted article and returns the pair.
// Task failures ride inside the result slots as normalized messages; the
// endpoint itself only errors on invalid input.
func Rewrite(p provider.Completer, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req rewriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.Article == "" {
			writeError(w, http.StatusBadRequest, "article is required")
			return
		}
		if len(req.Article) > maxArticleLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("article too long: %d characters (max %d)", len(req.Article), maxArticleLength))
			return
		}
		if opts.APIKey == "" {
			writeError(w, http.StatusServiceUnavailable, "no provider API key configured")
			return
		}

		model := req.Model
		if model == "" {
			model = opts.Model
		}
		left := req.PromptLeft
		if left == "" {
			left = opts.PromptLeft
		}
		right := req.PromptRight
		if right == "" {
			right = opts.PromptRight
		}

		metrics.InputChars.Observe(float64(len(req.Article)))

		start := time.Now()
		pair := provider.Dispatch(r.Context(), p, opts.APIKey, model, req.Article, left, right)
		elapsed := time.Since(start)

		metrics.DispatchDuration.Observe(elapsed.Seconds())
		if !pair.Left.Success {
			metrics.TaskFailures.WithLabelValues("left").Inc()
		}
		if !pair.Right.Success {
			metrics.TaskFailures.WithLabelValues("right").Inc()
		}

		writeJSON(w, http.StatusOK, rewriteResponse{
			Left:      pair.Left,
			Right:     pair.Right,
			Model:     model,
			ElapsedMs: elapsed.Milliseconds(),
		})
	}
}
