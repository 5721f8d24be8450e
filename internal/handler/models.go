package handler

import (
	"net/http"

	"github.com/wuyazuofeiji919/textfork/internal/metrics"
	"github.com/wuyazuofeiji919/textfork/internal/provider"
)

type modelsResponse struct {
	Models []string `json:"models"`
	// Fallback is the advisory notice that the provider catalog was
	// unreachable and the static default list is being served.
	Fallback bool `json:"fallback"`
}

// Models serves the provider's model directory, best effort.
func Models(p provider.Provider, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, fallback := p.Models(r.Context(), apiKey)
		if fallback {
			metrics.ModelFallbacks.Inc()
		}

		writeJSON(w, http.StatusOK, modelsResponse{Models: ids, Fallback: fallback})
	}
}
