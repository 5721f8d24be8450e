package handler

import (
	"net/http"

	"github.com/wuyazuofeiji919/textfork/internal/provider"
)

type healthResponse struct {
	Status        string `json:"status"`
	Provider      string `json:"provider"`
	KeyConfigured bool   `json:"key_configured"`
}

func Health(p provider.Provider, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:        "ok",
			Provider:      p.Name(),
			KeyConfigured: apiKey != "",
		})
	}
}
