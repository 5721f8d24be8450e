package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wuyazuofeiji919/textfork/internal/handler"
	"github.com/wuyazuofeiji919/textfork/internal/middleware"
	"github.com/wuyazuofeiji919/textfork/internal/provider"
)

// SetupMux wires handlers with the full middleware chain. serviceKey gates
// inbound requests; opts carries the provider credentials and task prompts.
func SetupMux(p provider.Provider, opts handler.Options, serviceKey string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(p, opts.APIKey))
	mux.HandleFunc("/api/models", handler.Models(p, opts.APIKey))
	mux.HandleFunc("/api/rewrite", handler.Rewrite(p, opts))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, serviceKey)
}
