package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wuyazuofeiji919/textfork/internal/config"
	"github.com/wuyazuofeiji919/textfork/internal/handler"
	"github.com/wuyazuofeiji919/textfork/internal/provider"
	"github.com/wuyazuofeiji919/textfork/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock provider instead of a real endpoint")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	promptLeft, promptRight, err := cfg.Prompts()
	if err != nil {
		log.Fatalf("prompts: %v", err)
	}

	var p provider.Provider
	if *useMock {
		p = &provider.MockProvider{Delay: 500 * time.Millisecond}
		cfg.APIKey = "mock"
		log.Println("mode: mock provider enabled")
	} else {
		p = provider.NewClient(cfg.BaseURL, cfg.Referer, cfg.Title)
		log.Printf("mode: chat completions at %s (default model: %s)", cfg.BaseURL, cfg.Model)
	}

	if cfg.APIKey == "" {
		log.Println("warning: no provider api_key configured; rewrites will be rejected")
	}
	if cfg.ServiceKey != "" {
		log.Println("auth: API key required (X-API-Key header)")
	} else {
		log.Println("auth: disabled (no service_key configured)")
	}

	opts := handler.Options{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		PromptLeft:  promptLeft,
		PromptRight: promptRight,
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: server.SetupMux(p, opts, cfg.ServiceKey),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("textfork api listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}
