package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GavinoGM/Problem-Solver/src/api/config"
	"github.com/GavinoGM/Problem-Solver/src/api/webserver"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Printf("OPENAI_API_KEY not set; openai requests will fail until configured")
	} else {
		log.Printf("openai key configured (%s)", config.KeyHint(cfg.OpenAIKey))
	}
	if cfg.AnthropicKey != "" {
		log.Printf("anthropic key configured (%s)", config.KeyHint(cfg.AnthropicKey))
	}

	router := webserver.New(cfg)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Problem Solver API listening on %s (default model %s)", cfg.Port, cfg.Model)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
