// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"globtrek/internal/config"
	httptransport "globtrek/internal/http"
	"globtrek/internal/infra"
	"globtrek/internal/llm"
	"globtrek/internal/modules/hotels"
	"globtrek/internal/modules/planner"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider llm.Provider
	switch cfg.LLM.Provider {
	case "gemini":
		gp, err := llm.NewGemini(ctx, cfg.LLM.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gp.Close()
		provider = gp
	default:
		// A missing key is surfaced per-request, matching the contract of the
		// plan endpoint, so the server still starts.
		if cfg.LLM.OpenAIKey != "" {
			provider = llm.NewOpenAI(cfg.LLM.OpenAIKey)
		}
	}

	plannerSvc := planner.NewService(provider, cfg.LLM.Model, cfg.LLM.Temperature)

	amadeus := hotels.NewClient(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret, cfg.Amadeus.Env)
	var creds hotels.CredentialCache
	if cfg.Redis.Addr != "" {
		creds = hotels.NewRedisCredentialCache(infra.NewRedis(cfg.Redis.Addr), amadeus.IssueToken)
	} else {
		creds = hotels.NewMemoryCredentialCache(amadeus.IssueToken)
	}
	hotelSvc := hotels.NewService(amadeus, creds)

	router := httptransport.NewRouter(plannerSvc, hotelSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("globtrek-api listening on %s (model=%s provider=%s)", cfg.HTTP.Addr, cfg.LLM.Model, cfg.LLM.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
