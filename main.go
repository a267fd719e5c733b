package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/devmishra/aibot-backend/internal/authclient"
	"github.com/devmishra/aibot-backend/internal/config"
	"github.com/devmishra/aibot-backend/internal/llm"
	"github.com/devmishra/aibot-backend/internal/logging"
	"github.com/devmishra/aibot-backend/internal/policy"
	"github.com/devmishra/aibot-backend/internal/service"
	"github.com/devmishra/aibot-backend/internal/store"
	transport "github.com/devmishra/aibot-backend/internal/transport/http"
	v1 "github.com/devmishra/aibot-backend/internal/transport/http/v1"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(nil, cfg.LogLevel)

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("database", cfg.DatabaseURL).
		Str("inference", cfg.InferenceURL).
		Msg("starting aibot backend")

	db, err := store.NewSQLite(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()

	auth := authclient.New(cfg.AuthServiceURL, cfg.ProfileUpdateURL,
		cfg.AuthTimeout, cfg.TokenCacheTTL, log.Sub("authclient"))

	generator := llm.NewClient(cfg.InferenceURL, cfg.InferenceAPIKey, cfg.InferenceTimeout)
	models := llm.NewRegistry(generator, log.Sub("llm"))

	ctx := context.Background()
	modelPolicy, err := policy.NewEngine(ctx, policy.DefaultPolicy, log.Sub("policy"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize model policy")
	}

	svc := service.New(db, auth, models, modelPolicy, log.Sub("service"))
	handler := v1.NewHandler(svc, auth, log.Sub("http"))
	server := transport.NewServer(handler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	log.Info().Int("port", cfg.HTTPPort).Msg("aibot backend started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down gracefully")
	}

	log.Info().Msg("stopped")
}
