// Command stubserver runs the Planora contract stub on the configured port.
// It serves the backend's REST surface from seeded in-memory fixtures.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planora/planora-app/internal/api"
	"github.com/planora/planora-app/internal/api/handler"
	"github.com/planora/planora-app/internal/infrastructure/config"
	"github.com/planora/planora-app/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	e := api.NewRouter(handler.DefaultFixtures(), cfg.Stub.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Stub.Port).Msg("contract stub listening")
		if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("stub server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
