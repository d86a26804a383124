package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budget-zero/backend/internal/config"
	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/router"
	"github.com/budget-zero/backend/pkg/session"
	"github.com/budget-zero/backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:generate swag init --parseInternal --output api --outputTypes go

// @title Budget Zero
func main() {
	c, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(c.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if c.Human() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := storage.Open(ctx, c.StorageConfig(router.Version()))
	if err != nil {
		log.Fatal().Err(err).Msg("Storage")
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("Storage")
		}
	}()

	budget := session.New(s, session.Options{Seed: c.SeedDefaults, Version: router.Version()})
	if err := budget.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Session")
	}

	url, err := c.URL()
	if err != nil {
		log.Fatal().Err(err).Msg("API_URL")
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Err(err).Msg("Router")
	}
	router.AttachRoutes(controllers.Controller{Session: budget}, r.Group(url.Path))

	srv := &http.Server{
		Addr:              ":" + c.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", c.Port).Str("storage", string(c.Storage)).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Server")
	}
}
