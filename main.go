package main

//go:generate swag init --parseInternal --outputTypes go -o ./api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finsight/backend/internal/config"
	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && cfg.GinMode == "debug") || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GinMode == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if cfg.Database.Host == "" {
		if err := os.MkdirAll(cfg.Database.DataDir(), os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(models.Dialector(cfg.Database), cfg.Database)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(cfg, v1.New(db), r.Group("/"))

	srv := &http.Server{
		Addr:              router.Addr(cfg),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Received SIGINT or SIGTERM, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Msgf("Error shutting down server: %s", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Msgf("Error getting database connection for shutdown: %s", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Msgf("Error closing database connection: %s", err)
	}

	log.Info().Msg("Backend stopped")
}
