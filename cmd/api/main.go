package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/castromatias32878-collab/WebVastum2025/internal/config"
	"github.com/castromatias32878-collab/WebVastum2025/internal/database"
	"github.com/castromatias32878-collab/WebVastum2025/internal/handler"
	"github.com/castromatias32878-collab/WebVastum2025/internal/router"
	"github.com/castromatias32878-collab/WebVastum2025/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	backend, err := database.Backend(cfg.StoreURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid store url")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreConnectTimeout)
	defer cancel()

	store, err := database.Open(ctx, cfg.StoreURL, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Str("backend", backend).Msg("failed to connect store")
	}
	log.Info().Str("backend", backend).Str("db", cfg.DBName).Msg("store connected")

	contactsService := service.NewContactsService(store,
		service.WithCompanyTypes(cfg.CompanyTypes),
		service.WithPhoneRegion(cfg.PhoneRegion),
		service.WithListLimit(cfg.ListLimit),
	)
	logosService := service.NewLogosService(store, cfg.ListLimit)

	e := router.New(cfg, router.Handlers{
		Contacts: handler.NewContactsHandler(contactsService),
		Logos:    handler.NewLogosHandler(logosService),
		Health:   handler.NewHealthHandler(store),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Strs("company_types", contactsService.CompanyTypes()).Msg("http server listening")
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
