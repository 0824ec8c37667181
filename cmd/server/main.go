package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pixelsmith/contactrelay/internal/config"
	"github.com/pixelsmith/contactrelay/internal/database"
	"github.com/pixelsmith/contactrelay/internal/email"
	"github.com/pixelsmith/contactrelay/internal/handler"
	"github.com/pixelsmith/contactrelay/internal/logger"
	"github.com/pixelsmith/contactrelay/internal/middleware"
	"github.com/pixelsmith/contactrelay/internal/router"
	"github.com/pixelsmith/contactrelay/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Str("environment", cfg.Environment).Msg("starting contact relay server")

	// Connect to Redis (optional: rate limiting + duplicate suppression)
	var rdb *database.Redis
	if cfg.Redis.Enabled() {
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("connected to Redis")
	} else {
		log.Warn().Msg("Redis not configured, rate limiting and duplicate suppression disabled")
	}

	// Initialize the email sender
	sender, err := email.NewSender(context.Background(), cfg.Email)
	if err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			// Keep serving content routes; the contact endpoint will
			// report the configuration error on use.
			log.Error().Err(err).Msg("email sender not configured, contact relay disabled")
			sender = nil
		} else {
			log.Fatal().Err(err).Msg("failed to initialize email sender")
		}
	} else {
		log.Info().Str("provider", cfg.Email.Provider).Msg("email sender initialized")
	}

	// Initialize services
	contactSvc := service.NewContactService(rdb, sender, cfg, log)

	// Initialize handlers and middleware
	h := handler.New(rdb, log, cfg, contactSvc)
	mw := middleware.New(rdb, log, cfg)

	// Set up router
	r := router.New(h, mw, cfg)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
