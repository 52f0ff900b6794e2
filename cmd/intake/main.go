package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"portfolio-contact/internal/config"
	"portfolio-contact/internal/metrics"
	"portfolio-contact/internal/notify"
	"portfolio-contact/internal/ratelimit"
	"portfolio-contact/internal/server"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Configure logging
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting contact intake service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Log.Level)
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(level)
	}

	// Initialize metrics
	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize rate limiter
	limiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)

	// Select the notification channel once at startup
	channel := notify.FromConfig(cfg)
	logrus.Infof("Using %s notification channel", channel.Name())

	// Initialize HTTP handlers
	handlers := server.NewHandlers(cfg, limiter, channel, m, version)

	// Setup HTTP server
	router := server.NewRouter(cfg, handlers)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	// Stop the rate limiter's eviction goroutine
	limiter.Close()

	logrus.Info("Server stopped gracefully")
}
