package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-mail-backend/config"
	v1 "contact-mail-backend/internal/delivery/http/v1"
	"contact-mail-backend/internal/usecase"
	"contact-mail-backend/pkg/email"
	"contact-mail-backend/pkg/logger"
	"contact-mail-backend/pkg/redis"
)

// @title           Contact Mail API
// @version         1.0
// @description     Relays website contact form submissions by email.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact mail backend", "port", cfg.Port, "mail_provider", cfg.MailProvider, "production", cfg.Production)

	// 3. Setup Redis (optional, shared rate limit counters)
	redisEnabled := cfg.RedisURL != ""
	if redisEnabled {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting will use in-memory store", "error", err)
		}
		defer redis.Close()
	}

	// 4. Setup Email Sender
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up email sender", "error", err)
		os.Exit(1)
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, config.EnvContactAddresses{})
	healthUC := usecase.NewHealthUsecase(redisEnabled)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Duration(cfg.MailTimeoutSeconds+30) * time.Second,
	}

	go func() {
		logger.Log.Info("Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
