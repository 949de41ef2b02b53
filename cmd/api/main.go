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

	"spendwise/internal/app"
	"spendwise/internal/auth"
	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/logger"
	"spendwise/internal/services"
	"spendwise/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// @title           Spendwise API
// @version         1.0
// @description     Spendwise is a personal expense tracker: record expenses, set a budget and review spending by category and month.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Authorization
// @description Session token issued by /signup and /login. Browsers send it as the "session" cookie; other clients may send "Bearer <token>" in the Authorization header.

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.OTelServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warnf("tracing shutdown error: %v", err)
		}
	}()

	dbManager, err := database.NewManager(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	signer := auth.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	if _, err := services.NewSessionService(dbManager.DB(), signer).PurgeExpired(); err != nil {
		log.Warnf("failed to purge expired sessions: %v", err)
	}

	router := app.NewRouter(dbManager.DB(), app.Options{
		Signer:             signer,
		CookieSecure:       cfg.CookieSecure,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Ping:               dbManager.Ping,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting spendwise server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
