package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Meetnepali/feedback-dashboard-backend/internal/config"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/docs"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/handlers"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/middleware"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/notify"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/routes"
	"github.com/Meetnepali/feedback-dashboard-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if !cfg.IsProduction() && cfg.AdminToken == "secret-admin-token" {
		logger.Warn("ADMIN_TOKEN not set, using the development default")
	}

	// Shared in-memory state: one store, one notification worker
	feedbackStore := store.New()
	mailer := notify.NewMailer(logger)

	feedbackHandler := handlers.NewFeedbackHandler(feedbackStore, mailer, logger)
	adminHandler := handlers.NewAdminHandler(feedbackStore, cfg.AdminToken)

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestLogger(logger))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API documentation
	r.Get("/openapi.json", docs.OpenAPI)
	r.Get("/docs", docs.Page)

	// Setup routes
	routes.SetupRoutes(r, feedbackHandler, adminHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("feedback dashboard backend running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}

	// Let queued confirmation emails finish before exiting
	mailer.Close()
	logger.Info("server shutdown complete")
}
