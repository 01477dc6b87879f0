/*
Package main is the entry point for the Moodchat application.

It is responsible for loading configuration, initializing the global logging
system, connecting to PostgreSQL and applying migrations, wiring the sentiment
client into the message service, and gracefully handling operating system
interrupt signals (SIGINT, SIGTERM) for a smooth server shutdown.
*/
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

	"moodchat/internal/app/db"
	"moodchat/internal/app/message"
	"moodchat/internal/app/sentiment"
	"moodchat/internal/app/user"
	"moodchat/internal/configs"
	"moodchat/internal/handler"
	"moodchat/internal/pkg/logx"
)

func main() {
	// Best-effort .env loading for local development.
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("sentiment_api_url", cfg.SentimentAPIURL).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and apply pending migrations
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	// Wire stores, the sentiment client, and the message service
	users := user.NewStore(pool)
	messages := message.NewStore(pool)
	classifier := sentiment.NewClient(cfg.SentimentAPIURL, cfg.SentimentTimeout)
	messageService := message.NewService(users, messages, classifier)

	deps := &handler.AppDeps{
		Config:   cfg,
		Users:    users,
		Messages: messageService,
	}

	// Setup HTTP server and routes
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		// Message submission waits on two upstream calls, so writes get
		// headroom beyond the classifier timeout.
		WriteTimeout: 2*cfg.SentimentTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Moodchat Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
