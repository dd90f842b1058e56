package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vietbank/banking-api/internal/config"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/handlers"
	"github.com/vietbank/banking-api/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting banking api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	var sink notify.Sink
	if cfg.Notify.AMQPURI != "" {
		amqpSink, err := notify.NewAMQPSink(cfg.Notify.AMQPURI, cfg.Notify.QueueName)
		if err != nil {
			logger.Error("failed to connect to message broker", "error", err)
			os.Exit(1)
		}
		sink = amqpSink
		logger.Info("publishing payment events to message broker", "queue", cfg.Notify.QueueName)
	} else {
		sink = notify.NewLogSink(logger)
		logger.Info("no broker configured, payment events go to the log")
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Error("failed to close event sink", "error", err)
		}
	}()

	notifier := notify.NewNotifier(sink, logger)
	router := handlers.NewRouter(database, cfg, notifier, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
