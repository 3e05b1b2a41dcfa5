package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruangdiskusi/webclient/internal/config"
	"github.com/ruangdiskusi/webclient/internal/logger"
	"github.com/ruangdiskusi/webclient/internal/router"
	"github.com/ruangdiskusi/webclient/internal/setup"
)

const (
	defaultConfigFolder = "config"
	readTimeout         = 5 * time.Second
	writeTimeout        = 15 * time.Second
	shutdownTimeout     = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	configFolder := os.Getenv("CONFIG_PATH")
	if configFolder == "" {
		configFolder = defaultConfigFolder
	}
	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Public.ListenPort,
		Handler:      router.New(deps),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		logger.Log.Info("webclient listening", "port", cfg.Public.ListenPort, "api", cfg.Public.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown failed", "error", err)
	}
	deps.Sessions.Shutdown()
}
