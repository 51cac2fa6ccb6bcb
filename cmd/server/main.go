package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sucrim/servicekit/pkg/api"
	"github.com/sucrim/servicekit/pkg/config"
	"github.com/sucrim/servicekit/pkg/logging"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", os.Getenv("SERVICEKIT_CONFIG"), "Path to YAML config file")
	shutdownTimeout := flag.Duration("shutdown-timeout", 15*time.Second, "Graceful shutdown timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	gin.SetMode(cfg.Server.Mode)

	converter, err := cfg.Converter(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create converter")
	}

	logger.WithFields(logrus.Fields{
		"version": version,
		"zone":    converter.Location().String(),
		"addr":    cfg.Server.Addr,
	}).Info("Starting servicekit example server")

	srv := api.NewServer(cfg, logger, converter, nil, version)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("Initiating graceful shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Error during shutdown")
	}

	logger.Info("Server stopped")
}
