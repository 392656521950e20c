package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nmatveev/edgesync/internal/config"
	"github.com/nmatveev/edgesync/internal/edge/processor"
	"github.com/nmatveev/edgesync/internal/edge/storage/boltdb"
	"github.com/nmatveev/edgesync/internal/edge/storage/sqlite"
	edgesync "github.com/nmatveev/edgesync/internal/edge/sync"
	"github.com/nmatveev/edgesync/internal/edge/transport/ws"
	"github.com/nmatveev/edgesync/internal/metrics"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)
	ctx := context.Background()

	// Локальные хранилища: атрибуты и настройки в BoltDB, лог событий в SQLite
	attrStorage, err := boltdb.New(ctx, cfg.Storage.AttributesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open attribute storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := attrStorage.Close(); err != nil {
			logger.Error("failed to close attribute storage", "error", err)
		}
	}()

	eventStorage, err := sqlite.New(ctx, cfg.Storage.EventsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open event storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := eventStorage.Close(); err != nil {
			logger.Error("failed to close event storage", "error", err)
		}
	}()

	client := ws.New(cfg.Cloud.URL, logger)
	m := metrics.New(prometheus.DefaultRegisterer)
	local := processor.NewLocal(attrStorage, eventStorage, logger)

	manager := edgesync.New(edgesync.Deps{
		Config:     cfg,
		Client:     client,
		Attributes: attrStorage,
		Events:     eventStorage,
		Settings:   attrStorage,
		Downlink:   local,
		Tenants:    local,
		Customers:  local,
		Edges:      local,
		Logger:     logger,
		Metrics:    m,
	})

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, logger)
	}

	manager.Start(ctx)

	// Ждем сигнала завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	manager.Stop(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "error", err)
	}
}

func printVersion() {
	fmt.Printf("EdgeSync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
