// Command apiserver runs the schemetrack HTTP API.
//
// It loads configuration, reads the feed file into memory, optionally watches
// it for rewrites, and serves the dashboard read API until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lohum/schemetrack/internal/application/dashboard"
	"github.com/lohum/schemetrack/internal/config"
	"github.com/lohum/schemetrack/internal/infrastructure/cache"
	"github.com/lohum/schemetrack/internal/infrastructure/feed"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/metrics"
	httpiface "github.com/lohum/schemetrack/internal/interfaces/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.Parse()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger = logger.Named("apiserver")

	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := feed.NewStore(cfg.Feed.Path, logger, m)
	if err := store.Load(); err != nil {
		// The server still starts; readiness stays false and the watcher
		// picks the file up once it appears.
		logger.Warn("initial feed load failed", logging.Err(err))
	}
	if cfg.Feed.Watch {
		if err := store.Watch(ctx); err != nil {
			return err
		}
	}

	if cfg.Cache.Enabled {
		snapshots := cache.New(cfg.Cache, logger)
		defer snapshots.Close()
		if err := snapshots.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, cache mirroring disabled", logging.Err(err))
		} else if !store.Loaded() {
			if cached, err := snapshots.GetSnapshot(ctx); err == nil {
				store.Restore(cached)
				logger.Info("feed restored from cache")
			}
		}
	}

	service := dashboard.NewService(store, logger)
	router := httpiface.NewRouter(httpiface.RouterDeps{
		Service: service,
		Feed:    store,
		Logger:  logger,
		Metrics: m,
		Mode:    cfg.Server.Mode,
	})
	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return server.Stop(context.Background())
}
