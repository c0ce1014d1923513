package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"shark-tracker/internal/core/cache"
	"shark-tracker/internal/core/clock"
	"shark-tracker/internal/core/config"
	"shark-tracker/internal/core/httpclient"
	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/core/server"
	sharkadapter "shark-tracker/internal/features/sharks/adapters"
	sharkhandler "shark-tracker/internal/features/sharks/handler"
	sharkports "shark-tracker/internal/features/sharks/ports"
	surfaceadapter "shark-tracker/internal/features/surfaces/adapters"
	surfacehandler "shark-tracker/internal/features/surfaces/handler"
	surfaceservice "shark-tracker/internal/features/surfaces/service"
	trackinghandler "shark-tracker/internal/features/tracking/handler"
	trackingservice "shark-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Shark Tracker API
// @version 1.0
// @description This API tracks tagged sharks from OCEARCH: shark profiles, their latest pings, a periodically refreshed tracking state and the list and map views built on it.
// @contact.name API Support
// @contact.email support@sharktracker.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("data_source", cfg.DataSource.Kind),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.Real()

	// Initialize Data Source
	source, closeSource, err := newDataSource(ctx, cfg, clk)
	if err != nil {
		l.Fatal("Failed to initialize data source", zap.Error(err))
	}
	defer closeSource()
	feedHandler := sharkhandler.NewFeedHandler(source)

	// Initialize Tracking Controller & Handler
	controller := trackingservice.NewController(source, clk, cfg.Tracking.RefreshInterval())
	controller.SetAutoRefreshEnabled(cfg.Tracking.AutoRefresh)
	trackingHdl := trackinghandler.NewTrackingHandler(controller)

	// Initialize Surfaces & Handler
	permission, err := surfaceadapter.NewStaticPermission(cfg.Surfaces.LocationPermission)
	if err != nil {
		l.Fatal("Invalid location permission", zap.Error(err))
	}
	listView := surfaceadapter.NewHeadlessList()
	mapView := surfaceadapter.NewHeadlessMap()

	listSurface := surfaceservice.NewListSurface(controller, listView)
	mapSurface := surfaceservice.NewMapSurface(controller, mapView, permission)
	navigator := surfaceservice.NewNavigator(listSurface, mapSurface)
	surfacesHdl := surfacehandler.NewSurfacesHandler(listView, mapView, navigator)

	listSurface.Start()
	mapSurface.Start(ctx)
	controller.Initialize()

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/api/v1/sharks", feedHandler.GetSharks)
	srv.App.Get("/api/v1/sharks/pings", feedHandler.GetPings)

	srv.App.Get("/tracking/state", trackingHdl.GetState)
	srv.App.Post("/tracking/refresh", trackingHdl.Refresh)
	srv.App.Delete("/tracking/error", trackingHdl.ClearError)
	srv.App.Put("/tracking/auto-refresh", trackingHdl.SetAutoRefresh)
	srv.App.Get("/tracking/stream", trackingHdl.RequireUpgrade, trackingHdl.Stream())

	srv.App.Get("/surfaces/list", surfacesHdl.GetList)
	srv.App.Get("/surfaces/map", surfacesHdl.GetMap)
	srv.App.Post("/surfaces/list/:pingId/select", surfacesHdl.SelectListItem)
	srv.App.Post("/surfaces/map/markers/:pingId/select", surfacesHdl.SelectMarker)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			l.Error("Server failed", zap.Error(err))
		}
	case <-ctx.Done():
		l.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown error", zap.Error(err))
	}

	listSurface.Close()
	mapSurface.Close()
	controller.Close()
	l.Info("Application stopped")
}

// newDataSource builds the data source selected by DATA_SOURCE. The returned
// func releases its resources.
func newDataSource(ctx context.Context, cfg *config.AppConfig, clk clock.Clock) (sharkports.DataSource, func(), error) {
	l := logger.Get()

	switch cfg.DataSource.Kind {
	case "mock":
		source := sharkadapter.NewMockDataSource(clk,
			time.Duration(cfg.DataSource.MockSharksDelayMS)*time.Millisecond,
			time.Duration(cfg.DataSource.MockPingsDelayMS)*time.Millisecond,
		)
		return source, func() {}, nil

	case "api":
		client := httpclient.NewClient(cfg.DataSource.HTTPTimeout(), cfg.Proxy.Settings())
		source := sharkadapter.NewOcearchAdapter(client, cfg.DataSource.OcearchURL)

		// Load failures are recoverable by refresh, so an unreachable API only warns.
		if err := source.HealthCheck(ctx); err != nil {
			l.Warn("OCEARCH Health Check Failed", zap.Error(err))
		} else {
			l.Info("OCEARCH connection verified")
		}
		return source, func() {}, nil

	case "redis":
		redisAdapter, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := redisAdapter.Ping(ctx); err != nil {
			_ = redisAdapter.Close()
			return nil, nil, err
		}
		l.Info("Redis connection verified")

		source := sharkadapter.NewRedisDataSource(redisAdapter)
		if cfg.Redis.Seed {
			if err := source.Seed(ctx, sharkadapter.MockSharks(), sharkadapter.MockPings()); err != nil {
				_ = redisAdapter.Close()
				return nil, nil, err
			}
			l.Info("Redis seeded with the built-in dataset")
		}
		return source, func() { _ = redisAdapter.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown data source: %q", cfg.DataSource.Kind)
	}
}
