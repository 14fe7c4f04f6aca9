// Package main initializes and starts the fleet API server, setting up
// configuration, logging, the storage backend, services, and routes.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/avakimov/fleetdeck/internal/config"
	"github.com/avakimov/fleetdeck/internal/db"
	"github.com/avakimov/fleetdeck/internal/logger"
	"github.com/avakimov/fleetdeck/internal/repository"
	"github.com/avakimov/fleetdeck/internal/seed"
	"github.com/avakimov/fleetdeck/internal/server/handler/http"
	"github.com/avakimov/fleetdeck/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// fleetStore is the full repository contract: every per-entity
// interface the services need, satisfied by both storage backends.
type fleetStore interface {
	service.VehicleRepository
	service.TaskRepository
	service.StationRepository
	service.FuelRepository
	service.UserRepository
	seed.Store
}

// orDefault returns s if non-empty, otherwise def; equivalent to
// cmp.Or for strings, which needs a Go 1.22+ toolchain.
func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Select the storage backend: PostgreSQL when a DSN is configured,
	// the in-memory store otherwise.
	var store fleetStore
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}

		// Purge long-completed tasks in the background.
		db.StartCompletedTaskCleaner(context.Background(), postgresDB,
			time.Hour,       // interval
			30*24*time.Hour, // retention: 30 days
			zapLogger,
		)

		store = repository.NewPostgres(postgresDB)
		zapLogger.Info("using postgres storage")
	} else {
		store = repository.NewMemory()
		zapLogger.Info("using in-memory storage")
	}

	// Populate sample data when the store is empty.
	if options.Seed {
		if err := seed.Run(context.Background(), store, zapLogger); err != nil {
			zapLogger.Fatal("failed to seed sample data", zap.Error(err))
		}
	}

	// Initialize business-logic services.
	vehicleService := service.NewVehicleService(store)
	taskService := service.NewTaskService(store)
	stationService := service.NewStationService(store)
	fuelService := service.NewFuelService(store, zapLogger)
	authService := service.NewAuthService(store)

	// Create HTTP handlers for the API surface.
	vehicleHandler := &http.VehicleHandler{VehicleService: vehicleService}
	taskHandler := &http.TaskHandler{TaskService: taskService}
	fuelHandler := &http.FuelHandler{StationService: stationService, FuelService: fuelService}
	authHandler := &http.AuthHandler{AuthService: authService}

	// Build the router with middleware and routes.
	router := http.NewRouter(vehicleHandler, taskHandler, fuelHandler, authHandler, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
