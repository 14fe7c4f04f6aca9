package http

import (
	"net/http"

	"github.com/avakimov/fleetdeck/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// fleet API. It enforces JSON content types on bodies, logs every
// request, and mounts the entity routes under /api.
//
// Routes:
//
//	GET/POST       /api/vehicles
//	GET/PUT/DELETE /api/vehicles/{id}
//	GET/POST       /api/tasks
//	GET/PUT/DELETE /api/tasks/{id}
//	GET/POST       /api/fuel-stations
//	GET/PUT/DELETE /api/fuel-stations/{id}
//	GET/POST       /api/fuel-records
//	GET/DELETE     /api/fuel-records/{id}
//	POST           /api/register
//	POST           /api/login
func NewRouter(
	vehicleHandler *VehicleHandler,
	taskHandler *TaskHandler,
	fuelHandler *FuelHandler,
	authHandler *AuthHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", vehicleHandler.List)
			r.Post("/", vehicleHandler.Create)
			r.Get("/{id}", vehicleHandler.Get)
			r.Put("/{id}", vehicleHandler.Update)
			r.Delete("/{id}", vehicleHandler.Delete)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})

		r.Route("/fuel-stations", func(r chi.Router) {
			r.Get("/", fuelHandler.ListStations)
			r.Post("/", fuelHandler.CreateStation)
			r.Get("/{id}", fuelHandler.GetStation)
			r.Put("/{id}", fuelHandler.UpdateStation)
			r.Delete("/{id}", fuelHandler.DeleteStation)
		})

		r.Route("/fuel-records", func(r chi.Router) {
			r.Get("/", fuelHandler.ListRecords)
			r.Post("/", fuelHandler.PostRecord)
			r.Get("/{id}", fuelHandler.GetRecord)
			r.Delete("/{id}", fuelHandler.DeleteRecord)
		})
	})

	return r
}
