package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avakimov/fleetdeck/internal/models"
)

// VehicleService defines the interface for vehicle operations required
// by the HTTP handlers.
type VehicleService interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id int) (*models.Vehicle, error)
	Create(ctx context.Context, req models.VehiclePatch) (*models.Vehicle, error)
	Update(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	Delete(ctx context.Context, id int) error
}

// VehicleHandler handles HTTP requests for the vehicle collection.
type VehicleHandler struct {
	VehicleService VehicleService
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.VehicleService.List(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	vehicle, err := h.VehicleService.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to fetch vehicle", http.StatusInternalServerError)
		return
	}
	if vehicle == nil {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.VehiclePatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid vehicle data", http.StatusBadRequest)
		return
	}
	vehicle, err := h.VehicleService.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "failed to create vehicle")
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// Update handles PUT /api/vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var patch models.VehiclePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid vehicle data", http.StatusBadRequest)
		return
	}
	vehicle, err := h.VehicleService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err, "failed to update vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Delete handles DELETE /api/vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.VehicleService.Delete(r.Context(), id); err != nil {
		http.Error(w, "failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
