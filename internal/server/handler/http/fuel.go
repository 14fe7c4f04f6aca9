package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/avakimov/fleetdeck/internal/service"
)

// StationService defines the interface for fuel station operations
// required by the HTTP handlers.
type StationService interface {
	List(ctx context.Context) ([]models.FuelStation, error)
	Get(ctx context.Context, id int) (*models.FuelStation, error)
	Create(ctx context.Context, req models.FuelStationPatch) (*models.FuelStation, error)
	Update(ctx context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error)
	Delete(ctx context.Context, id int) error
}

// FuelService defines the interface for fuel record operations
// required by the HTTP handlers. PostRecord runs the full posting
// workflow, including the best-effort vehicle adjustment.
type FuelService interface {
	ListRecords(ctx context.Context) ([]models.FuelRecord, error)
	GetRecord(ctx context.Context, id int) (*models.FuelRecord, error)
	PostRecord(ctx context.Context, req service.FuelPostRequest) (*models.FuelRecord, error)
	DeleteRecord(ctx context.Context, id int) error
}

// FuelHandler handles HTTP requests for fuel stations and fuel records.
type FuelHandler struct {
	StationService StationService
	FuelService    FuelService
}

// ListStations handles GET /api/fuel-stations.
func (h *FuelHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.StationService.List(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch fuel stations", http.StatusInternalServerError)
		return
	}
	if stations == nil {
		stations = []models.FuelStation{}
	}
	writeJSON(w, http.StatusOK, stations)
}

// GetStation handles GET /api/fuel-stations/{id}.
func (h *FuelHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	station, err := h.StationService.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to fetch fuel station", http.StatusInternalServerError)
		return
	}
	if station == nil {
		http.Error(w, "fuel station not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// CreateStation handles POST /api/fuel-stations.
func (h *FuelHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req models.FuelStationPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid fuel station data", http.StatusBadRequest)
		return
	}
	station, err := h.StationService.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "failed to create fuel station")
		return
	}
	writeJSON(w, http.StatusCreated, station)
}

// UpdateStation handles PUT /api/fuel-stations/{id}.
func (h *FuelHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var patch models.FuelStationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid fuel station data", http.StatusBadRequest)
		return
	}
	station, err := h.StationService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err, "failed to update fuel station")
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// DeleteStation handles DELETE /api/fuel-stations/{id}.
func (h *FuelHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.StationService.Delete(r.Context(), id); err != nil {
		http.Error(w, "failed to delete fuel station", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRecords handles GET /api/fuel-records.
func (h *FuelHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.FuelService.ListRecords(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch fuel records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.FuelRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// GetRecord handles GET /api/fuel-records/{id}.
func (h *FuelHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	record, err := h.FuelService.GetRecord(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to fetch fuel record", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "fuel record not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// PostRecord handles POST /api/fuel-records, invoking the fuel posting
// workflow.
func (h *FuelHandler) PostRecord(w http.ResponseWriter, r *http.Request) {
	var req service.FuelPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid fuel record data", http.StatusBadRequest)
		return
	}
	record, err := h.FuelService.PostRecord(r.Context(), req)
	if err != nil {
		writeError(w, err, "failed to create fuel record")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// DeleteRecord handles DELETE /api/fuel-records/{id}.
func (h *FuelHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.FuelService.DeleteRecord(r.Context(), id); err != nil {
		http.Error(w, "failed to delete fuel record", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
