package service

import (
	"context"
	"math"

	"github.com/avakimov/fleetdeck/internal/models"
	"go.uber.org/zap"
)

// fuelLevelPerGallon converts purchased gallons to fuel-level percent.
// A 2%-per-gallon heuristic inherited from the dashboard's original
// sizing assumptions; changing it would shift every posted fill-up.
const fuelLevelPerGallon = 2

// FuelRepository defines the persistence operations required by the
// fuel posting workflow: record CRUD plus the vehicle and station
// lookups used for snapshots and the post-insert vehicle adjustment.
type FuelRepository interface {
	ListFuelRecords(ctx context.Context) ([]models.FuelRecord, error)
	GetFuelRecord(ctx context.Context, id int) (*models.FuelRecord, error)
	CreateFuelRecord(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error)
	DeleteFuelRecord(ctx context.Context, id int) error
	GetVehicle(ctx context.Context, id int) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	GetFuelStation(ctx context.Context, id int) (*models.FuelStation, error)
}

// FuelPostRequest is the payload for posting a fuel record.
type FuelPostRequest struct {
	VehicleID      int     `json:"vehicleId"`
	VehicleName    string  `json:"vehicleName"`
	StationID      int     `json:"stationId"`
	StationName    string  `json:"stationName"`
	Amount         float64 `json:"amount"`
	PricePerGallon float64 `json:"pricePerGallon"`
	Mileage        *int    `json:"mileage"`
	Notes          string  `json:"notes"`
}

// FuelService implements the fuel posting workflow on top of a
// FuelRepository.
type FuelService struct {
	repo FuelRepository
	log  *zap.Logger
}

// NewFuelService constructs a FuelService using the provided repository
// and logger.
func NewFuelService(repo FuelRepository, log *zap.Logger) *FuelService {
	return &FuelService{repo: repo, log: log}
}

// ListRecords returns all fuel records, newest created first.
func (s *FuelService) ListRecords(ctx context.Context) ([]models.FuelRecord, error) {
	return s.repo.ListFuelRecords(ctx)
}

// GetRecord returns the record with the given id, or nil if absent.
func (s *FuelService) GetRecord(ctx context.Context, id int) (*models.FuelRecord, error) {
	return s.repo.GetFuelRecord(ctx, id)
}

// PostRecord creates a fuel record and propagates its effect onto the
// referenced vehicle in one logical operation:
//
//  1. totalCost = amount × pricePerGallon, rounded to cents.
//  2. The vehicle and station names are snapshotted into the record
//     when the referenced rows exist; caller-supplied names are the
//     fallback. Snapshots are never refreshed by later renames.
//  3. The record is persisted.
//  4. Best effort: if the vehicle exists, its fuel level is raised by
//     2% per gallon (clamped to 100), its mileage is overwritten when
//     the request carries an odometer reading (accepted as given, even
//     if lower than the stored value), and any "Low Fuel" issue labels
//     are removed. A missing vehicle or a failed adjustment is logged
//     and swallowed; the record creation still succeeds, with no
//     rollback.
func (s *FuelService) PostRecord(ctx context.Context, req FuelPostRequest) (*models.FuelRecord, error) {
	if req.Amount <= 0 {
		return nil, ValidationError("amount must be positive")
	}
	if req.PricePerGallon <= 0 {
		return nil, ValidationError("price per gallon must be positive")
	}

	record := models.FuelRecord{
		VehicleID:      req.VehicleID,
		VehicleName:    req.VehicleName,
		StationID:      req.StationID,
		StationName:    req.StationName,
		Amount:         req.Amount,
		PricePerGallon: req.PricePerGallon,
		TotalCost:      round2(req.Amount * req.PricePerGallon),
		Mileage:        req.Mileage,
		Notes:          req.Notes,
	}

	vehicle, err := s.repo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle != nil {
		record.VehicleName = vehicle.Name
	}
	if station, err := s.repo.GetFuelStation(ctx, req.StationID); err == nil && station != nil {
		record.StationName = station.Name
	}

	stored, err := s.repo.CreateFuelRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	if vehicle == nil {
		s.log.Warn("fuel record posted for unknown vehicle",
			zap.Int("recordId", stored.ID),
			zap.Int("vehicleId", req.VehicleID))
		return stored, nil
	}

	level := vehicle.FuelLevel + int(req.Amount*fuelLevelPerGallon)
	if level > 100 {
		level = 100
	}
	issues := make([]string, 0, len(vehicle.Issues))
	for _, issue := range vehicle.Issues {
		if issue != models.IssueLowFuel {
			issues = append(issues, issue)
		}
	}

	patch := models.VehiclePatch{
		FuelLevel: &level,
		Mileage:   req.Mileage,
		Issues:    &issues,
	}
	if _, err := s.repo.UpdateVehicle(ctx, vehicle.ID, patch); err != nil {
		// Record ingestion stays resilient to a stale vehicle reference.
		s.log.Warn("vehicle adjustment after fuel posting failed",
			zap.Int("recordId", stored.ID),
			zap.Int("vehicleId", vehicle.ID),
			zap.Error(err))
	}

	return stored, nil
}

// DeleteRecord removes the record. The vehicle fuel-level adjustment
// made when the record was posted is not reversed.
func (s *FuelService) DeleteRecord(ctx context.Context, id int) error {
	return s.repo.DeleteFuelRecord(ctx, id)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
