package service

import (
	"context"

	"github.com/avakimov/fleetdeck/internal/models"
)

// StationRepository defines the persistence operations required by the
// fuel station service.
type StationRepository interface {
	ListFuelStations(ctx context.Context) ([]models.FuelStation, error)
	GetFuelStation(ctx context.Context, id int) (*models.FuelStation, error)
	CreateFuelStation(ctx context.Context, st models.FuelStation) (*models.FuelStation, error)
	UpdateFuelStation(ctx context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error)
	DeleteFuelStation(ctx context.Context, id int) error
}

// StationService implements fuel station CRUD on top of a StationRepository.
type StationService struct {
	repo StationRepository
}

// NewStationService constructs a StationService using the provided repository.
func NewStationService(repo StationRepository) *StationService {
	return &StationService{repo: repo}
}

// List returns all stations.
func (s *StationService) List(ctx context.Context) ([]models.FuelStation, error) {
	return s.repo.ListFuelStations(ctx)
}

// Get returns the station with the given id, or nil if absent.
func (s *StationService) Get(ctx context.Context, id int) (*models.FuelStation, error) {
	return s.repo.GetFuelStation(ctx, id)
}

// Create validates required fields and stores the station. Name and a
// positive current price are required; rating defaults to 3.
func (s *StationService) Create(ctx context.Context, req models.FuelStationPatch) (*models.FuelStation, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, ValidationError("station name is required")
	}
	if req.CurrentPrice == nil || *req.CurrentPrice <= 0 {
		return nil, ValidationError("current price must be positive")
	}

	st := models.FuelStation{
		Name:         *req.Name,
		CurrentPrice: *req.CurrentPrice,
		Rating:       3,
	}
	if req.Address != nil {
		st.Address = *req.Address
	}
	if req.Rating != nil {
		st.Rating = *req.Rating
	}
	if req.Notes != nil {
		st.Notes = *req.Notes
	}

	return s.repo.CreateFuelStation(ctx, st)
}

// Update merges the patch into the stored station. Fuel records keep
// the name and price snapshots taken when they were created.
func (s *StationService) Update(ctx context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error) {
	return s.repo.UpdateFuelStation(ctx, id, patch)
}

// Delete removes the station. Idempotent.
func (s *StationService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteFuelStation(ctx, id)
}
