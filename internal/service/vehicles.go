package service

import (
	"context"

	"github.com/avakimov/fleetdeck/internal/models"
)

// VehicleRepository defines the persistence operations required by the
// vehicle service.
type VehicleRepository interface {
	// ListVehicles returns all vehicles, alphabetically by name.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	// GetVehicle returns the vehicle with the given id, or nil if absent.
	GetVehicle(ctx context.Context, id int) (*models.Vehicle, error)
	// CreateVehicle stores a new vehicle and returns it with id and
	// timestamps assigned.
	CreateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	// UpdateVehicle merges non-nil patch fields into the stored vehicle.
	UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	// DeleteVehicle removes the vehicle. Idempotent.
	DeleteVehicle(ctx context.Context, id int) error
}

// VehicleService implements vehicle CRUD on top of a VehicleRepository.
type VehicleService struct {
	repo VehicleRepository
}

// NewVehicleService constructs a VehicleService using the provided repository.
func NewVehicleService(repo VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// List returns all vehicles.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

// Get returns the vehicle with the given id, or nil if absent.
func (s *VehicleService) Get(ctx context.Context, id int) (*models.Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

// Create validates required fields, applies defaults for fields the
// caller omitted, and stores the vehicle. Make, model, and year are
// required.
func (s *VehicleService) Create(ctx context.Context, req models.VehiclePatch) (*models.Vehicle, error) {
	if req.Make == nil || *req.Make == "" || req.Model == nil || *req.Model == "" {
		return nil, ValidationError("make and model are required")
	}
	if req.Year == nil || *req.Year == 0 {
		return nil, ValidationError("year is required")
	}

	v := models.Vehicle{
		Make:         *req.Make,
		Model:        *req.Model,
		Year:         *req.Year,
		Status:       models.StatusAvailable,
		Location:     "Main Office",
		FuelLevel:    100,
		FuelType:     "premium",
		TankCapacity: 20,
		Condition:    "excellent",
		Issues:       []string{},
	}
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Status != nil {
		v.Status = *req.Status
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	if req.FuelLevel != nil {
		v.FuelLevel = *req.FuelLevel
	}
	if req.FuelType != nil {
		v.FuelType = *req.FuelType
	}
	if req.TankCapacity != nil {
		v.TankCapacity = *req.TankCapacity
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.Condition != nil {
		v.Condition = *req.Condition
	}
	if req.ImageURL != nil {
		v.ImageURL = *req.ImageURL
	}
	if req.Washed != nil {
		v.Washed = *req.Washed
	}
	if req.LastWash != nil {
		t := *req.LastWash
		v.LastWash = &t
	}
	if req.Issues != nil {
		v.Issues = append([]string(nil), (*req.Issues)...)
	}

	return s.repo.CreateVehicle(ctx, v)
}

// Update merges the patch into the stored vehicle. Returns the
// repository's ErrNotFound when the id is absent.
func (s *VehicleService) Update(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	return s.repo.UpdateVehicle(ctx, id, patch)
}

// Delete removes the vehicle. Related tasks and fuel records are left
// in place with dangling references.
func (s *VehicleService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteVehicle(ctx, id)
}
