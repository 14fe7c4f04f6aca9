package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/avakimov/fleetdeck/internal/service"
	"go.uber.org/zap"
)

type mockFuelRepo struct {
	ListFuelRecordsFunc  func(ctx context.Context) ([]models.FuelRecord, error)
	GetFuelRecordFunc    func(ctx context.Context, id int) (*models.FuelRecord, error)
	CreateFuelRecordFunc func(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error)
	DeleteFuelRecordFunc func(ctx context.Context, id int) error
	GetVehicleFunc       func(ctx context.Context, id int) (*models.Vehicle, error)
	UpdateVehicleFunc    func(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error)
	GetFuelStationFunc   func(ctx context.Context, id int) (*models.FuelStation, error)
}

func (m *mockFuelRepo) ListFuelRecords(ctx context.Context) ([]models.FuelRecord, error) {
	return m.ListFuelRecordsFunc(ctx)
}
func (m *mockFuelRepo) GetFuelRecord(ctx context.Context, id int) (*models.FuelRecord, error) {
	return m.GetFuelRecordFunc(ctx, id)
}
func (m *mockFuelRepo) CreateFuelRecord(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error) {
	return m.CreateFuelRecordFunc(ctx, r)
}
func (m *mockFuelRepo) DeleteFuelRecord(ctx context.Context, id int) error {
	return m.DeleteFuelRecordFunc(ctx, id)
}
func (m *mockFuelRepo) GetVehicle(ctx context.Context, id int) (*models.Vehicle, error) {
	return m.GetVehicleFunc(ctx, id)
}
func (m *mockFuelRepo) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	return m.UpdateVehicleFunc(ctx, id, patch)
}
func (m *mockFuelRepo) GetFuelStation(ctx context.Context, id int) (*models.FuelStation, error) {
	return m.GetFuelStationFunc(ctx, id)
}

// baseFuelRepo returns a mock wired with a single vehicle and station,
// recording the created record and the vehicle patch.
func baseFuelRepo(vehicle *models.Vehicle) (*mockFuelRepo, *models.FuelRecord, *models.VehiclePatch) {
	created := &models.FuelRecord{}
	patch := &models.VehiclePatch{}
	repo := &mockFuelRepo{
		GetVehicleFunc: func(ctx context.Context, id int) (*models.Vehicle, error) {
			if vehicle != nil && vehicle.ID == id {
				return vehicle, nil
			}
			return nil, nil
		},
		GetFuelStationFunc: func(ctx context.Context, id int) (*models.FuelStation, error) {
			if id == 3 {
				return &models.FuelStation{ID: 3, Name: "Shell La Jolla", CurrentPrice: 4.25}, nil
			}
			return nil, nil
		},
		CreateFuelRecordFunc: func(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error) {
			r.ID = 1
			*created = r
			return created, nil
		},
		UpdateVehicleFunc: func(ctx context.Context, id int, p models.VehiclePatch) (*models.Vehicle, error) {
			*patch = p
			return vehicle, nil
		},
	}
	return repo, created, patch
}

func TestPostRecord_TotalCostAndFuelLevel(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "Ferrari 488 GTB", FuelLevel: 50, Mileage: 12500, Issues: []string{}}
	repo, created, patch := baseFuelRepo(vehicle)
	svc := service.NewFuelService(repo, zap.NewNop())

	record, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         10,
		PricePerGallon: 4.00,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalCost != 40.00 {
		t.Errorf("totalCost = %v; want 40.00", record.TotalCost)
	}
	if created.VehicleName != "Ferrari 488 GTB" {
		t.Errorf("vehicleName = %q; want snapshot of vehicle name", created.VehicleName)
	}
	if created.StationName != "Shell La Jolla" {
		t.Errorf("stationName = %q; want snapshot of station name", created.StationName)
	}
	if patch.FuelLevel == nil || *patch.FuelLevel != 70 {
		t.Errorf("fuelLevel patch = %v; want 70 (50 + 10*2)", patch.FuelLevel)
	}
	if patch.Mileage != nil {
		t.Errorf("mileage patch = %v; want nil when request carries no odometer", patch.Mileage)
	}
}

func TestPostRecord_FuelLevelClampedAt100(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "Urus", FuelLevel: 90, Issues: []string{}}
	repo, _, patch := baseFuelRepo(vehicle)
	svc := service.NewFuelService(repo, zap.NewNop())

	_, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         30,
		PricePerGallon: 4.10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.FuelLevel == nil || *patch.FuelLevel != 100 {
		t.Errorf("fuelLevel patch = %v; want clamped 100", patch.FuelLevel)
	}
}

func TestPostRecord_RemovesLowFuelIssueOnly(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "GT-R", FuelLevel: 10, Issues: []string{"Low Fuel", "Needs Wash"}}
	repo, _, patch := baseFuelRepo(vehicle)
	svc := service.NewFuelService(repo, zap.NewNop())

	_, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         12,
		PricePerGallon: 4.30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Issues == nil {
		t.Fatal("issues patch missing")
	}
	got := *patch.Issues
	if len(got) != 1 || got[0] != "Needs Wash" {
		t.Errorf("issues = %v; want [Needs Wash]", got)
	}
}

func TestPostRecord_MileageOverrideAcceptedAsGiven(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "GT-R", FuelLevel: 40, Mileage: 20000, Issues: []string{}}
	repo, _, patch := baseFuelRepo(vehicle)
	svc := service.NewFuelService(repo, zap.NewNop())

	// An odometer reading lower than the stored mileage is still applied.
	mileage := 19500
	_, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         5,
		PricePerGallon: 4.00,
		Mileage:        &mileage,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Mileage == nil || *patch.Mileage != 19500 {
		t.Errorf("mileage patch = %v; want 19500", patch.Mileage)
	}
}

func TestPostRecord_MissingVehicleStillCreatesRecord(t *testing.T) {
	repo, created, _ := baseFuelRepo(nil)
	updateCalled := false
	repo.UpdateVehicleFunc = func(ctx context.Context, id int, p models.VehiclePatch) (*models.Vehicle, error) {
		updateCalled = true
		return nil, nil
	}
	svc := service.NewFuelService(repo, zap.NewNop())

	record, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      77,
		VehicleName:    "Retired Car",
		StationID:      3,
		Amount:         8,
		PricePerGallon: 4.00,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != created.ID {
		t.Errorf("record not created: %+v", record)
	}
	if created.VehicleName != "Retired Car" {
		t.Errorf("vehicleName = %q; want caller-supplied fallback", created.VehicleName)
	}
	if updateCalled {
		t.Error("vehicle update must not run for a missing vehicle")
	}
}

func TestPostRecord_VehicleUpdateFailureIsSwallowed(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "GT-R", FuelLevel: 40, Issues: []string{}}
	repo, _, _ := baseFuelRepo(vehicle)
	repo.UpdateVehicleFunc = func(ctx context.Context, id int, p models.VehiclePatch) (*models.Vehicle, error) {
		return nil, errors.New("db down")
	}
	svc := service.NewFuelService(repo, zap.NewNop())

	record, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         5,
		PricePerGallon: 4.00,
	})
	if err != nil {
		t.Fatalf("posting must succeed despite adjustment failure, got: %v", err)
	}
	if record == nil {
		t.Fatal("expected record")
	}
}

func TestPostRecord_RejectsNonPositiveInput(t *testing.T) {
	svc := service.NewFuelService(&mockFuelRepo{}, zap.NewNop())

	cases := []struct {
		name   string
		amount float64
		price  float64
	}{
		{"zero amount", 0, 4.00},
		{"negative amount", -3, 4.00},
		{"zero price", 10, 0},
		{"negative price", 10, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
				VehicleID:      1,
				StationID:      1,
				Amount:         tc.amount,
				PricePerGallon: tc.price,
			})
			var ve service.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v; want ValidationError", err)
			}
		})
	}
}

func TestPostRecord_RoundsTotalCostToCents(t *testing.T) {
	vehicle := &models.Vehicle{ID: 2, Name: "GT-R", FuelLevel: 40, Issues: []string{}}
	repo, _, _ := baseFuelRepo(vehicle)
	svc := service.NewFuelService(repo, zap.NewNop())

	record, err := svc.PostRecord(context.Background(), service.FuelPostRequest{
		VehicleID:      2,
		StationID:      3,
		Amount:         7.3,
		PricePerGallon: 4.19,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 7.3 * 4.19 = 30.587 → 30.59
	if record.TotalCost != 30.59 {
		t.Errorf("totalCost = %v; want 30.59", record.TotalCost)
	}
}

func TestDeleteRecord_DoesNotTouchVehicle(t *testing.T) {
	deleted := 0
	repo := &mockFuelRepo{
		DeleteFuelRecordFunc: func(ctx context.Context, id int) error {
			deleted = id
			return nil
		},
		UpdateVehicleFunc: func(ctx context.Context, id int, p models.VehiclePatch) (*models.Vehicle, error) {
			t.Fatal("deletion must not adjust the vehicle")
			return nil, nil
		},
	}
	svc := service.NewFuelService(repo, zap.NewNop())

	if err := svc.DeleteRecord(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 9 {
		t.Errorf("deleted id = %d; want 9", deleted)
	}
}
