// Package seed populates an empty store with randomized sample data so
// the dashboard has a realistic fleet to show on first start.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/avakimov/fleetdeck/internal/models"
	"go.uber.org/zap"
)

// Store defines the persistence operations required for seeding.
type Store interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error)
	CreateFuelStation(ctx context.Context, st models.FuelStation) (*models.FuelStation, error)
	CreateFuelRecord(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error)
}

type vehicleSeed struct {
	name  string
	make  string
	model string
	year  int
}

var vehicleSeeds = []vehicleSeed{
	{"Ferrari 488 Spider", "Ferrari", "488 Spider", 2022},
	{"Lamborghini Huracan Evo Spyder", "Lamborghini", "Huracan Evo Spyder", 2023},
	{"McLaren 720S Spider", "McLaren", "720S Spider", 2022},
	{"Porsche 911 Turbo S Cabrio", "Porsche", "911 Turbo S Cabriolet", 2023},
	{"Audi R8 Spyder", "Audi", "R8 Spyder", 2022},
	{"BMW i8 Roadster", "BMW", "i8 Roadster", 2020},
	{"Ferrari F8 Tributo", "Ferrari", "F8 Tributo", 2023},
	{"Lamborghini Aventador SVJ", "Lamborghini", "Aventador SVJ", 2022},
	{"McLaren 570S", "McLaren", "570S", 2021},
	{"Porsche 911 GT3", "Porsche", "911 GT3", 2023},
	{"Aston Martin Vantage", "Aston Martin", "Vantage", 2022},
	{"Mercedes-AMG GT", "Mercedes-Benz", "AMG GT", 2023},
	{"Bentley Continental GT", "Bentley", "Continental GT", 2023},
	{"Rolls-Royce Wraith", "Rolls-Royce", "Wraith", 2021},
	{"Maserati GranTurismo", "Maserati", "GranTurismo", 2022},
	{"Jaguar F-Type R", "Jaguar", "F-Type R", 2022},
	{"Nissan GT-R", "Nissan", "GT-R", 2023},
	{"Chevrolet Corvette Z06", "Chevrolet", "Corvette Z06", 2023},
	{"Dodge Challenger SRT Hellcat", "Dodge", "Challenger SRT Hellcat", 2022},
	{"Ford Mustang Shelby GT500", "Ford", "Mustang Shelby GT500", 2022},
	{"Tesla Model S Plaid", "Tesla", "Model S Plaid", 2023},
	{"Lamborghini Urus", "Lamborghini", "Urus", 2024},
	{"Bentley Bentayga", "Bentley", "Bentayga", 2023},
}

type stationSeed struct {
	name    string
	address string
	price   float64
	rating  int
	notes   string
}

var stationSeeds = []stationSeed{
	{"Shell La Jolla", "7535 Girard Ave, La Jolla, CA 92037", 4.25, 4, "Premium location, clean facilities"},
	{"Chevron UTC", "4445 Eastgate Mall, San Diego, CA 92121", 4.15, 5, "Best prices, quick service"},
	{"76 Station Torrey Pines", "10456 N Torrey Pines Rd, La Jolla, CA 92037", 4.35, 3, "Convenient location"},
}

// Run seeds the store with sample vehicles, fuel stations, and fuel
// records. It is a no-op when the store already contains vehicles.
// The data is randomized but deterministic in shape: the fixed fleet
// and station lists with random status, fuel, condition, and history.
func Run(ctx context.Context, store Store, log *zap.Logger) error {
	existing, err := store.ListVehicles(ctx)
	if err != nil {
		return fmt.Errorf("seed: list vehicles: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	vehicles := make([]models.Vehicle, 0, len(vehicleSeeds))
	for _, vs := range vehicleSeeds {
		v := models.Vehicle{
			Name:         vs.name,
			Make:         vs.make,
			Model:        vs.model,
			Year:         vs.year,
			Status:       randomStatus(),
			Location:     randomLocation(),
			FuelLevel:    rand.Intn(100),
			FuelType:     "premium",
			TankCapacity: 20,
			Mileage:      rand.Intn(50000) + 10000,
			Condition:    randomCondition(),
			Washed:       rand.Float64() > 0.6,
			Issues:       []string{},
		}
		if rand.Float64() > 0.7 {
			lastWash := time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour)
			v.LastWash = &lastWash
		}

		if v.FuelLevel < 25 {
			v.Issues = append(v.Issues, models.IssueLowFuel)
		}
		if rand.Float64() > 0.8 {
			v.Issues = append(v.Issues, "Service Due")
		}
		if rand.Float64() > 0.9 {
			v.Issues = append(v.Issues, "Minor Cosmetic")
		}
		if !v.Washed {
			v.Issues = append(v.Issues, "Needs Wash")
		}

		stored, err := store.CreateVehicle(ctx, v)
		if err != nil {
			return fmt.Errorf("seed: create vehicle: %w", err)
		}
		vehicles = append(vehicles, *stored)
	}

	stations := make([]models.FuelStation, 0, len(stationSeeds))
	for _, ss := range stationSeeds {
		stored, err := store.CreateFuelStation(ctx, models.FuelStation{
			Name:         ss.name,
			Address:      ss.address,
			CurrentPrice: ss.price,
			Rating:       ss.rating,
			Notes:        ss.notes,
		})
		if err != nil {
			return fmt.Errorf("seed: create station: %w", err)
		}
		stations = append(stations, *stored)
	}

	// Sample fuel history is inserted directly, bypassing the posting
	// workflow so seeded records do not bump vehicle fuel levels.
	for i := 0; i < 15; i++ {
		vehicle := vehicles[rand.Intn(len(vehicles))]
		station := stations[rand.Intn(len(stations))]
		amount := math.Round((rand.Float64()*15+5)*10) / 10
		price := math.Round((station.CurrentPrice+rand.Float64()*0.2-0.1)*100) / 100
		mileage := vehicle.Mileage - rand.Intn(500)

		_, err := store.CreateFuelRecord(ctx, models.FuelRecord{
			VehicleID:      vehicle.ID,
			VehicleName:    vehicle.Name,
			StationID:      station.ID,
			StationName:    station.Name,
			Amount:         amount,
			PricePerGallon: price,
			TotalCost:      math.Round(amount*price*100) / 100,
			Mileage:        &mileage,
			CreatedAt:      time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("seed: create fuel record: %w", err)
		}
	}

	log.Info("seeded sample data",
		zap.Int("vehicles", len(vehicles)),
		zap.Int("stations", len(stations)),
		zap.Int("fuelRecords", 15),
	)
	return nil
}

func randomStatus() models.VehicleStatus {
	switch r := rand.Float64(); {
	case r > 0.7:
		return models.StatusRented
	case r > 0.5:
		return models.StatusAvailable
	default:
		return models.StatusMaintenance
	}
}

func randomCondition() string {
	switch r := rand.Float64(); {
	case r > 0.8:
		return "fair"
	case r > 0.3:
		return "good"
	default:
		return "excellent"
	}
}

func randomLocation() string {
	if rand.Float64() > 0.6 {
		return "La Jolla Office"
	}
	return "Customer Location"
}
