// Package models defines the core data structures for the fleet:
// vehicles, maintenance tasks, fuel stations, fuel records, and users.
package models

import "time"

// VehicleStatus defines the set of valid vehicle availability states.
type VehicleStatus string

const (
	// StatusAvailable means the vehicle is ready to rent.
	StatusAvailable VehicleStatus = "available"
	// StatusRented means the vehicle is out with a customer.
	StatusRented VehicleStatus = "rented"
	// StatusMaintenance means the vehicle is being serviced.
	StatusMaintenance VehicleStatus = "maintenance"
)

// TaskPriority defines the set of valid task priorities.
type TaskPriority string

const (
	// PriorityNormal is the default priority for new tasks.
	PriorityNormal TaskPriority = "normal"
	// PriorityHigh marks a task that should be handled soon.
	PriorityHigh TaskPriority = "high"
	// PriorityUrgent marks a task that blocks a rental.
	PriorityUrgent TaskPriority = "urgent"
)

// IssueLowFuel is the issue label cleared by a fuel fill-up.
const IssueLowFuel = "Low Fuel"

// Vehicle represents a rental vehicle in the fleet.
type Vehicle struct {
	// ID is the unique identifier, assigned sequentially and never reused.
	ID int `json:"id"`
	// Name is the display name shown on the dashboard.
	Name string `json:"name"`
	// Make is the manufacturer.
	Make string `json:"make"`
	// Model is the manufacturer model name.
	Model string `json:"model"`
	// Year is the model year.
	Year int `json:"year"`
	// Status is one of available, rented, maintenance.
	Status VehicleStatus `json:"status"`
	// Location is free text describing where the vehicle is.
	Location string `json:"location"`
	// FuelLevel is a percentage, clamped to [0, 100] after fuel adjustments.
	FuelLevel int `json:"fuelLevel"`
	// FuelType is e.g. regular, premium, diesel.
	FuelType string `json:"fuelType"`
	// TankCapacity is the tank size in gallons.
	TankCapacity float64 `json:"tankCapacity"`
	// Mileage is the current odometer reading.
	Mileage int `json:"mileage"`
	// Condition is one of pristine, excellent, good, fair.
	Condition string `json:"condition"`
	// ImageURL is an optional link to a vehicle photo.
	ImageURL string `json:"imageUrl"`
	// Washed reports whether the vehicle is currently clean.
	Washed bool `json:"washed"`
	// LastWash is the most recent wash date, nil if never washed.
	LastWash *time.Time `json:"lastWash"`
	// Issues holds free-form issue labels (e.g. "Low Fuel", "Needs Wash").
	// Duplicates are not prevented by the model.
	Issues []string `json:"issues"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the last-modified timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}

// VehiclePatch carries a partial vehicle update. Nil fields are
// left untouched by the merge.
type VehiclePatch struct {
	Name         *string        `json:"name"`
	Make         *string        `json:"make"`
	Model        *string        `json:"model"`
	Year         *int           `json:"year"`
	Status       *VehicleStatus `json:"status"`
	Location     *string        `json:"location"`
	FuelLevel    *int           `json:"fuelLevel"`
	FuelType     *string        `json:"fuelType"`
	TankCapacity *float64       `json:"tankCapacity"`
	Mileage      *int           `json:"mileage"`
	Condition    *string        `json:"condition"`
	ImageURL     *string        `json:"imageUrl"`
	Washed       *bool          `json:"washed"`
	LastWash     *time.Time     `json:"lastWash"`
	Issues       *[]string      `json:"issues"`
}

// Task represents a maintenance or service task, optionally tied to a vehicle.
type Task struct {
	// ID is the unique identifier.
	ID int `json:"id"`
	// Title is the short task summary.
	Title string `json:"title"`
	// Description holds optional detail text.
	Description string `json:"description"`
	// VehicleID references the related vehicle. Not enforced as a
	// foreign key; a deleted vehicle leaves the reference dangling.
	VehicleID int `json:"vehicleId"`
	// Priority is one of normal, high, urgent.
	Priority TaskPriority `json:"priority"`
	// Completed reports whether the task is done.
	Completed bool `json:"completed"`
	// Assigned names the person responsible, "Unassigned" by default.
	Assigned string `json:"assigned"`
	// DueDate is the optional due date.
	DueDate *time.Time `json:"dueDate"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// CompletedAt is stamped each time Completed transitions false to true.
	CompletedAt *time.Time `json:"completedAt"`
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	VehicleID   *int          `json:"vehicleId"`
	Priority    *TaskPriority `json:"priority"`
	Completed   *bool         `json:"completed"`
	Assigned    *string       `json:"assigned"`
	DueDate     *time.Time    `json:"dueDate"`
	CompletedAt *time.Time    `json:"-"`
}

// FuelStation represents a station where the fleet refuels.
type FuelStation struct {
	// ID is the unique identifier.
	ID int `json:"id"`
	// Name is the station name.
	Name string `json:"name"`
	// Address is the street address.
	Address string `json:"address"`
	// CurrentPrice is the current price per gallon.
	CurrentPrice float64 `json:"currentPrice"`
	// Rating is a 1-5 star rating.
	Rating int `json:"rating"`
	// Notes holds optional free text.
	Notes string `json:"notes"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// FuelStationPatch carries a partial station update. Nil fields are
// left untouched.
type FuelStationPatch struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	CurrentPrice *float64 `json:"currentPrice"`
	Rating       *int     `json:"rating"`
	Notes        *string  `json:"notes"`
}

// FuelRecord represents a single fuel purchase. Records are immutable
// once created, except for deletion.
type FuelRecord struct {
	// ID is the unique identifier.
	ID int `json:"id"`
	// VehicleID references the refueled vehicle.
	VehicleID int `json:"vehicleId"`
	// VehicleName is a snapshot of the vehicle name at creation time.
	VehicleName string `json:"vehicleName"`
	// StationID references the fuel station.
	StationID int `json:"stationId"`
	// StationName is a snapshot of the station name at creation time.
	StationName string `json:"stationName"`
	// Amount is the purchased volume in gallons.
	Amount float64 `json:"amount"`
	// PricePerGallon is the price paid per gallon.
	PricePerGallon float64 `json:"pricePerGallon"`
	// TotalCost is Amount times PricePerGallon, rounded to cents.
	TotalCost float64 `json:"totalCost"`
	// Mileage is the optional odometer reading at fill-up.
	Mileage *int `json:"mileage"`
	// Notes holds optional free text.
	Notes string `json:"notes"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// User represents an application user.
type User struct {
	// ID is the unique identifier.
	ID int `json:"id"`
	// Username is the unique login name.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
}
