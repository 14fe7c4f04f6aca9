package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avakimov/fleetdeck/internal/models"
)

// Memory is an in-memory storage backend keeping every collection in a
// map guarded by a single mutex. Ids are assigned per type, starting at
// 1, and are never reused after deletion.
type Memory struct {
	mu sync.Mutex

	users       map[int]models.User
	vehicles    map[int]models.Vehicle
	tasks       map[int]models.Task
	stations    map[int]models.FuelStation
	fuelRecords map[int]models.FuelRecord

	nextUserID    int
	nextVehicleID int
	nextTaskID    int
	nextStationID int
	nextRecordID  int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:       make(map[int]models.User),
		vehicles:    make(map[int]models.Vehicle),
		tasks:       make(map[int]models.Task),
		stations:    make(map[int]models.FuelStation),
		fuelRecords: make(map[int]models.FuelRecord),

		nextUserID:    1,
		nextVehicleID: 1,
		nextTaskID:    1,
		nextStationID: 1,
		nextRecordID:  1,
	}
}

// Vehicle methods

// ListVehicles returns all vehicles ordered alphabetically by name.
func (m *Memory) ListVehicles(_ context.Context) ([]models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		out = append(out, cloneVehicle(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetVehicle returns the vehicle with the given id, or nil if absent.
func (m *Memory) GetVehicle(_ context.Context, id int) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vehicles[id]
	if !ok {
		return nil, nil
	}
	c := cloneVehicle(v)
	return &c, nil
}

// CreateVehicle stores a new vehicle, assigning the next id and
// stamping creation/update timestamps.
func (m *Memory) CreateVehicle(_ context.Context, v models.Vehicle) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v.ID = m.nextVehicleID
	m.nextVehicleID++
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Issues == nil {
		v.Issues = []string{}
	}
	m.vehicles[v.ID] = cloneVehicle(v)
	return &v, nil
}

// UpdateVehicle merges non-nil patch fields into the stored vehicle.
// Returns ErrNotFound when the id is absent.
func (m *Memory) UpdateVehicle(_ context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vehicles[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Make != nil {
		v.Make = *patch.Make
	}
	if patch.Model != nil {
		v.Model = *patch.Model
	}
	if patch.Year != nil {
		v.Year = *patch.Year
	}
	if patch.Status != nil {
		v.Status = *patch.Status
	}
	if patch.Location != nil {
		v.Location = *patch.Location
	}
	if patch.FuelLevel != nil {
		v.FuelLevel = *patch.FuelLevel
	}
	if patch.FuelType != nil {
		v.FuelType = *patch.FuelType
	}
	if patch.TankCapacity != nil {
		v.TankCapacity = *patch.TankCapacity
	}
	if patch.Mileage != nil {
		v.Mileage = *patch.Mileage
	}
	if patch.Condition != nil {
		v.Condition = *patch.Condition
	}
	if patch.ImageURL != nil {
		v.ImageURL = *patch.ImageURL
	}
	if patch.Washed != nil {
		v.Washed = *patch.Washed
	}
	if patch.LastWash != nil {
		t := *patch.LastWash
		v.LastWash = &t
	}
	if patch.Issues != nil {
		v.Issues = append([]string(nil), (*patch.Issues)...)
	}
	v.UpdatedAt = time.Now()

	m.vehicles[id] = cloneVehicle(v)
	return &v, nil
}

// DeleteVehicle removes the vehicle. Deleting an absent id is not an error.
func (m *Memory) DeleteVehicle(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.vehicles, id)
	return nil
}

// Task methods

// ListTasks returns all tasks, newest created first.
func (m *Memory) ListTasks(_ context.Context) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetTask returns the task with the given id, or nil if absent.
func (m *Memory) GetTask(_ context.Context, id int) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// CreateTask stores a new task, assigning the next id and stamping CreatedAt.
func (m *Memory) CreateTask(_ context.Context, t models.Task) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.nextTaskID
	m.nextTaskID++
	t.CreatedAt = time.Now()
	t.CompletedAt = nil
	m.tasks[t.ID] = t
	return &t, nil
}

// UpdateTask merges non-nil patch fields into the stored task.
// Returns ErrNotFound when the id is absent. CompletedAt is written
// only when the patch carries it; the false-to-true stamping decision
// is made by the caller, which sees the previous state.
func (m *Memory) UpdateTask(_ context.Context, id int, patch models.TaskPatch) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.VehicleID != nil {
		t.VehicleID = *patch.VehicleID
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Assigned != nil {
		t.Assigned = *patch.Assigned
	}
	if patch.DueDate != nil {
		d := *patch.DueDate
		t.DueDate = &d
	}
	if patch.CompletedAt != nil {
		c := *patch.CompletedAt
		t.CompletedAt = &c
	}

	m.tasks[id] = t
	return &t, nil
}

// DeleteTask removes the task. Deleting an absent id is not an error.
func (m *Memory) DeleteTask(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tasks, id)
	return nil
}

// Fuel station methods

// ListFuelStations returns all stations ordered by id.
func (m *Memory) ListFuelStations(_ context.Context) ([]models.FuelStation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.FuelStation, 0, len(m.stations))
	for _, s := range m.stations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetFuelStation returns the station with the given id, or nil if absent.
func (m *Memory) GetFuelStation(_ context.Context, id int) (*models.FuelStation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stations[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// CreateFuelStation stores a new station, assigning the next id.
func (m *Memory) CreateFuelStation(_ context.Context, s models.FuelStation) (*models.FuelStation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.nextStationID
	m.nextStationID++
	s.CreatedAt = time.Now()
	m.stations[s.ID] = s
	return &s, nil
}

// UpdateFuelStation merges non-nil patch fields into the stored station.
func (m *Memory) UpdateFuelStation(_ context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stations[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.CurrentPrice != nil {
		s.CurrentPrice = *patch.CurrentPrice
	}
	if patch.Rating != nil {
		s.Rating = *patch.Rating
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}

	m.stations[id] = s
	return &s, nil
}

// DeleteFuelStation removes the station. Idempotent.
func (m *Memory) DeleteFuelStation(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.stations, id)
	return nil
}

// Fuel record methods

// ListFuelRecords returns all records, newest created first.
func (m *Memory) ListFuelRecords(_ context.Context) ([]models.FuelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.FuelRecord, 0, len(m.fuelRecords))
	for _, r := range m.fuelRecords {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetFuelRecord returns the record with the given id, or nil if absent.
func (m *Memory) GetFuelRecord(_ context.Context, id int) (*models.FuelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.fuelRecords[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// CreateFuelRecord stores a new record, assigning the next id.
// The record's CreatedAt is kept if already set, so seeding can
// backdate sample history.
func (m *Memory) CreateFuelRecord(_ context.Context, r models.FuelRecord) (*models.FuelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = m.nextRecordID
	m.nextRecordID++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.fuelRecords[r.ID] = r
	return &r, nil
}

// DeleteFuelRecord removes the record. The associated vehicle's fuel
// level is not re-adjusted. Idempotent.
func (m *Memory) DeleteFuelRecord(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.fuelRecords, id)
	return nil
}

// User methods

// GetUser returns the user with the given id, or nil if absent.
func (m *Memory) GetUser(_ context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username, or nil
// if absent.
func (m *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user, assigning the next id.
func (m *Memory) CreateUser(_ context.Context, u models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = m.nextUserID
	m.nextUserID++
	m.users[u.ID] = u
	return &u, nil
}

// cloneVehicle copies a vehicle including its issue slice, so callers
// never share backing arrays with the store.
func cloneVehicle(v models.Vehicle) models.Vehicle {
	c := v
	c.Issues = append([]string(nil), v.Issues...)
	return c
}
