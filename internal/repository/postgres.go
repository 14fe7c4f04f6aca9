package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avakimov/fleetdeck/internal/models"
	"github.com/lib/pq"
)

// Postgres is the PostgreSQL storage backend. Partial updates use
// COALESCE so that nil patch fields leave the stored column untouched,
// matching the in-memory merge semantics.
type Postgres struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgres creates a Postgres store using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

const vehicleColumns = `id, name, make, model, year, status, location, fuel_level,
	fuel_type, tank_capacity, mileage, condition, image_url, washed, last_wash,
	issues, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	var lastWash sql.NullTime
	err := row.Scan(
		&v.ID, &v.Name, &v.Make, &v.Model, &v.Year, &v.Status, &v.Location,
		&v.FuelLevel, &v.FuelType, &v.TankCapacity, &v.Mileage, &v.Condition,
		&v.ImageURL, &v.Washed, &lastWash, pq.Array(&v.Issues),
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastWash.Valid {
		t := lastWash.Time
		v.LastWash = &t
	}
	if v.Issues == nil {
		v.Issues = []string{}
	}
	return &v, nil
}

// ListVehicles returns all vehicles ordered alphabetically by name.
func (s *Postgres) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+vehicleColumns+` FROM vehicles ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("ListVehicles: %w", err)
	}
	defer rows.Close()

	var out []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// GetVehicle returns the vehicle with the given id, or nil if absent.
func (s *Postgres) GetVehicle(ctx context.Context, id int) (*models.Vehicle, error) {
	v, err := scanVehicle(s.DB.QueryRowContext(ctx, `
		SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetVehicle: %w", err)
	}
	return v, nil
}

// CreateVehicle inserts a new vehicle and returns the stored row.
func (s *Postgres) CreateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	stored, err := scanVehicle(s.DB.QueryRowContext(ctx, `
		INSERT INTO vehicles (name, make, model, year, status, location, fuel_level,
			fuel_type, tank_capacity, mileage, condition, image_url, washed, last_wash, issues)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING `+vehicleColumns+`
	`, v.Name, v.Make, v.Model, v.Year, v.Status, v.Location, v.FuelLevel,
		v.FuelType, v.TankCapacity, v.Mileage, v.Condition, v.ImageURL,
		v.Washed, v.LastWash, pq.Array(v.Issues)))
	if err != nil {
		return nil, fmt.Errorf("CreateVehicle: %w", err)
	}
	return stored, nil
}

// UpdateVehicle merges non-nil patch fields into the stored vehicle.
// Returns ErrNotFound when the id is absent.
func (s *Postgres) UpdateVehicle(ctx context.Context, id int, patch models.VehiclePatch) (*models.Vehicle, error) {
	var issues any
	if patch.Issues != nil {
		issues = pq.Array(*patch.Issues)
	}
	v, err := scanVehicle(s.DB.QueryRowContext(ctx, `
		UPDATE vehicles SET
			name = COALESCE($2, name),
			make = COALESCE($3, make),
			model = COALESCE($4, model),
			year = COALESCE($5, year),
			status = COALESCE($6, status),
			location = COALESCE($7, location),
			fuel_level = COALESCE($8, fuel_level),
			fuel_type = COALESCE($9, fuel_type),
			tank_capacity = COALESCE($10, tank_capacity),
			mileage = COALESCE($11, mileage),
			condition = COALESCE($12, condition),
			image_url = COALESCE($13, image_url),
			washed = COALESCE($14, washed),
			last_wash = COALESCE($15, last_wash),
			issues = COALESCE($16, issues),
			updated_at = now()
		WHERE id = $1
		RETURNING `+vehicleColumns+`
	`, id, patch.Name, patch.Make, patch.Model, patch.Year, patch.Status,
		patch.Location, patch.FuelLevel, patch.FuelType, patch.TankCapacity,
		patch.Mileage, patch.Condition, patch.ImageURL, patch.Washed,
		patch.LastWash, issues))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateVehicle: %w", err)
	}
	return v, nil
}

// DeleteVehicle removes the vehicle. Idempotent; related tasks and
// fuel records are not cascaded.
func (s *Postgres) DeleteVehicle(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

const taskColumns = `id, title, description, vehicle_id, priority, completed,
	assigned, due_date, created_at, completed_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	var t models.Task
	var due, completed sql.NullTime
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.VehicleID, &t.Priority,
		&t.Completed, &t.Assigned, &due, &t.CreatedAt, &completed,
	)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}
	if completed.Valid {
		c := completed.Time
		t.CompletedAt = &c
	}
	return &t, nil
}

// ListTasks returns all tasks, newest created first.
func (s *Postgres) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// GetTask returns the task with the given id, or nil if absent.
func (s *Postgres) GetTask(ctx context.Context, id int) (*models.Task, error) {
	t, err := scanTask(s.DB.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM tasks WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetTask: %w", err)
	}
	return t, nil
}

// CreateTask inserts a new task and returns the stored row.
func (s *Postgres) CreateTask(ctx context.Context, t models.Task) (*models.Task, error) {
	stored, err := scanTask(s.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (title, description, vehicle_id, priority, completed, assigned, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+taskColumns+`
	`, t.Title, t.Description, t.VehicleID, t.Priority, t.Completed, t.Assigned, t.DueDate))
	if err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return stored, nil
}

// UpdateTask merges non-nil patch fields into the stored task.
// Returns ErrNotFound when the id is absent.
func (s *Postgres) UpdateTask(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error) {
	t, err := scanTask(s.DB.QueryRowContext(ctx, `
		UPDATE tasks SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			vehicle_id = COALESCE($4, vehicle_id),
			priority = COALESCE($5, priority),
			completed = COALESCE($6, completed),
			assigned = COALESCE($7, assigned),
			due_date = COALESCE($8, due_date),
			completed_at = COALESCE($9, completed_at)
		WHERE id = $1
		RETURNING `+taskColumns+`
	`, id, patch.Title, patch.Description, patch.VehicleID, patch.Priority,
		patch.Completed, patch.Assigned, patch.DueDate, patch.CompletedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

// DeleteTask removes the task. Idempotent.
func (s *Postgres) DeleteTask(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

const stationColumns = `id, name, address, current_price, rating, notes, created_at`

func scanStation(row interface{ Scan(...any) error }) (*models.FuelStation, error) {
	var st models.FuelStation
	err := row.Scan(&st.ID, &st.Name, &st.Address, &st.CurrentPrice, &st.Rating, &st.Notes, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// ListFuelStations returns all stations ordered by id.
func (s *Postgres) ListFuelStations(ctx context.Context) ([]models.FuelStation, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+stationColumns+` FROM fuel_stations ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("ListFuelStations: %w", err)
	}
	defer rows.Close()

	var out []models.FuelStation
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *st)
	}
	return out, rows.Err()
}

// GetFuelStation returns the station with the given id, or nil if absent.
func (s *Postgres) GetFuelStation(ctx context.Context, id int) (*models.FuelStation, error) {
	st, err := scanStation(s.DB.QueryRowContext(ctx, `
		SELECT `+stationColumns+` FROM fuel_stations WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetFuelStation: %w", err)
	}
	return st, nil
}

// CreateFuelStation inserts a new station and returns the stored row.
func (s *Postgres) CreateFuelStation(ctx context.Context, st models.FuelStation) (*models.FuelStation, error) {
	stored, err := scanStation(s.DB.QueryRowContext(ctx, `
		INSERT INTO fuel_stations (name, address, current_price, rating, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+stationColumns+`
	`, st.Name, st.Address, st.CurrentPrice, st.Rating, st.Notes))
	if err != nil {
		return nil, fmt.Errorf("CreateFuelStation: %w", err)
	}
	return stored, nil
}

// UpdateFuelStation merges non-nil patch fields into the stored station.
// Returns ErrNotFound when the id is absent.
func (s *Postgres) UpdateFuelStation(ctx context.Context, id int, patch models.FuelStationPatch) (*models.FuelStation, error) {
	st, err := scanStation(s.DB.QueryRowContext(ctx, `
		UPDATE fuel_stations SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			current_price = COALESCE($4, current_price),
			rating = COALESCE($5, rating),
			notes = COALESCE($6, notes)
		WHERE id = $1
		RETURNING `+stationColumns+`
	`, id, patch.Name, patch.Address, patch.CurrentPrice, patch.Rating, patch.Notes))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateFuelStation: %w", err)
	}
	return st, nil
}

// DeleteFuelStation removes the station. Idempotent.
func (s *Postgres) DeleteFuelStation(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM fuel_stations WHERE id = $1`, id)
	return err
}

const recordColumns = `id, vehicle_id, vehicle_name, station_id, station_name,
	amount, price_per_gallon, total_cost, mileage, notes, created_at`

func scanRecord(row interface{ Scan(...any) error }) (*models.FuelRecord, error) {
	var r models.FuelRecord
	var mileage sql.NullInt64
	err := row.Scan(
		&r.ID, &r.VehicleID, &r.VehicleName, &r.StationID, &r.StationName,
		&r.Amount, &r.PricePerGallon, &r.TotalCost, &mileage, &r.Notes, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mileage.Valid {
		m := int(mileage.Int64)
		r.Mileage = &m
	}
	return &r, nil
}

// ListFuelRecords returns all records, newest created first.
func (s *Postgres) ListFuelRecords(ctx context.Context) ([]models.FuelRecord, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM fuel_records ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ListFuelRecords: %w", err)
	}
	defer rows.Close()

	var out []models.FuelRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// GetFuelRecord returns the record with the given id, or nil if absent.
func (s *Postgres) GetFuelRecord(ctx context.Context, id int) (*models.FuelRecord, error) {
	r, err := scanRecord(s.DB.QueryRowContext(ctx, `
		SELECT `+recordColumns+` FROM fuel_records WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetFuelRecord: %w", err)
	}
	return r, nil
}

// CreateFuelRecord inserts a new record and returns the stored row.
func (s *Postgres) CreateFuelRecord(ctx context.Context, r models.FuelRecord) (*models.FuelRecord, error) {
	stored, err := scanRecord(s.DB.QueryRowContext(ctx, `
		INSERT INTO fuel_records (vehicle_id, vehicle_name, station_id, station_name,
			amount, price_per_gallon, total_cost, mileage, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+recordColumns+`
	`, r.VehicleID, r.VehicleName, r.StationID, r.StationName,
		r.Amount, r.PricePerGallon, r.TotalCost, r.Mileage, r.Notes))
	if err != nil {
		return nil, fmt.Errorf("CreateFuelRecord: %w", err)
	}
	return stored, nil
}

// DeleteFuelRecord removes the record without re-adjusting the
// associated vehicle's fuel level. Idempotent.
func (s *Postgres) DeleteFuelRecord(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM fuel_records WHERE id = $1`, id)
	return err
}

// GetUser returns the user with the given id, or nil if absent.
func (s *Postgres) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w", err)
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username, or nil
// if absent.
func (s *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user and returns the stored row.
func (s *Postgres) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id
	`, u.Username, u.PasswordHash).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return &u, nil
}
