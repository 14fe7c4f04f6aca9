package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vehicles (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    make TEXT NOT NULL,
    model TEXT NOT NULL,
    year INTEGER NOT NULL,
    status TEXT NOT NULL DEFAULT 'available',
    location TEXT NOT NULL DEFAULT 'Main Office',
    fuel_level INTEGER NOT NULL DEFAULT 100,
    fuel_type TEXT NOT NULL DEFAULT 'premium',
    tank_capacity REAL NOT NULL DEFAULT 20,
    mileage INTEGER NOT NULL DEFAULT 0,
    condition TEXT NOT NULL DEFAULT 'excellent',
    image_url TEXT NOT NULL DEFAULT '',
    washed BOOLEAN NOT NULL DEFAULT FALSE,
    last_wash TIMESTAMPTZ,
    issues TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    vehicle_id INTEGER NOT NULL DEFAULT 0,
    priority TEXT NOT NULL DEFAULT 'normal',
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    assigned TEXT NOT NULL DEFAULT 'Unassigned',
    due_date TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    completed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS fuel_stations (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    current_price REAL NOT NULL,
    rating INTEGER NOT NULL DEFAULT 3,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS fuel_records (
    id SERIAL PRIMARY KEY,
    vehicle_id INTEGER NOT NULL,
    vehicle_name TEXT NOT NULL DEFAULT '',
    station_id INTEGER NOT NULL,
    station_name TEXT NOT NULL DEFAULT '',
    amount REAL NOT NULL,
    price_per_gallon REAL NOT NULL,
    total_cost REAL NOT NULL,
    mileage INTEGER,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// InitPostgres opens a PostgreSQL connection, verifies it, and creates
// the fleet schema if it does not exist yet. Task and fuel record rows
// deliberately carry no foreign keys: deleting a vehicle leaves its
// references dangling, the same as the in-memory backend.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
