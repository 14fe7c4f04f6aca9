// Package repository provides the storage backends for the fleet:
// an in-memory store and a PostgreSQL store behind one contract.
// Both apply the same ordering policy: vehicles alphabetically by name,
// tasks and fuel records newest first, stations and users by id.
package repository

import "errors"

// ErrNotFound is returned by update operations targeting an absent id.
// Reads signal a missing record with a nil result instead.
var ErrNotFound = errors.New("record not found")
