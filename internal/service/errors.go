// Package service provides the business logic of the fleet API:
// entity CRUD, the fuel posting workflow, the task completion
// lifecycle, and user authentication.
package service

// ValidationError reports malformed or out-of-range input. Handlers
// surface it as a 400 with a generic message.
type ValidationError string

// Error implements the error interface.
func (e ValidationError) Error() string { return string(e) }
