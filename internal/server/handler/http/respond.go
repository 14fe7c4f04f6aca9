// Package http provides the HTTP handlers and routing for the fleet API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avakimov/fleetdeck/internal/repository"
	"github.com/avakimov/fleetdeck/internal/service"
	"github.com/go-chi/chi/v5"
)

// idParam parses the {id} route parameter. Returns false after writing
// a 400 when the parameter is not an integer.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service and repository errors onto the API's status
// contract: validation failures and updates of missing ids are 400,
// everything else is a generic 500. Reads of missing records never
// reach here; handlers map a nil result to 404 directly.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var ve service.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, fallback, http.StatusBadRequest)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
