package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avakimov/fleetdeck/internal/models"
)

// TaskService defines the interface for task operations required by
// the HTTP handlers.
type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id int) (*models.Task, error)
	Create(ctx context.Context, req models.TaskPatch) (*models.Task, error)
	Update(ctx context.Context, id int, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id int) error
}

// TaskHandler handles HTTP requests for the task collection.
type TaskHandler struct {
	TaskService TaskService
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch tasks", http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	task, err := h.TaskService.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to fetch task", http.StatusInternalServerError)
		return
	}
	if task == nil {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid task data", http.StatusBadRequest)
		return
	}
	task, err := h.TaskService.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid task data", http.StatusBadRequest)
		return
	}
	task, err := h.TaskService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err, "failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.TaskService.Delete(r.Context(), id); err != nil {
		http.Error(w, "failed to delete task", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
