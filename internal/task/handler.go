package task

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskflow-api/taskflow/internal/apperr"
	"github.com/taskflow-api/taskflow/internal/auth"
	"github.com/taskflow-api/taskflow/internal/httputil"
	"github.com/taskflow-api/taskflow/internal/logging"
)

// Handler contains HTTP handlers for the task CRUD endpoints. All of them
// run behind the auth middleware, so an identity is present in the context.
type Handler struct {
	service *Service
	ew      *httputil.ErrorWriter
}

func NewHandler(service *Service, ew *httputil.ErrorWriter) *Handler {
	return &Handler{service: service, ew: ew}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// taskData wraps a single task in the response envelope's data field.
type taskData struct {
	Task *Task `json:"task"`
}

// taskListData wraps a task list plus its length.
type taskListData struct {
	Tasks []*Task `json:"tasks"`
	Count int     `json:"count"`
}

// List handles task listing
// @Summary      List tasks
// @Description  List the authenticated user's tasks, optionally filtered by status
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "PENDING, IN_PROGRESS or COMPLETED"
// @Success      200 {object} httputil.Envelope
// @Failure      400 {object} httputil.Envelope "Invalid status filter"
// @Failure      401 {object} httputil.Envelope "Unauthorized"
// @Router       /api/tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
		return
	}

	status := Status(r.URL.Query().Get("status"))

	tasks, err := h.service.List(r.Context(), identity.UserID, status)
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	httputil.Success(w, http.StatusOK, "", taskListData{Tasks: tasks, Count: len(tasks)})
}

// Create handles task creation
// @Summary      Create a task
// @Description  Create a task for the authenticated user; status defaults to PENDING
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createTaskRequest true "Task fields"
// @Success      201 {object} httputil.Envelope
// @Failure      400 {object} httputil.Envelope "Validation failed"
// @Failure      401 {object} httputil.Envelope "Unauthorized"
// @Router       /api/tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ew.WriteError(w, r, apperr.BadRequest("Invalid request body"))
		return
	}

	if errs := validateCreate(&req); len(errs) > 0 {
		httputil.ValidationFailed(w, errs)
		return
	}

	t, err := h.service.Create(r.Context(), identity.UserID, CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      Status(req.Status),
	})
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	logging.GetLoggerFromContext(r.Context()).Info("task created",
		"task_id", t.ID,
		"user_id", identity.UserID,
	)

	httputil.Success(w, http.StatusCreated, "Task created successfully", taskData{Task: t})
}

// GetByID handles fetching a single task
// @Summary      Get a task
// @Description  Get one of the authenticated user's tasks by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} httputil.Envelope
// @Failure      403 {object} httputil.Envelope "Not the owner"
// @Failure      404 {object} httputil.Envelope "Task not found"
// @Router       /api/tasks/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	t, err := h.service.GetByID(r.Context(), taskID, identity.UserID)
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	httputil.Success(w, http.StatusOK, "", taskData{Task: t})
}

// Update handles partial task updates
// @Summary      Update a task
// @Description  Update any subset of title, description and status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Param        request body updateTaskRequest true "Fields to change"
// @Success      200 {object} httputil.Envelope
// @Failure      403 {object} httputil.Envelope "Not the owner"
// @Failure      404 {object} httputil.Envelope "Task not found"
// @Router       /api/tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ew.WriteError(w, r, apperr.BadRequest("Invalid request body"))
		return
	}

	if errs := validateUpdate(&req); len(errs) > 0 {
		httputil.ValidationFailed(w, errs)
		return
	}

	input := UpdateInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := Status(*req.Status)
		input.Status = &status
	}

	t, err := h.service.Update(r.Context(), taskID, identity.UserID, input)
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	httputil.Success(w, http.StatusOK, "Task updated successfully", taskData{Task: t})
}

// Remove handles task deletion
// @Summary      Delete a task
// @Description  Delete one of the authenticated user's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} httputil.Envelope
// @Failure      403 {object} httputil.Envelope "Not the owner"
// @Failure      404 {object} httputil.Envelope "Task not found"
// @Router       /api/tasks/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.ew.WriteError(w, r, apperr.Unauthorized("Authentication token was not provided"))
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), taskID, identity.UserID); err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	httputil.Success(w, http.StatusOK, "Task deleted successfully", nil)
}

// parseTaskID reads the :id URL param. A non-integer answers the request
// with a field-level validation error and reports false.
func parseTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httputil.ValidationFailed(w, []httputil.FieldError{
			{Field: "id", Message: "Task ID must be a valid integer", Value: raw},
		})
		return 0, false
	}
	return id, true
}
