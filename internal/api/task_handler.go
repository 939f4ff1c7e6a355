package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	maxSearchLength = 100
)

// TaskHandler handles the task CRUD and listing endpoints. All its routes
// sit behind the auth middleware, so the owner ID is always present in the
// request context.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with its dependencies.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// listParams carries the parsed and validated listing query parameters.
type listParams struct {
	filter store.TaskFilter
	sortBy store.TaskSortBy
	order  store.TaskSortOrder
	page   int
	limit  int
}

// parseListParams validates the query string of a listing request. Returns
// a user-facing message for the first invalid parameter found.
func parseListParams(r *http.Request) (listParams, string) {
	q := r.URL.Query()

	params := listParams{
		sortBy: store.SortByCreatedAt,
		order:  store.SortDesc,
		page:   defaultPage,
		limit:  defaultLimit,
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, "Page must be a positive integer"
		}
		params.page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxLimit {
			return params, fmt.Sprintf("Limit must be between 1 and %d", maxLimit)
		}
		params.limit = limit
	}

	if v := q.Get("sort_by"); v != "" {
		sortBy := store.TaskSortBy(v)
		if !sortBy.IsValid() {
			return params, "sort_by must be one of: title, due_date, priority, created_at"
		}
		params.sortBy = sortBy
	}

	if v := q.Get("sort_order"); v != "" {
		order := store.TaskSortOrder(v)
		if !order.IsValid() {
			return params, "sort_order must be one of: asc, desc"
		}
		params.order = order
	}

	if v := q.Get("priority"); v != "" {
		priority := domain.TaskPriority(v)
		if !priority.IsValid() {
			return params, "Priority must be one of: low, medium, high"
		}
		params.filter.Priority = &priority
	}

	if v := q.Get("due_date_from"); v != "" {
		params.filter.DueDateFrom = &v
	}

	if v := q.Get("due_date_to"); v != "" {
		params.filter.DueDateTo = &v
	}

	if v := q.Get("search"); v != "" {
		if len(v) > maxSearchLength {
			return params, fmt.Sprintf("Search term cannot exceed %d characters", maxSearchLength)
		}
		params.filter.Search = &v
	}

	if v := q.Get("tags"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				params.filter.Tags = append(params.filter.Tags, tag)
			}
		}
	}

	return params, ""
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	params, msg := parseListParams(r)
	if msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	total, err := h.taskStore.Count(ctx, userID, params.filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	tasks, err := h.taskStore.List(ctx, userID, params.filter,
		params.sortBy, params.order, params.page, params.limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	totalPages := int((total + int64(params.limit) - 1) / int64(params.limit))

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Data: tasks,
		Pagination: Pagination{
			Page:       params.page,
			Limit:      params.limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    params.page < totalPages,
			HasPrev:    params.page > 1,
		},
	})
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	taskID, ok := parseTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetByID(ctx, taskID, userID)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req CreateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, createValidationMessage(err))
		return
	}

	if len(req.Tags) > domain.MaxTagsPerTask {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Maximum %d tags allowed per task", domain.MaxTagsPerTask))
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		UserID:      userID,
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}

	if err := h.taskStore.Create(ctx, task); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	// Re-read so the response reflects the stored row (timestamps, default
	// priority) rather than the request.
	created, err := h.taskStore.GetByID(ctx, task.ID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(ctx, "task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", userID))

	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	taskID, ok := parseTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	var req UpdateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.Validate(); msg != "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}

	upd := store.TaskUpdate{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: req.DescriptionSet,
		DueDate:        req.DueDate,
		DueDateSet:     req.DueDateSet,
		Tags:           req.Tags,
		TagsSet:        req.TagsSet,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		upd.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		upd.Priority = &priority
	}

	if err := h.taskStore.Update(ctx, taskID, userID, upd); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	task, err := h.taskStore.GetByID(ctx, taskID, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(ctx, "task updated",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", userID))

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	taskID, ok := parseTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskStore.Delete(ctx, taskID, userID); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(ctx, "task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", userID))

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// ListTags handles GET /api/tasks/tags.
func (h *TaskHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.GetUserID(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	tags, err := h.taskStore.ListTags(ctx, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	if tags == nil {
		tags = []string{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TagsResponse{Tags: tags})
}

// parseTaskID extracts and parses the {id} URL parameter. A non-numeric ID
// cannot name any task, so callers treat a parse failure as not found.
func parseTaskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// createValidationMessage picks the user-facing message for an invalid task
// creation payload.
func createValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Title":
				return "Title is required"
			case "Status":
				return "Status must be one of: pending, done"
			case "Priority":
				return "Priority must be one of: low, medium, high"
			case "Tags":
				return fmt.Sprintf("Tags cannot exceed %d characters", domain.MaxTagLength)
			}
		}
	}
	return "Invalid input"
}
