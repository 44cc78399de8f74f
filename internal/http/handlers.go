package http

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/tasktracker/internal/middleware"
	"github.com/sun1tar/tasktracker/internal/models"
	"github.com/sun1tar/tasktracker/internal/service"
	"github.com/sun1tar/tasktracker/internal/validation"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *logrus.Logger
}

func NewTaskHandler(ts *service.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		logger:      logger,
	}
}

func (h *TaskHandler) logEntry(r *http.Request, handlerName string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    handlerName,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}

// Структуры запросов/ответов

// writeTaskRequest - тело POST и PUT: все поля задаются целиком
type writeTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
}

// updateTaskRequest - тело PATCH: обновляются только переданные поля
type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

type taskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
}

// Конверты ответов: {task}, {tasks}, {errors}, {error}
type taskEnvelope struct {
	Task taskResponse `json:"task"`
}

type taskListEnvelope struct {
	Tasks []taskResponse `json:"tasks"`
}

type validationEnvelope struct {
	Errors []string `json:"errors"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

func toTaskResponses(tasks []*models.Task) []taskResponse {
	result := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = toTaskResponse(t)
	}
	return result
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// ListTasks обрабатывает GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "ListTasks")

	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		logEntry.WithError(err).Error("failed to list tasks")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	writeJSON(w, http.StatusOK, taskListEnvelope{Tasks: toTaskResponses(tasks)})
}

// GetTask обрабатывает GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "GetTask")

	id := r.PathValue("id")
	task, err := h.taskService.GetByID(r.Context(), id)
	if err == sql.ErrNoRows {
		logEntry.WithField("task_id", id).Warn("task not found")
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to get task")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	logEntry.WithField("task_id", id).Debug("task retrieved")
	writeJSON(w, http.StatusOK, taskEnvelope{Task: toTaskResponse(task)})
}

// CreateTask обрабатывает POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "CreateTask")

	var req writeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateCreate(req.Title, req.Status, req.DueDate); len(errs) > 0 {
		logEntry.WithField("violations", errs).Warn("task validation failed")
		writeJSON(w, http.StatusBadRequest, validationEnvelope{Errors: errs})
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title, req.Description, req.Status, req.DueDate)
	if err != nil {
		logEntry.WithError(err).Error("failed to create task")
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	logEntry.WithField("task_id", task.ID).Info("task created successfully")
	writeJSON(w, http.StatusCreated, taskEnvelope{Task: toTaskResponse(task)})
}

// ReplaceTask обрабатывает PUT /tasks/{id}: полная замена всех полей
func (h *TaskHandler) ReplaceTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "ReplaceTask")

	id := r.PathValue("id")
	var req writeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidateReplace(req.Title, req.Status, req.DueDate); len(errs) > 0 {
		logEntry.WithField("violations", errs).Warn("task validation failed")
		writeJSON(w, http.StatusBadRequest, validationEnvelope{Errors: errs})
		return
	}

	task, err := h.taskService.Replace(r.Context(), id, req.Title, req.Description, req.Status, req.DueDate)
	if err == sql.ErrNoRows {
		logEntry.WithField("task_id", id).Warn("task not found for replace")
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to replace task")
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	logEntry.WithField("task_id", id).Info("task replaced successfully")
	writeJSON(w, http.StatusOK, taskEnvelope{Task: toTaskResponse(task)})
}

// UpdateTask обрабатывает PATCH /tasks/{id}: частичное обновление
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "UpdateTask")

	id := r.PathValue("id")
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validation.ValidatePartial(req.Status); len(errs) > 0 {
		logEntry.WithField("violations", errs).Warn("task validation failed")
		writeJSON(w, http.StatusBadRequest, validationEnvelope{Errors: errs})
		return
	}

	task, err := h.taskService.Update(r.Context(), id, req.Title, req.Description, req.Status, req.DueDate)
	if err == sql.ErrNoRows {
		logEntry.WithField("task_id", id).Warn("task not found for update")
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to update task")
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	logEntry.WithField("task_id", id).Info("task updated successfully")
	writeJSON(w, http.StatusOK, taskEnvelope{Task: toTaskResponse(task)})
}

// DeleteTask обрабатывает DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "DeleteTask")

	id := r.PathValue("id")
	err := h.taskService.Delete(r.Context(), id)
	if err == sql.ErrNoRows {
		logEntry.WithField("task_id", id).Warn("task not found for deletion")
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to delete task")
		writeError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	logEntry.WithField("task_id", id).Info("task deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// SearchTasks обрабатывает GET /tasks/search
func (h *TaskHandler) SearchTasks(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "SearchTasks")

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "search query parameter 'q' is required")
		return
	}

	logEntry.WithField("query", query).Info("searching tasks")

	tasks, err := h.taskService.SearchByTitle(r.Context(), query)
	if err != nil {
		logEntry.WithError(err).Error("failed to search tasks")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	writeJSON(w, http.StatusOK, taskListEnvelope{Tasks: toTaskResponses(tasks)})
}
