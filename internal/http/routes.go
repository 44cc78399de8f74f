package http

import (
	"net/http"

	"github.com/sun1tar/tasktracker/internal/middleware"
)

// NewRouter собирает роутер API. ui может быть nil, тогда статика не отдаётся.
func NewRouter(h *TaskHandler, ui http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", h.ListTasks)
	mux.HandleFunc("GET /tasks/search", h.SearchTasks)
	mux.HandleFunc("GET /tasks/{id}", h.GetTask)
	mux.HandleFunc("POST /tasks", h.CreateTask)
	mux.HandleFunc("PUT /tasks/{id}", h.ReplaceTask)
	mux.HandleFunc("PATCH /tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", h.DeleteTask)
	mux.Handle("GET /metrics", middleware.MetricsHandler())
	if ui != nil {
		mux.Handle("GET /", ui)
	}
	return mux
}
