package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/tasktracker/internal/config"
	handlers "github.com/sun1tar/tasktracker/internal/http"
	"github.com/sun1tar/tasktracker/internal/logger"
	"github.com/sun1tar/tasktracker/internal/middleware"
	"github.com/sun1tar/tasktracker/internal/repository"
	"github.com/sun1tar/tasktracker/internal/service"
	"github.com/sun1tar/tasktracker/web"
)

func main() {
	logrusLogger := logger.Init("tasks")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	// Инициализация репозитория
	var repo repository.TaskRepository
	switch cfg.DB.Driver {
	case "sqlite3":
		repo, err = repository.NewSQLiteTaskRepository(cfg.DB.DSN())
	case "postgres":
		repo, err = repository.NewPostgresTaskRepository(cfg.DB.DSN())
	default:
		logrusLogger.Fatal("unsupported database driver: " + cfg.DB.Driver)
	}
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to connect to database")
	}
	defer repo.Close()

	taskService := service.NewTaskService(repo)
	taskHandler := handlers.NewTaskHandler(taskService, logrusLogger)

	mux := handlers.NewRouter(taskHandler, web.Handler())

	// Цепочка middleware (порядок важен!)
	handler := middleware.RequestIDMiddleware(mux)          // 1. request-id
	handler = middleware.SecurityHeadersMiddleware(handler) // 2. заголовки безопасности
	handler = middleware.CORSMiddleware(handler)            // 3. CORS
	handler = middleware.MetricsMiddleware(handler)         // 4. метрики
	handler = middleware.LoggingMiddleware(handler)         // 5. логирование

	addr := fmt.Sprintf(":%s", cfg.TasksPort)
	logrusLogger.WithFields(logrus.Fields{
		"port":   cfg.TasksPort,
		"driver": cfg.DB.Driver,
	}).Info("tasks service starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logrusLogger.WithError(err).Fatal("server failed")
	}
}
