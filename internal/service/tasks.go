package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sun1tar/tasktracker/internal/models"
	"github.com/sun1tar/tasktracker/internal/repository"
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// normalizeDescription приводит отсутствующее или пустое описание к NULL
func normalizeDescription(description *string) *string {
	if description == nil || *description == "" {
		return nil
	}
	return description
}

func (s *TaskService) Create(ctx context.Context, title string, description *string, status, dueDate string) (*models.Task, error) {
	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: normalizeDescription(description),
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, sql.ErrNoRows
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx)
}

// Replace перезаписывает все изменяемые поля задачи.
// Существование проверяется до мутации; ответ перечитывается из хранилища.
func (s *TaskService) Replace(ctx context.Context, id, title string, description *string, status, dueDate string) (*models.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, sql.ErrNoRows
	}

	existing.Title = title
	existing.Description = normalizeDescription(description)
	existing.Status = status
	existing.DueDate = dueDate
	existing.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Update обновляет только переданные поля (nil = поле не трогаем)
func (s *TaskService) Update(ctx context.Context, id string, title, description, status, dueDate *string) (*models.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, sql.ErrNoRows
	}

	if title != nil {
		existing.Title = *title
	}
	if description != nil {
		existing.Description = normalizeDescription(description)
	}
	if status != nil {
		existing.Status = *status
	}
	if dueDate != nil {
		existing.DueDate = *dueDate
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) SearchByTitle(ctx context.Context, query string) ([]*models.Task, error) {
	return s.repo.SearchByTitle(ctx, query)
}
