package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sun1tar/tasktracker/internal/models"
)

// Схема общая для обоих драйверов
const createTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL,
	due_date TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

type SQLiteTaskRepository struct {
	db *sql.DB
}

func NewSQLiteTaskRepository(dsn string) (*SQLiteTaskRepository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Для :memory: каждое соединение пула получает собственную БД,
	// поэтому пул ограничивается одним соединением
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err = db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to create tasks table: %w", err)
	}
	return &SQLiteTaskRepository{db: db}, nil
}

func (r *SQLiteTaskRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (id, title, description, status, due_date, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.DueDate, task.CreatedAt, task.UpdatedAt)
	return err
}

func (r *SQLiteTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT id, title, description, status, due_date, created_at, updated_at FROM tasks WHERE id = ?`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.DueDate, &task.CreatedAt, &task.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *SQLiteTaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT id, title, description, status, due_date, created_at, updated_at FROM tasks ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepository) Replace(ctx context.Context, task *models.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate, task.UpdatedAt, task.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLiteTaskRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// В SQLite LIKE нечувствителен к регистру для ASCII, отдельный ILIKE не нужен
func (r *SQLiteTaskRepository) SearchByTitle(ctx context.Context, titleSubstring string) ([]*models.Task, error) {
	query := `SELECT id, title, description, status, due_date, created_at, updated_at FROM tasks WHERE title LIKE ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, "%"+titleSubstring+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}
