package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/taskflow-api/taskflow/internal/database"
)

var ErrNotFound = errors.New("task not found")

// Repository is the persistence gateway for tasks.
type Repository interface {
	FindAllByUser(ctx context.Context, userID int64, status Status) ([]*Task, error)
	FindByID(ctx context.Context, id int64) (*Task, error)
	Create(ctx context.Context, t *Task) (*Task, error)
	Update(ctx context.Context, t *Task) (*Task, error)
	Delete(ctx context.Context, id int64) error
}

// BunRepository handles task persistence through bun.
type BunRepository struct {
	db *bun.DB
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// FindAllByUser lists a user's tasks newest-first, optionally filtered by
// status (empty means no filter).
func (r *BunRepository) FindAllByUser(ctx context.Context, userID int64, status Status) ([]*Task, error) {
	var dbTasks []*database.Task

	q := r.db.NewSelect().
		Model(&dbTasks).
		Where("user_id = ?", userID)

	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	if err := q.Order("created_at DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*Task, 0, len(dbTasks))
	for _, dbt := range dbTasks {
		tasks = append(tasks, mapDBTaskToModel(dbt))
	}

	return tasks, nil
}

// FindByID retrieves a task by ID regardless of owner; the service layer
// performs the ownership check so absent and forbidden stay distinguishable.
func (r *BunRepository) FindByID(ctx context.Context, id int64) (*Task, error) {
	dbTask := new(database.Task)
	err := r.db.NewSelect().
		Model(dbTask).
		Where("t.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task by id: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Create inserts a new task.
func (r *BunRepository) Create(ctx context.Context, t *Task) (*Task, error) {
	now := time.Now()
	dbTask := &database.Task{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.NewInsert().
		Model(dbTask).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Update persists the mutable columns of t and refreshes updated_at.
func (r *BunRepository) Update(ctx context.Context, t *Task) (*Task, error) {
	dbTask := &database.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	result, err := r.db.NewUpdate().
		Model(dbTask).
		Column("title", "description", "status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBTaskToModel(dbTask), nil
}

// Delete removes the task with the given id.
func (r *BunRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.NewDelete().
		Model((*database.Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBTaskToModel converts database model to domain model
func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		Title:       dbt.Title,
		Description: dbt.Description,
		Status:      Status(dbt.Status),
		UserID:      dbt.UserID,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
	}
}
