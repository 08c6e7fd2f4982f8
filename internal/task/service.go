package task

import (
	"context"
	"errors"

	"github.com/taskflow-api/taskflow/internal/apperr"
)

// Service holds the task business rules: the status-filter check, the
// PENDING default, and the ownership boundary on every by-id operation.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the owner's tasks newest-first, optionally filtered by
// status. A non-empty filter outside the enum is a bad request.
func (s *Service) List(ctx context.Context, ownerID int64, status Status) ([]*Task, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.BadRequest("Invalid status filter")
	}

	return s.repo.FindAllByUser(ctx, ownerID, status)
}

// Create persists a new task for the owner. Status defaults to PENDING
// when unset; the owner id always comes from the authenticated identity,
// never from client input.
func (s *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*Task, error) {
	status := input.Status
	if status == "" {
		status = StatusPending
	}

	return s.repo.Create(ctx, &Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		UserID:      ownerID,
	})
}

// Update applies a partial update after the fetch-then-authorize check.
func (s *Service) Update(ctx context.Context, taskID, ownerID int64, input UpdateInput) (*Task, error) {
	t, err := s.authorize(ctx, taskID, ownerID, "update")
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = input.Description
	}
	if input.Status != nil {
		t.Status = *input.Status
	}

	return s.repo.Update(ctx, t)
}

// Remove deletes a task after the fetch-then-authorize check.
func (s *Service) Remove(ctx context.Context, taskID, ownerID int64) error {
	if _, err := s.authorize(ctx, taskID, ownerID, "delete"); err != nil {
		return err
	}

	return s.repo.Delete(ctx, taskID)
}

// GetByID returns a task after the fetch-then-authorize check.
func (s *Service) GetByID(ctx context.Context, taskID, ownerID int64) (*Task, error) {
	return s.authorize(ctx, taskID, ownerID, "view")
}

// authorize loads the task and checks ownership. Loading first keeps
// "not found" and "not yours" distinguishable (404 vs 403), at the cost of
// a narrow check-to-use window this design accepts.
func (s *Service) authorize(ctx context.Context, taskID, ownerID int64, action string) (*Task, error) {
	t, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Task not found")
		}
		return nil, err
	}

	if t.UserID != ownerID {
		return nil, apperr.Forbidden("You don't have permission to " + action + " this task")
	}

	return t, nil
}
