package task

import "time"

// Status enumerates the task lifecycle states.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateInput carries the client-settable fields of a new task. The owner
// is never part of it; it always comes from the authenticated identity.
type CreateInput struct {
	Title       string
	Description *string
	Status      Status
}

// UpdateInput carries a partial update: nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Status      *Status
}
