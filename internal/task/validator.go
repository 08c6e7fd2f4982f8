package task

import (
	"strings"

	"github.com/taskflow-api/taskflow/internal/httputil"
)

const (
	titleMinLen       = 3
	titleMaxLen       = 255
	descriptionMaxLen = 5000
)

const statusMessage = "Status must be PENDING, IN_PROGRESS, or COMPLETED"

// validateCreate checks the create-task payload field by field. Fields are
// trimmed in place before the checks, mirroring what the handlers persist.
func validateCreate(req *createTaskRequest) []httputil.FieldError {
	var errs []httputil.FieldError

	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "":
		errs = append(errs, httputil.FieldError{Field: "title", Message: "Title is required", Value: req.Title})
	case len(req.Title) < titleMinLen || len(req.Title) > titleMaxLen:
		errs = append(errs, httputil.FieldError{Field: "title", Message: "Title must be between 3 and 255 characters", Value: req.Title})
	}

	if req.Description != nil {
		*req.Description = strings.TrimSpace(*req.Description)
		if len(*req.Description) > descriptionMaxLen {
			errs = append(errs, httputil.FieldError{Field: "description", Message: "Description cannot exceed 5000 characters", Value: *req.Description})
		}
	}

	if req.Status != "" && !Status(req.Status).Valid() {
		errs = append(errs, httputil.FieldError{Field: "status", Message: statusMessage, Value: req.Status})
	}

	return errs
}

// validateUpdate checks the partial-update payload: every field optional,
// but present fields obey the same rules as on create.
func validateUpdate(req *updateTaskRequest) []httputil.FieldError {
	var errs []httputil.FieldError

	if req.Title != nil {
		*req.Title = strings.TrimSpace(*req.Title)
		switch {
		case *req.Title == "":
			errs = append(errs, httputil.FieldError{Field: "title", Message: "Title cannot be empty if provided", Value: *req.Title})
		case len(*req.Title) < titleMinLen || len(*req.Title) > titleMaxLen:
			errs = append(errs, httputil.FieldError{Field: "title", Message: "Title must be between 3 and 255 characters", Value: *req.Title})
		}
	}

	if req.Description != nil {
		*req.Description = strings.TrimSpace(*req.Description)
		if len(*req.Description) > descriptionMaxLen {
			errs = append(errs, httputil.FieldError{Field: "description", Message: "Description cannot exceed 5000 characters", Value: *req.Description})
		}
	}

	if req.Status != nil && !Status(*req.Status).Valid() {
		errs = append(errs, httputil.FieldError{Field: "status", Message: statusMessage, Value: *req.Status})
	}

	return errs
}
