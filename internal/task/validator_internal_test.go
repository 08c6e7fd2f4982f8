package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-api/taskflow/internal/httputil"
)

func fieldNames(errs []httputil.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateCreate(t *testing.T) {
	longDescription := strings.Repeat("d", descriptionMaxLen+1)

	tests := []struct {
		name       string
		req        createTaskRequest
		wantFields []string
	}{
		{
			name: "valid minimal",
			req:  createTaskRequest{Title: "Buy milk"},
		},
		{
			name: "valid full",
			req: createTaskRequest{
				Title:       "Buy milk",
				Description: ptr("2 liters"),
				Status:      "IN_PROGRESS",
			},
		},
		{
			name:       "missing title",
			req:        createTaskRequest{},
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace-only title",
			req:        createTaskRequest{Title: "   "},
			wantFields: []string{"title"},
		},
		{
			name:       "title too short",
			req:        createTaskRequest{Title: "ab"},
			wantFields: []string{"title"},
		},
		{
			name:       "title too long",
			req:        createTaskRequest{Title: strings.Repeat("t", titleMaxLen+1)},
			wantFields: []string{"title"},
		},
		{
			name:       "description too long",
			req:        createTaskRequest{Title: "ok title", Description: &longDescription},
			wantFields: []string{"description"},
		},
		{
			name:       "unknown status",
			req:        createTaskRequest{Title: "ok title", Status: "DONE"},
			wantFields: []string{"status"},
		},
		{
			name:       "lowercase status rejected",
			req:        createTaskRequest{Title: "ok title", Status: "pending"},
			wantFields: []string{"status"},
		},
		{
			name:       "multiple errors",
			req:        createTaskRequest{Title: "ab", Status: "DONE"},
			wantFields: []string{"title", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateCreate(&tt.req)
			assert.ElementsMatch(t, tt.wantFields, fieldNames(errs))
		})
	}
}

func TestValidateCreate_Messages(t *testing.T) {
	req := createTaskRequest{Title: "ab"}
	errs := validateCreate(&req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Title must be between 3 and 255 characters", errs[0].Message)
	assert.Equal(t, "ab", errs[0].Value)

	req = createTaskRequest{Title: "fine", Status: "DONE"}
	errs = validateCreate(&req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Status must be PENDING, IN_PROGRESS, or COMPLETED", errs[0].Message)
}

func TestValidateCreate_TrimsFields(t *testing.T) {
	req := createTaskRequest{Title: "  Buy milk  ", Description: ptr("  notes  ")}
	errs := validateCreate(&req)
	require.Empty(t, errs)
	assert.Equal(t, "Buy milk", req.Title)
	assert.Equal(t, "notes", *req.Description)
}

func TestValidateUpdate(t *testing.T) {
	longDescription := strings.Repeat("d", descriptionMaxLen+1)

	tests := []struct {
		name       string
		req        updateTaskRequest
		wantFields []string
	}{
		{
			name: "empty payload is valid",
			req:  updateTaskRequest{},
		},
		{
			name: "status only",
			req:  updateTaskRequest{Status: ptr("COMPLETED")},
		},
		{
			name:       "empty title when provided",
			req:        updateTaskRequest{Title: ptr("  ")},
			wantFields: []string{"title"},
		},
		{
			name:       "title too short",
			req:        updateTaskRequest{Title: ptr("ab")},
			wantFields: []string{"title"},
		},
		{
			name:       "description too long",
			req:        updateTaskRequest{Description: &longDescription},
			wantFields: []string{"description"},
		},
		{
			name:       "unknown status",
			req:        updateTaskRequest{Status: ptr("ARCHIVED")},
			wantFields: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateUpdate(&tt.req)
			assert.ElementsMatch(t, tt.wantFields, fieldNames(errs))
		})
	}
}

func TestValidateUpdate_EmptyTitleMessage(t *testing.T) {
	req := updateTaskRequest{Title: ptr("")}
	errs := validateUpdate(&req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Title cannot be empty if provided", errs[0].Message)
}

func ptr(s string) *string { return &s }
