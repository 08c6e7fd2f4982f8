package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name       string
		req        registerRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  registerRequest{Name: "Ana", Email: "ana@x.com", Password: "123456"},
		},
		{
			name:       "missing name",
			req:        registerRequest{Email: "ana@x.com", Password: "123456"},
			wantFields: []string{"name"},
		},
		{
			name:       "bad email",
			req:        registerRequest{Name: "Ana", Email: "not-an-email", Password: "123456"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			req:        registerRequest{Name: "Ana", Email: "ana@x.com", Password: "12345"},
			wantFields: []string{"password"},
		},
		{
			name:       "everything wrong",
			req:        registerRequest{},
			wantFields: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateRegister(&tt.req)

			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	errs := validateLogin(&loginRequest{Email: "ana@x.com", Password: "x"})
	assert.Empty(t, errs)

	errs = validateLogin(&loginRequest{Email: "nope", Password: ""})
	assert.Len(t, errs, 2)
}

func TestIsEmail(t *testing.T) {
	assert.True(t, isEmail("ana@x.com"))
	assert.False(t, isEmail(""))
	assert.False(t, isEmail("plainstring"))
	assert.False(t, isEmail("Ana <ana@x.com>"))
}
