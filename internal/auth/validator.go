package auth

import (
	"net/mail"

	"github.com/taskflow-api/taskflow/internal/httputil"
)

const passwordMinLen = 6

// validateRegister checks the registration payload field by field.
func validateRegister(req *registerRequest) []httputil.FieldError {
	var errs []httputil.FieldError

	if req.Name == "" {
		errs = append(errs, httputil.FieldError{Field: "name", Message: "Name is required", Value: req.Name})
	}

	if !isEmail(req.Email) {
		errs = append(errs, httputil.FieldError{Field: "email", Message: "Valid email required", Value: req.Email})
	}

	if len(req.Password) < passwordMinLen {
		errs = append(errs, httputil.FieldError{Field: "password", Message: "Password must be at least 6 characters long", Value: req.Password})
	}

	return errs
}

// validateLogin checks the login payload.
func validateLogin(req *loginRequest) []httputil.FieldError {
	var errs []httputil.FieldError

	if !isEmail(req.Email) {
		errs = append(errs, httputil.FieldError{Field: "email", Message: "A valid email is required", Value: req.Email})
	}

	if req.Password == "" {
		errs = append(errs, httputil.FieldError{Field: "password", Message: "Password is required", Value: req.Password})
	}

	return errs
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	// Reject the "Name <addr>" form: the field must be a bare address.
	return err == nil && addr.Address == s
}
