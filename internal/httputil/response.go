package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the uniform shape of every response, success or error.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// FieldError describes a single request-field validation failure.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// Success sends a success envelope with optional message and data.
func Success(w http.ResponseWriter, statusCode int, message string, data any) {
	RespondJSON(w, Envelope{Status: "success", Message: message, Data: data}, statusCode)
}

// ValidationFailed sends the 400 envelope carrying per-field errors.
func ValidationFailed(w http.ResponseWriter, errs []FieldError) {
	RespondJSON(w, struct {
		Status  string       `json:"status"`
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}{
		Status:  "error",
		Message: "Validation failed",
		Errors:  errs,
	}, http.StatusBadRequest)
}
