package httputil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/taskflow-api/taskflow/internal/apperr"
	"github.com/taskflow-api/taskflow/internal/logging"
	"github.com/taskflow-api/taskflow/internal/token"
)

// errorEnvelope extends the envelope with the optional detail field some
// error kinds carry.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorWriter is the single point translating errors to HTTP responses.
// Services and middleware hand it whatever error they hit; it decides the
// status code and the envelope.
type ErrorWriter struct {
	logger       *logging.Logger
	isProduction bool
}

func NewErrorWriter(logger *logging.Logger, isProduction bool) *ErrorWriter {
	return &ErrorWriter{logger: logger, isProduction: isProduction}
}

// WriteError maps an error to a status code and writes the error envelope.
// Recognition order: typed application errors, token errors, Postgres
// constraint violations, then a logged catch-all 500.
func (ew *ErrorWriter) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	// Application-level typed errors carry their own status code.
	if appErr, ok := apperr.As(err); ok {
		respondError(w, appErr.Status, appErr.Message, "")
		return
	}

	// Session token errors.
	switch {
	case errors.Is(err, token.ErrExpired):
		respondError(w, http.StatusForbidden, "Token has expired", "")
		return
	case errors.Is(err, token.ErrInvalid):
		respondError(w, http.StatusUnauthorized, "Invalid token", "")
		return
	case errors.Is(err, token.ErrNotYetValid):
		respondError(w, http.StatusBadRequest, "Token is not active yet", "")
		return
	}

	// Postgres constraint violations surfaced by lib/pq.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		ew.writePQError(w, pqErr)
		return
	}

	// Anything else is an unexpected internal error. Log it server-side;
	// echo the raw message only outside production.
	logger := logging.GetLoggerFromContext(r.Context())
	logger.Error("internal error", "error", err.Error())

	detail := ""
	if !ew.isProduction {
		detail = err.Error()
	}
	respondError(w, http.StatusInternalServerError, "Internal server error", detail)
}

func (ew *ErrorWriter) writePQError(w http.ResponseWriter, pqErr *pq.Error) {
	detail := pqErr.Detail
	if detail == "" {
		detail = pqErr.Message
	}

	switch pqErr.Code {
	case "23505": // unique_violation
		respondError(w, http.StatusConflict, "Duplicate entry", detail)
	case "23503": // foreign_key_violation
		// Postgres uses one SQLSTATE for both directions; the server
		// message prefix tells a restricted delete apart from a bad
		// reference on insert/update.
		if strings.HasPrefix(pqErr.Message, "update or delete") {
			respondError(w, http.StatusConflict, "Operation not allowed due to foreign key constraint", detail)
		} else {
			respondError(w, http.StatusBadRequest, "Invalid reference: foreign key constraint failed", detail)
		}
	case "23502": // not_null_violation
		respondError(w, http.StatusBadRequest, "A required field is missing a value", detail)
	case "42P01": // undefined_table
		respondError(w, http.StatusInternalServerError, "Database table not found", detail)
	default:
		ew.logger.Error("unhandled database error", "code", string(pqErr.Code), "error", pqErr.Message)
		respondError(w, http.StatusInternalServerError, "Internal server error", "")
	}
}

func respondError(w http.ResponseWriter, statusCode int, message, detail string) {
	RespondJSON(w, errorEnvelope{Status: "error", Message: message, Detail: detail}, statusCode)
}
