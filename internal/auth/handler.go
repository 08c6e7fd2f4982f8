package auth

import (
	"encoding/json"
	"net/http"

	"github.com/taskflow-api/taskflow/internal/apperr"
	"github.com/taskflow-api/taskflow/internal/httputil"
	"github.com/taskflow-api/taskflow/internal/logging"
	"github.com/taskflow-api/taskflow/internal/user"
)

// Handler contains HTTP handlers for the authentication endpoints
type Handler struct {
	service *Service
	ew      *httputil.ErrorWriter
}

func NewHandler(service *Service, ew *httputil.ErrorWriter) *Handler {
	return &Handler{service: service, ew: ew}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData is the data field of register/login responses: the shaped user
// (no password hash) plus the session token.
type authData struct {
	User  user.Response `json:"user"`
	Token string        `json:"token"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create an account and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration fields"
// @Success      201 {object} httputil.Envelope
// @Failure      400 {object} httputil.Envelope "Validation failed"
// @Failure      409 {object} httputil.Envelope "User already exists"
// @Router       /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ew.WriteError(w, r, apperr.BadRequest("Invalid request body"))
		return
	}

	if errs := validateRegister(&req); len(errs) > 0 {
		httputil.ValidationFailed(w, errs)
		return
	}

	newUser, tokenStr, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	logger.Info("user registered", "user_id", newUser.ID)

	httputil.Success(w, http.StatusCreated, "User registered successfully", authData{
		User:  user.ToResponse(newUser),
		Token: tokenStr,
	})
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} httputil.Envelope
// @Failure      400 {object} httputil.Envelope "Validation failed"
// @Failure      401 {object} httputil.Envelope "Invalid credentials"
// @Router       /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ew.WriteError(w, r, apperr.BadRequest("Invalid request body"))
		return
	}

	if errs := validateLogin(&req); len(errs) > 0 {
		httputil.ValidationFailed(w, errs)
		return
	}

	existing, tokenStr, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.ew.WriteError(w, r, err)
		return
	}

	logger.Info("user logged in", "user_id", existing.ID)

	httputil.Success(w, http.StatusOK, "Login successful", authData{
		User:  user.ToResponse(existing),
		Token: tokenStr,
	})
}
