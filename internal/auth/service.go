package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow-api/taskflow/internal/apperr"
	"github.com/taskflow-api/taskflow/internal/token"
	"github.com/taskflow-api/taskflow/internal/user"
)

// errInvalidCredentials is shared by the unknown-email and wrong-password
// paths. Keeping one value (and one message) prevents account enumeration
// through login responses.
var errInvalidCredentials = apperr.Unauthorized("Invalid credentials")

// Service handles authentication business logic
type Service struct {
	users  user.Repository
	tokens token.Service
}

func NewService(users user.Repository, tokens token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new user account and issues a session token.
// A taken email is a Conflict; the database unique constraint backstops
// the lookup in case of a concurrent registration.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, string, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", apperr.Conflict("User already exists")
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, name, email, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, "", apperr.Conflict("User already exists")
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenStr, err := s.tokens.Issue(newUser.ID, newUser.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return newUser, tokenStr, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password answer with the identical error.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := VerifyPassword(password, existing.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, "", errInvalidCredentials
	}

	tokenStr, err := s.tokens.Issue(existing.ID, existing.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return existing, tokenStr, nil
}
