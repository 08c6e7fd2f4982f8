// Package token issues and verifies the stateless session tokens that
// prove identity on protected routes. Tokens are self-contained and never
// stored server-side; a token stays valid until its expiry even if the
// user record changes after issuance.
package token

import (
	"errors"
	"time"
)

var (
	// ErrExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrExpired = errors.New("token has expired")
	// ErrNotYetValid means the token carries a not-before in the future.
	ErrNotYetValid = errors.New("token is not active yet")
	// ErrInvalid covers bad signatures and structurally malformed tokens.
	ErrInvalid = errors.New("invalid token")
)

// Claims is the payload carried by a session token.
type Claims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service issues and verifies session tokens.
// Implementations: JWTService (HS256) and PasetoService (v4.local).
type Service interface {
	Issue(userID int64, email string) (string, error)
	Verify(tokenStr string) (*Claims, error)
}
