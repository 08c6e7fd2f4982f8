package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoService is the alternative token scheme: PASETO v4.local
// (symmetric encryption with XChaCha20-Poly1305). Selected with
// TOKEN_SCHEME=paseto; requires an explicit 32-byte key.
type PasetoService struct {
	symmetricKey paseto.V4SymmetricKey
	ttl          time.Duration
}

func NewPasetoService(symmetricKey []byte, ttl time.Duration) (*PasetoService, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be exactly 32 bytes, got %d", len(symmetricKey))
	}

	key, err := paseto.V4SymmetricKeyFromBytes(symmetricKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &PasetoService{symmetricKey: key, ttl: ttl}, nil
}

func (s *PasetoService) Issue(userID int64, email string) (string, error) {
	now := time.Now()

	t := paseto.NewToken()
	t.SetIssuedAt(now)
	t.SetExpiration(now.Add(s.ttl))
	t.SetString("id", strconv.FormatInt(userID, 10))
	t.SetString("email", email)

	return t.V4Encrypt(s.symmetricKey, nil), nil
}

func (s *PasetoService) Verify(tokenStr string) (*Claims, error) {
	parser := paseto.NewParser()

	t, err := parser.ParseV4Local(s.symmetricKey, tokenStr, nil)
	if err != nil {
		// The parser checks expiration by default; distinguish expired
		// from invalid
		if errors.Is(err, &paseto.RuleError{}) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	idStr, err := t.GetString("id")
	if err != nil {
		return nil, ErrInvalid
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, ErrInvalid
	}

	email, err := t.GetString("email")
	if err != nil {
		return nil, ErrInvalid
	}

	issuedAt, err := t.GetIssuedAt()
	if err != nil {
		return nil, ErrInvalid
	}

	expiresAt, err := t.GetExpiration()
	if err != nil {
		return nil, ErrInvalid
	}

	return &Claims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
