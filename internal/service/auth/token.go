package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// TokenService defines the interface for issuing and validating bearer
// tokens.
type TokenService interface {
	// GenerateToken produces a bearer token for the given user ID.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken checks a token and returns the user ID it carries.
	// Returns ErrInvalidToken for any malformed or unrecognized token.
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// StaticTokenService implements TokenService with the static-prefix scheme
// "<secret>:<userId>".
//
// This is a placeholder, not a security mechanism: the secret is shared, and
// tokens carry no signature, expiry, or revocation, so any holder of the
// secret can mint tokens for any user. Replace with signed, expiring claims
// (e.g. HMAC) before using this service beyond a demo.
type StaticTokenService struct {
	secret string
}

// NewStaticTokenService creates a StaticTokenService with the given secret.
func NewStaticTokenService(secret string) (*StaticTokenService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &StaticTokenService{secret: secret}, nil
}

// Ensure StaticTokenService implements TokenService interface
var _ TokenService = (*StaticTokenService)(nil)

// GenerateToken implements TokenService.GenerateToken
func (s *StaticTokenService) GenerateToken(_ context.Context, userID int64) (string, error) {
	return fmt.Sprintf("%s:%d", s.secret, userID), nil
}

// ValidateToken implements TokenService.ValidateToken
//
// The token must have exactly two colon-separated parts, the first equal to
// the configured secret and the second a base-10 integer.
func (s *StaticTokenService) ValidateToken(_ context.Context, token string) (int64, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidToken
	}

	if parts[0] != s.secret {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
