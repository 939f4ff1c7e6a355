package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewStaticTokenService("secret-token-123")
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "secret-token-123:42", token)

	userID, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestStaticTokenServiceValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewStaticTokenService("secret-token-123")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "missing separator", token: "secret-token-12342"},
		{name: "too many parts", token: "secret-token-123:42:extra"},
		{name: "wrong secret", token: "other-secret:42"},
		{name: "non-numeric user id", token: "secret-token-123:abc"},
		{name: "trailing garbage after id", token: "secret-token-123:42abc"},
		{name: "empty user id", token: "secret-token-123:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewStaticTokenServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewStaticTokenService("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
