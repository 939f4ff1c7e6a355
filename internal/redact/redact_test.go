package redact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "bearer token",
			input: "auth failed for Bearer secret-token-123:42",
			want:  "auth failed for " + RedactedTokenPlaceholder,
		},
		{
			name:  "static token without bearer prefix",
			input: "rejected token secret-token-123:7",
			want:  "rejected token " + RedactedTokenPlaceholder,
		},
		{
			name:  "bcrypt digest",
			input: "digest mismatch $2a$10$N9qo8uLOickgx2ZMRZoMye",
			want:  "digest mismatch " + RedactedCredentialPlaceholder,
		},
		{
			name:  "email address",
			input: "duplicate user ada@example.com",
			want:  "duplicate user " + RedactedEmailPlaceholder,
		},
		{
			name:  "file path",
			input: "cannot open /var/lib/taskdeck/tasks.db",
			want:  "cannot open " + RedactedPathPlaceholder,
		},
		{
			name:  "sql fragment",
			input: "near syntax: SELECT id, title FROM tasks WHERE id = ?",
			want:  "near syntax: " + RedactedSQLPlaceholder,
		},
		{
			name:  "plain message untouched",
			input: "task not found",
			want:  "task not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input))
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))
	assert.Equal(t,
		"lookup failed for "+RedactedEmailPlaceholder,
		Error(errors.New("lookup failed for ada@example.com")))
}
