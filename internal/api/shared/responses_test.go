package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Task not found", body.Message)
	assert.NotEmpty(t, body.TraceID)
}

func TestRespondWithErrorAndLogSanitizesDetail(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError,
		"Failed to create task", errors.New("disk I/O error on /var/lib/tasks.db"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "Failed to create task", body.Message)
	assert.NotContains(t, recorder.Body.String(), "disk I/O")
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	assert.NotEmpty(t, GetTraceID(ctx))
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), UserIDContextKey, int64(7))
	userID, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	_, ok = GetUserID(context.Background())
	assert.False(t, ok)
}
