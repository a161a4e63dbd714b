package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootTally_Go/internal/logger"
)

func TestLoggingMiddlewareRedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	// Header logging only happens at debug level.
	logger.InitWithWriter(logger.Config{Level: "debug", Format: "text", ServiceName: "loot-tally"}, &buf)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lines", strings.NewReader(`{"line":"You obtain a potion."}`))
	req.Header.Set(HeaderAPIKey, "ingest-host-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer stale-token")
	req.Header.Set("User-Agent", "loot-tally-host/1.0")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders, "headers must be logged at debug level")

	assert.NotContains(t, out, "ingest-host-key-123", "API key value must never reach the log")
	assert.NotContains(t, out, "Bearer stale-token", "Authorization value must never reach the log")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "loot-tally-host/1.0", "non-sensitive headers stay visible")
}

func TestLoggingMiddlewareSkipsProbeEndpoints(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(logger.Config{Level: "debug", Format: "text", ServiceName: "loot-tally"}, &buf)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Empty(t, buf.String(), "probe traffic must not generate request logs")
}
