package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/api/ping", fields["path"])
	require.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestLogSQLQuery(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	LogSQLQuery(zap.New(core), `
		SELECT id
		FROM providers
	`)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "SELECT id FROM providers", logs.All()[0].ContextMap()["query"])
}

func TestNew(t *testing.T) {
	require.NotNil(t, New("local"))
	require.NotNil(t, New("prod"))
}
