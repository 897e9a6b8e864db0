// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watsona4/brightness/internal/health"
)

func freshnessRegistry(t *testing.T, age time.Duration) *health.Registry {
	t.Helper()

	path := filepath.Join(t.TempDir(), "last_publish")
	now := time.Unix(1_700_000_000, 0)
	last := now.Add(-age).Unix()
	require.NoError(t, os.WriteFile(path, []byte(strconv.FormatInt(last, 10)), 0o644))

	return health.NewRegistry(health.NewFreshnessChecker(path, 180*time.Second, func() time.Time { return now }))
}

func TestLivez(t *testing.T) {
	engine := NewEngine(health.NewRegistry(), time.Second)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/livez", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthzFresh(t *testing.T) {
	engine := NewEngine(freshnessRegistry(t, 10*time.Second), time.Second)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(health.StatusUp), body["status"])
}

func TestHealthzStale(t *testing.T) {
	engine := NewEngine(freshnessRegistry(t, 181*time.Second), time.Second)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "stale heartbeat")
}

func TestMetricsEndpoint(t *testing.T) {
	engine := NewEngine(health.NewRegistry(), time.Second)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "go_goroutines"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, addr, NewEngine(health.NewRegistry(), time.Second), zerolog.Nop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/livez")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
