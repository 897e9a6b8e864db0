// internal/health/registry_test.go
package health

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watsona4/brightness/internal/config"
)

type stubChecker struct {
	name string
	res  Result
}

func (s stubChecker) Name() string                      { return s.name }
func (s stubChecker) Evaluate(_ context.Context) Result { return s.res }

func TestRegistry_AllUp(t *testing.T) {
	r := NewRegistry(
		stubChecker{name: "a", res: up()},
		stubChecker{name: "b", res: up()},
	)

	rep := r.EvaluateAll(context.Background())

	assert.True(t, rep.Healthy())
	assert.Len(t, rep.Checks, 2)
	assert.Empty(t, rep.Failed())
}

func TestRegistry_AnyDownIsDown(t *testing.T) {
	r := NewRegistry(
		stubChecker{name: "a", res: up()},
		stubChecker{name: "b", res: down("broken")},
	)

	rep := r.EvaluateAll(context.Background())

	assert.False(t, rep.Healthy())
	require.Len(t, rep.Failed(), 1)
	assert.Equal(t, "b", rep.Failed()[0].Name)
	assert.Equal(t, "broken", rep.Failed()[0].Message)
}

func TestRegistry_EmptyIsDown(t *testing.T) {
	assert.False(t, NewRegistry().EvaluateAll(context.Background()).Healthy())
}

func TestTCPChecker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			_ = c.Close()
		}
	}()

	addr := ln.Addr().String()
	assert.True(t, NewTCPChecker(addr, time.Second).Evaluate(context.Background()).Healthy())

	require.NoError(t, ln.Close())

	res := NewTCPChecker(addr, time.Second).Evaluate(context.Background())
	assert.False(t, res.Healthy())
	assert.Contains(t, res.Message, "mqtt tcp unreachable")
}

func TestCommandChecker(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	ok := NewCommandChecker([]string{"sh", "-c", "exit 0"}, time.Second)
	assert.True(t, ok.Evaluate(context.Background()).Healthy())

	fail := NewCommandChecker([]string{"sh", "-c", "echo no broker >&2; exit 3"}, time.Second)
	res := fail.Evaluate(context.Background())
	assert.False(t, res.Healthy())
	assert.Contains(t, res.Message, "no broker")

	slow := NewCommandChecker([]string{"sh", "-c", "exec sleep 5"}, 50*time.Millisecond)
	res = slow.Evaluate(context.Background())
	assert.False(t, res.Healthy())
	assert.Contains(t, res.Message, "timed out")

	assert.False(t, NewCommandChecker(nil, time.Second).Evaluate(context.Background()).Healthy())
}

func TestBuild_SelectsStrategy(t *testing.T) {
	c := config.Default()
	c.Heartbeat.File = filepath.Join(t.TempDir(), "last_publish")

	names := func(r *Registry) []string {
		var out []string
		for _, ch := range r.checkers {
			out = append(out, ch.Name())
		}
		return out
	}

	// no broker host: freshness only
	assert.Equal(t, []string{"freshness"}, names(Build(c, nil)))

	c.MQTT.Host = "broker"
	assert.Equal(t, []string{"freshness", "mqtt-tcp"}, names(Build(c, nil)))

	c.Health.TCP = false
	c.Health.Strategy = config.StrategyCommand
	c.Health.Command = []string{"mosquitto_sub", "-t", "brightness", "-C", "1"}
	assert.Equal(t, []string{"command"}, names(Build(c, nil)))
}

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "last_publish")
	now := time.Unix(10_000, 0)
	reg := NewRegistry(NewFreshnessChecker(path, threshold, func() time.Time { return now }))

	router := gin.New()
	router.GET("/livez", LivenessHandler())
	router.GET("/healthz", ReportHandler(reg, time.Second))

	get := func(p string) (*httptest.ResponseRecorder, Report) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		var rep Report
		_ = json.Unmarshal(w.Body.Bytes(), &rep)
		return w, rep
	}

	w, _ := get("/livez")
	assert.Equal(t, http.StatusOK, w.Code)

	w, rep := get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, StatusDown, rep.Status)

	writeRecord(t, path, now.Unix()-10)

	w, rep = get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, StatusUp, rep.Status)
}
