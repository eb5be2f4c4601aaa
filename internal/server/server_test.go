package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/opn/backend/internal/config"
	"github.com/GriffinCanCode/opn/backend/internal/logging"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.ShutdownTimeout = 2 * time.Second
	if mutate != nil {
		mutate(cfg)
	}
	srv, err := NewServer(cfg, WithLogger(logging.NewNop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = 0
	_, err := NewServer(cfg, WithLogger(logging.NewNop()))
	assert.Error(t, err)
}

func TestNewServerRegistersOPN(t *testing.T) {
	srv := newTestServer(t, nil)
	_, ok := srv.Registry().Get("opn")
	assert.True(t, ok)
}

func TestExecuteThroughRouter(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"tool_id":"opn.multiply","params":{"x":{"a":2,"b":3},"y":[2,3]}}`
	req := httptest.NewRequest(http.MethodPost, "/services/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Result map[string]float64 `json:"result"`
			Text   string             `json:"text"`
		} `json:"data"`
		ToolID string `json:"tool_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "opn.multiply", resp.ToolID)
	assert.Equal(t, -12.0, resp.Data.Result["a"])
	assert.Equal(t, -13.0, resp.Data.Result["b"])
	assert.Equal(t, "(-12, -13)", resp.Data.Text)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		srv := newTestServer(t, nil)

		// Generate a tool call so the counters exist
		req := httptest.NewRequest(http.MethodPost, "/services/execute",
			strings.NewReader(`{"tool_id":"opn.identity"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Router().ServeHTTP(httptest.NewRecorder(), req)

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "opn_tool_calls_total")
		assert.Contains(t, w.Body.String(), "opn_uptime_seconds")
	})

	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, func(c *config.Config) { c.Metrics.Enabled = false })
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRateLimitApplied(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) {
		c.RateLimit.RequestsPerSecond = 1
		c.RateLimit.Burst = 1
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes[1:], http.StatusTooManyRequests)
}

func TestGlobalRateLimitApplied(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) {
		c.RateLimit.RequestsPerSecond = 1
		c.RateLimit.Burst = 1
		c.RateLimit.Global = true
	})

	first := httptest.NewRequest(http.MethodGet, "/health", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// A different client shares the same bucket
	second := httptest.NewRequest(http.MethodGet, "/health", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, second)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestOversizedBodyRejected(t *testing.T) {
	srv := newTestServer(t, nil)

	big := `{"tool_id":"opn.add","params":{"pad":"` + strings.Repeat("x", 128*1024) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/services/execute", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
