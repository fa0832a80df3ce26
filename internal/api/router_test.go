package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/volley"
	"github.com/arloliu/volley/internal/metrics"
	volleytest "github.com/arloliu/volley/testing"
)

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"message"`
}

func newTestRouter(t *testing.T, opts ...RouterOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := volley.TestConfig()
	cfg.MaxTargets = 8
	logger := volleytest.NewTestLogger(t)
	opt, err := volley.NewOptimizer(&cfg, volley.WithLogger(logger))
	require.NoError(t, err)

	return NewRouter(opt, logger, opts...)
}

func do(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, WithVersion("1.2.3"))

	rec, env := do(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, CodeSuccess, env.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, "up", data["status"])
	require.Equal(t, "1.2.3", data["version"])
	require.Equal(t, "1x1", data["mode"])
}

func TestOptimize(t *testing.T) {
	router := newTestRouter(t)
	matrix := volleytest.ExampleMatrix()

	t.Run("uses configured mode by default", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/optimize", OptimizeRequest{Matrix: matrix})
		require.Equal(t, http.StatusOK, rec.Code)

		var out OptimizeResponse
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.True(t, out.Feasible)
		require.Equal(t, "1x1", out.Mode)
		require.Equal(t, "exact", out.Strategy)
		require.Equal(t, volley.Schedule{{0}, {1}, {2}}, out.Schedule)
		require.NotNil(t, out.Power)
		require.InDelta(t, 27.5, *out.Power, 1e-9)
		require.NotEmpty(t, out.RunID)
	})

	t.Run("honors requested mode", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/optimize", OptimizeRequest{Matrix: matrix, Mode: "2x2"})
		require.Equal(t, http.StatusOK, rec.Code)

		var out OptimizeResponse
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Equal(t, "greedy", out.Strategy)
		require.Equal(t, volley.Schedule{{0, 1}, {1, 0}}, out.Schedule)
		require.InDelta(t, 15.0, *out.Power, 1e-9)
	})

	t.Run("reports infeasible with null power", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/optimize", OptimizeRequest{Matrix: volley.PowerMatrix{{4}}, Mode: "2x2"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "no feasible schedule", env.Msg)

		var out OptimizeResponse
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.False(t, out.Feasible)
		require.Nil(t, out.Power)
		require.Nil(t, out.Schedule)
	})

	t.Run("rejects bad requests", func(t *testing.T) {
		cases := map[string]any{
			"malformed json":   "{",
			"missing matrix":   map[string]any{"mode": "1x1"},
			"bad mode":         OptimizeRequest{Matrix: matrix, Mode: "pairs"},
			"unsupported mode": OptimizeRequest{Matrix: matrix, Mode: "3x3"},
			"trailing mode":    OptimizeRequest{Matrix: matrix, Mode: "1x1garbage"},
			"overflowing sums": OptimizeRequest{Matrix: volley.PowerMatrix{{math.MaxInt64, 1}, {1, math.MaxInt64}}},
			"ragged matrix":    OptimizeRequest{Matrix: volley.PowerMatrix{{1, 2}, {3}}},
			"negative value":   OptimizeRequest{Matrix: volley.PowerMatrix{{1, -2}, {3, 4}}},
			"too large":        OptimizeRequest{Matrix: volleytest.RandomMatrix(1, 9, 5)},
		}
		for name, body := range cases {
			rec, env := do(t, router, http.MethodPost, "/api/v1/optimize", body)
			require.Equal(t, http.StatusBadRequest, rec.Code, name)
			require.Equal(t, CodeValidation, env.Code, name)
			require.NotEmpty(t, env.Msg, name)
		}
	})
}

func TestTwoWave(t *testing.T) {
	router := newTestRouter(t)

	t.Run("scores example matrix", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/two-wave", TwoWaveRequest{Matrix: volleytest.ExampleMatrix()})
		require.Equal(t, http.StatusOK, rec.Code)

		var out volley.TwoWaveResult
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Equal(t, int64(25), out.Score)
	})

	t.Run("single target is a validation error", func(t *testing.T) {
		rec, env := do(t, router, http.MethodPost, "/api/v1/two-wave", TwoWaveRequest{Matrix: volley.PowerMatrix{{1}}})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, CodeValidation, env.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewPrometheus(reg, "test")
	collector.RecordOptimization("1x1", "feasible", 0.001)

	router := newTestRouter(t, WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	rec, _ := do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test_optimizer_runs_total")
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/v1/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, CodeNotFound, env.Code)
	require.Equal(t, "not found", env.Msg)
}

func TestErrorCode(t *testing.T) {
	require.Equal(t, CodeValidation, errorCode(volley.ErrInvalidMatrix))
	require.Equal(t, CodeValidation, errorCode(volley.ErrInfeasible))
	require.Equal(t, CodeError, errorCode(volley.ErrSourceUnavailable))
}
