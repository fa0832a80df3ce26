package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/volley"
)

// OptimizeRequest is the body of POST /optimize.
type OptimizeRequest struct {
	// Matrix is the n×n power matrix, rows are targets and columns periods.
	Matrix volley.PowerMatrix `json:"matrix" binding:"required"`

	// Mode is "1x1" or "2x2"; empty means the server's configured mode.
	Mode string `json:"mode"`
}

// OptimizeResponse is the data of a successful POST /optimize.
//
// Power is null when the run is infeasible.
type OptimizeResponse struct {
	RunID      string          `json:"runId"`
	Mode       string          `json:"mode"`
	Strategy   string          `json:"strategy"`
	Feasible   bool            `json:"feasible"`
	Schedule   volley.Schedule `json:"schedule"`
	Power      *float64        `json:"power"`
	Cached     bool            `json:"cached"`
	DurationMs float64         `json:"durationMs"`
}

// TwoWaveRequest is the body of POST /two-wave.
type TwoWaveRequest struct {
	Matrix volley.PowerMatrix `json:"matrix" binding:"required"`
}

// NewOptimizeResponse converts a result into its JSON form.
//
// JSON has no infinities, so an infeasible result's -Inf power becomes null.
func NewOptimizeResponse(res volley.Result) OptimizeResponse {
	out := OptimizeResponse{
		RunID:      res.RunID,
		Mode:       res.Mode.String(),
		Strategy:   res.Mode.Kind().String(),
		Feasible:   res.Feasible,
		Schedule:   res.Schedule,
		Cached:     res.Cached,
		DurationMs: float64(res.Duration.Microseconds()) / 1000,
	}
	if res.Feasible {
		p := res.Power
		out.Power = &p
	}

	return out
}

// Handler serves the optimizer over HTTP.
type Handler struct {
	optimizer *volley.Optimizer
	started   time.Time
	version   string
}

// NewHandler creates a handler bound to an optimizer.
func NewHandler(optimizer *volley.Optimizer, version string) *Handler {
	return &Handler{
		optimizer: optimizer,
		started:   time.Now(),
		version:   version,
	}
}

// CheckHealth reports service liveness.
func (h *Handler) CheckHealth(c *gin.Context) {
	cfg := h.optimizer.Config()
	Success(c, gin.H{
		"status":      "up",
		"timestamp":   time.Now().Format(time.RFC3339),
		"service":     "volley",
		"version":     h.version,
		"uptime":      time.Since(h.started).Round(time.Second).String(),
		"mode":        cfg.Mode().String(),
		"degradation": cfg.Degradation,
	})
}

// Optimize schedules the posted matrix.
func (h *Handler) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, CodeValidation, err.Error())
		return
	}

	mode := h.optimizer.Config().Mode()
	if req.Mode != "" {
		parsed, err := volley.ParseMode(req.Mode)
		if err != nil {
			Error(c, CodeValidation, err.Error())
			return
		}
		mode = parsed
	}

	res, err := h.optimizer.OptimizeMode(c.Request.Context(), req.Matrix, mode)
	if err != nil {
		Error(c, errorCode(err), err.Error())
		return
	}

	out := NewOptimizeResponse(res)
	if res.Feasible {
		Success(c, out)

		return
	}

	SuccessWithMessage(c, out, "no feasible schedule")
}

// TwoWave scores the posted matrix with two disjoint waves.
func (h *Handler) TwoWave(c *gin.Context) {
	var req TwoWaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, CodeValidation, err.Error())
		return
	}

	res, err := h.optimizer.TwoWave(c.Request.Context(), req.Matrix)
	if err != nil {
		Error(c, errorCode(err), err.Error())
		return
	}

	Success(c, res)
}

// errorCode maps caller mistakes to CodeValidation and everything else to CodeError.
func errorCode(err error) int {
	switch {
	case errors.Is(err, volley.ErrInvalidMatrix),
		errors.Is(err, volley.ErrMatrixTooLarge),
		errors.Is(err, volley.ErrUnsupportedConfiguration),
		errors.Is(err, volley.ErrInvalidCoefficient),
		errors.Is(err, volley.ErrInfeasible):
		return CodeValidation
	default:
		return CodeError
	}
}
