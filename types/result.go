package types

import "time"

// Result is the outcome of one optimizer run.
//
// A run that cannot produce any period is reported as infeasible rather than
// as an error: Feasible is false, Schedule is nil and Power is negative
// infinity. Callers must check Feasible before using Power.
type Result struct {
	// RunID uniquely identifies the run in logs and hooks.
	RunID string `json:"runId"`

	// Mode is the attack-limit configuration the run was solved for.
	Mode Mode `json:"mode"`

	// Schedule lists the attacked targets per emitted period.
	Schedule Schedule `json:"schedule"`

	// Power is the total effective firepower remaining after the schedule.
	Power float64 `json:"power"`

	// Feasible is false when no period could be scheduled.
	Feasible bool `json:"feasible"`

	// Cached is true when the result was served from the result cache.
	Cached bool `json:"cached"`

	// Duration is the wall time spent computing the result.
	Duration time.Duration `json:"duration"`
}

// TwoWaveResult holds a primal optimal permutation and its complement.
//
// Complement never repeats a (target, period) pairing used by Primal.
// Score is the sum of both waves on undegraded values.
type TwoWaveResult struct {
	Primal        Permutation `json:"primal"`
	Complement    Permutation `json:"complement"`
	PrimalSum     int64       `json:"primalSum"`
	ComplementSum int64       `json:"complementSum"`
	Score         int64       `json:"score"`
}
