package types

// Logger is the structured logger used by the optimizer and its strategies.
//
// Methods take alternating key-value pairs, e.g.
// logger.Info("schedule built", "mode", "2x2", "periods", 3), which keeps
// the interface satisfiable by slog wrappers and zap.SugaredLogger alike.
//
// Strategies only log at Debug. The optimizer logs one Info line per run and
// Warn for infeasible runs; Error is reserved for rejected input.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs and terminates the process. Nothing in this module calls it.
	Fatal(msg string, keysAndValues ...any)
}
