package volley

import (
	"log/slog"

	"github.com/arloliu/volley/internal/logging"
)

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
//
// A nil logger falls back to slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return logging.NewSlogDefault()
	}

	return logging.NewSlog(l)
}
