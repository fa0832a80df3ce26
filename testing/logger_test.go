package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	require.Equal(t, "INFO run done", format("INFO", "run done", nil))
	require.Equal(t, "DEBUG solved mode=2x2 periods=3", format("DEBUG", "solved", []any{"mode", "2x2", "periods", 3}))
	require.Equal(t, "WARN odd key=(MISSING)", format("WARN", "odd", []any{"key"}))
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	logger.Debug("debug", "k", 1)
	logger.Info("info")
	logger.Warn("warn", "k")
	logger.Error("error", "err", "boom")
}
