package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/volley/types"
)

// NewTestLogger returns a logger that writes through t.Logf, so optimizer
// output only shows up for failing or verbose test runs.
//
// Key-value pairs are rendered as key=value; a dangling key is printed with
// the value "(MISSING)", as slog does.
func NewTestLogger(t testing.TB) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues) }
func (l *testLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues) }
func (l *testLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues) }
func (l *testLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues) }

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatal(format("FATAL", msg, keysAndValues))
}

func (l *testLogger) log(level, msg string, keysAndValues []any) {
	l.t.Helper()
	l.t.Log(format(level, msg, keysAndValues))
}

func format(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		var val any = "(MISSING)"
		if i+1 < len(keysAndValues) {
			val = keysAndValues[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], val)
	}

	return b.String()
}
