package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_Kind(t *testing.T) {
	require.Equal(t, KindExact, ModeSingle.Kind())
	require.Equal(t, KindGreedy, ModePairs.Kind())
	require.Equal(t, KindUnsupported, Mode{PerPeriod: 1, PerTarget: 2}.Kind())
	require.Equal(t, KindUnsupported, Mode{PerPeriod: 3, PerTarget: 3}.Kind())
	require.Equal(t, KindUnsupported, Mode{}.Kind())
}

func TestStrategyKind_String(t *testing.T) {
	require.Equal(t, "exact", KindExact.String())
	require.Equal(t, "greedy", KindGreedy.String())
	require.Equal(t, "unsupported", KindUnsupported.String())
	require.Equal(t, "unsupported", StrategyKind(42).String())
}

func TestParseMode(t *testing.T) {
	t.Run("parses mxr notation", func(t *testing.T) {
		m, err := ParseMode("2x2")
		require.NoError(t, err)
		require.Equal(t, ModePairs, m)
		require.Equal(t, "2x2", m.String())
	})

	t.Run("parses unsupported but well-formed mode", func(t *testing.T) {
		m, err := ParseMode("3x1")
		require.NoError(t, err)
		require.Equal(t, KindUnsupported, m.Kind())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseMode("pairs")
		require.ErrorIs(t, err, ErrUnsupportedConfiguration)
	})

	t.Run("rejects trailing and malformed input", func(t *testing.T) {
		for _, s := range []string{
			"1x1garbage", "2x2x9", "2x", "x2", "", "1 x1", " 1x1", "+1x1", "01x1", "1X1",
		} {
			_, err := ParseMode(s)
			require.ErrorIs(t, err, ErrUnsupportedConfiguration, "input %q", s)
		}
	})

	t.Run("round-trips String", func(t *testing.T) {
		for _, m := range []Mode{ModeSingle, ModePairs, {PerPeriod: 3, PerTarget: 0}, {PerPeriod: -1, PerTarget: 2}} {
			parsed, err := ParseMode(m.String())
			require.NoError(t, err)
			require.Equal(t, m, parsed)
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	allErrors := []error{
		ErrInvalidMatrix,
		ErrMatrixTooLarge,
		ErrInvalidCoefficient,
		ErrUnsupportedConfiguration,
		ErrInvalidLimits,
		ErrInvalidSchedule,
		ErrInvalidConfig,
		ErrInfeasible,
		ErrSourceUnavailable,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i == j {
				require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
			} else {
				require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
			}
		}
	}
}
