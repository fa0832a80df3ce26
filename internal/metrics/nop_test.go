package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/volley/types"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	require.NotNil(t, m)

	var collector types.MetricsCollector = m

	require.NotPanics(t, func() {
		collector.RecordOptimization("1x1", "feasible", 0.01)
		collector.RecordOptimization("2x2", "infeasible", 0)
		collector.RecordSchedulePeriods("2x2", 2)
		collector.RecordTotalPower("1x1", 27.5)
		collector.RecordCacheLookup(true)
		collector.RecordCacheLookup(false)
	})
}
