package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAgainstProvidedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	require.NotNil(t, m)

	m.ObserveSolve("success", "heuristic", 0.5, 10)
	m.ObserveViolation("hard.no_overlap")
	m.ObserveFallback()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNilMetricsIsSafeNoOp(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveSolve("success", "heuristic", 0.1, 1)
		m.ObserveViolation("hard.no_overlap")
		m.ObserveFallback()
	})
}
