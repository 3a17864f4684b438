package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSolverTuning(t *testing.T) {
	tuning := DefaultSolverTuning()
	require.Equal(t, 0.10, tuning.CapacityBuffer)
	require.Equal(t, 0, tuning.MaxPerDay)
	require.Equal(t, 0.0, tuning.MaxImproveSeconds)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	tuning, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultSolverTuning(), tuning)
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	t.Setenv("EDUSCHED_CAPACITY_BUFFER", "0.25")
	tuning, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 0.25, tuning.CapacityBuffer)
}
