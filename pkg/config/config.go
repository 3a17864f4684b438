// Package config loads solver tuning knobs from file/env so a CLI or
// service collaborator can override the core's defaults without a code
// change. The core itself never reads viper directly; solver.Options is
// the only thing it consumes.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// SolverTuning bundles the solver's tunable constants: the capacity buffer,
// the per-day limit, the minimum gap, the plateau size, and the Phase 2
// time budget.
type SolverTuning struct {
	CapacityBuffer    float64       `mapstructure:"capacity_buffer"`
	MaxPerDay         int           `mapstructure:"max_per_day"`
	MinGapBetween     time.Duration `mapstructure:"min_gap_between"`
	EveningThreshold  time.Duration `mapstructure:"evening_threshold"`
	PlateauSize       int           `mapstructure:"plateau_size"`
	MaxImproveSeconds float64       `mapstructure:"max_improve_seconds"`
}

// DefaultSolverTuning returns the solver's out-of-the-box tuning constants.
func DefaultSolverTuning() SolverTuning {
	return SolverTuning{
		CapacityBuffer:    0.10,
		MaxPerDay:         0, // disabled unless the caller opts in
		MinGapBetween:     0, // disabled unless the caller opts in
		EveningThreshold:  17 * time.Hour,
		PlateauSize:       100,
		MaxImproveSeconds: 0, // Phase 2 is skipped unless a budget is set
	}
}

// Load reads SolverTuning from the named config file (any format viper
// supports: yaml, json, toml, env) layered over DefaultSolverTuning, and
// additionally honors EDUSCHED_-prefixed environment variables.
func Load(path string) (SolverTuning, error) {
	tuning := DefaultSolverTuning()

	v := viper.New()
	v.SetEnvPrefix("EDUSCHED")
	v.AutomaticEnv()
	v.SetDefault("capacity_buffer", tuning.CapacityBuffer)
	v.SetDefault("max_per_day", tuning.MaxPerDay)
	v.SetDefault("min_gap_between", tuning.MinGapBetween)
	v.SetDefault("evening_threshold", tuning.EveningThreshold)
	v.SetDefault("plateau_size", tuning.PlateauSize)
	v.SetDefault("max_improve_seconds", tuning.MaxImproveSeconds)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return tuning, err
		}
	}

	if err := v.Unmarshal(&tuning); err != nil {
		return tuning, err
	}
	return tuning, nil
}
