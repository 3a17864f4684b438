// Package solver implements the seeded heuristic backend: construction
// (Phase 1) and a time-bounded local-search improvement pass (Phase 2),
// producing assignments that satisfy every active constraint.
package solver

import (
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/metrics"
)

// Options configures a single Solve call. Every field has a safe zero
// value, so a caller can construct Options{} and get sensible defaults.
type Options struct {
	Tuning  config.SolverTuning
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// MaxImproveTime bounds Phase 2; zero skips improvement entirely.
	MaxImproveTime time.Duration
	// PlateauSize is the number of consecutive non-improving Phase 2
	// attempts that ends the improvement loop early.
	PlateauSize int

	// Cancel, if non-nil, is checked between occurrence placements and
	// between Phase 2 iterations; when closed the solver returns the best
	// solution found so far.
	Cancel <-chan struct{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) plateauSize() int {
	if o.PlateauSize > 0 {
		return o.PlateauSize
	}
	if o.Tuning.PlateauSize > 0 {
		return o.Tuning.PlateauSize
	}
	return 100
}

func (o Options) maxImproveTime() time.Duration {
	if o.MaxImproveTime > 0 {
		return o.MaxImproveTime
	}
	if o.Tuning.MaxImproveSeconds > 0 {
		return time.Duration(o.Tuning.MaxImproveSeconds * float64(time.Second))
	}
	return 0
}

func (o Options) cancelled() bool {
	if o.Cancel == nil {
		return false
	}
	select {
	case <-o.Cancel:
		return true
	default:
		return false
	}
}

// newSlotCache builds the in-process memoization cache for calendar
// availability lookups Phase 1 repeatedly performs against the same
// (resource, window) pairs across competing candidate placements.
func newSlotCache() *cache.Cache {
	return cache.New(5*time.Minute, 10*time.Minute)
}
