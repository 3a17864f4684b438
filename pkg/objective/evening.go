package objective

import (
	"time"

	"github.com/edusched/core/pkg/domain"
)

// DefaultEveningThreshold is the local time-of-day at and after which a
// session counts as an evening session.
const DefaultEveningThreshold = 17 * time.Hour

// MinimizeEveningSessions penalizes sessions starting at or after a
// configurable evening threshold (default 17:00 local). max_penalty_bound
// equals |solution|, so an all-evening solution scores 0: a hard step
// curve, kept unsmoothed rather than softened.
type MinimizeEveningSessions struct {
	W         float64
	Threshold time.Duration // offset from local midnight; zero means DefaultEveningThreshold
}

func (o MinimizeEveningSessions) ObjectiveType() string { return "soft.minimize_evening_sessions" }

func (o MinimizeEveningSessions) Weight() float64 {
	if o.W == 0 {
		return 1.0
	}
	return o.W
}

func (o MinimizeEveningSessions) threshold() time.Duration {
	if o.Threshold == 0 {
		return DefaultEveningThreshold
	}
	return o.Threshold
}

func (o MinimizeEveningSessions) Score(solution []*domain.Assignment) float64 {
	if len(solution) == 0 {
		return 1.0
	}
	threshold := o.threshold()
	evening := 0
	for _, a := range solution {
		start := a.StartTime
		midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		if start.Sub(midnight) >= threshold {
			evening++
		}
	}
	score := 1 - float64(evening)/float64(len(solution))
	if score < 0 {
		return 0
	}
	return score
}
