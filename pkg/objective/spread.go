// Package objective implements the soft-rule fabric: normalized [0,1]
// scoring functions combined by weight into an aggregate solution score.
package objective

import (
	"github.com/edusched/core/pkg/domain"
	"github.com/samber/lo"
)

// SpreadEvenlyAcrossTerm rewards a solution whose assignments are spread
// evenly across calendar dates: score = 1 - variance/max_variance, where
// max_variance assumes every session landed on a single day. Variance is
// taken over the days actually used, so a solution whose sessions all fall
// on one day scores 1.0.
type SpreadEvenlyAcrossTerm struct {
	W float64
}

func (o SpreadEvenlyAcrossTerm) ObjectiveType() string { return "soft.spread_evenly_across_term" }

func (o SpreadEvenlyAcrossTerm) Weight() float64 {
	if o.W == 0 {
		return 1.0
	}
	return o.W
}

func (o SpreadEvenlyAcrossTerm) Score(solution []*domain.Assignment) float64 {
	if len(solution) == 0 {
		return 1.0
	}
	byDay := lo.GroupBy(solution, func(a *domain.Assignment) string {
		return a.StartTime.Format("2006-01-02")
	})
	if len(byDay) == 0 {
		return 1.0
	}
	counts := make([]float64, 0, len(byDay))
	for _, group := range byDay {
		counts = append(counts, float64(len(group)))
	}
	variance := populationVariance(counts)
	maxVariance := float64(len(solution)*len(solution)) / float64(len(byDay))
	if maxVariance == 0 {
		return 1.0
	}
	score := 1 - variance/maxVariance
	if score < 0 {
		return 0
	}
	return score
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(values))
}
