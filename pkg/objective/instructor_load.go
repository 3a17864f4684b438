package objective

import (
	"github.com/edusched/core/pkg/domain"
	"github.com/samber/lo"
)

// BalanceInstructorLoad rewards an even distribution of session counts
// across instructors, using the same population-variance normalization as
// SpreadEvenlyAcrossTerm.
type BalanceInstructorLoad struct {
	W            float64
	InstructorType string // resource type key for instructors; defaults to "instructor"
}

func (o BalanceInstructorLoad) ObjectiveType() string { return "soft.balance_instructor_load" }

func (o BalanceInstructorLoad) Weight() float64 {
	if o.W == 0 {
		return 1.0
	}
	return o.W
}

func (o BalanceInstructorLoad) resourceType() string {
	if o.InstructorType == "" {
		return "instructor"
	}
	return o.InstructorType
}

func (o BalanceInstructorLoad) Score(solution []*domain.Assignment) float64 {
	if len(solution) == 0 {
		return 1.0
	}
	rt := o.resourceType()
	loads := make(map[string]int)
	for _, a := range solution {
		for _, id := range a.AssignedResources[rt] {
			loads[id]++
		}
	}
	if len(loads) == 0 {
		return 1.0
	}
	counts := lo.MapToSlice(loads, func(_ string, count int) float64 { return float64(count) })
	variance := populationVariance(counts)
	maxVariance := float64(len(solution)*len(solution)) / float64(len(loads))
	if maxVariance == 0 {
		return 1.0
	}
	score := 1 - variance/maxVariance
	if score < 0 {
		return 0
	}
	return score
}
