// Package constraint implements the hard-constraint fabric: the built-in
// rule library plus the uniform evaluation protocol the solver and the
// verification pass both drive.
package constraint

import (
	"time"

	"github.com/edusched/core/pkg/domain"
)

// CheckFirst evaluates ctx.ActiveConstraints in order and returns the first
// violation found, short-circuiting. Used during construction, where only
// "is this candidate placement legal" matters.
func CheckFirst(assignment *domain.Assignment, solution []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	for _, c := range ctx.ActiveConstraints {
		if v := c.Check(assignment, solution, ctx); v != nil {
			return v
		}
	}
	return nil
}

// CheckAll evaluates every active constraint and collects every violation,
// used during verification/diagnostics where a caller wants the full
// picture rather than the first failure.
func CheckAll(assignment *domain.Assignment, solution []*domain.Assignment, ctx *domain.ConstraintContext) []domain.Violation {
	var violations []domain.Violation
	for _, c := range ctx.ActiveConstraints {
		if v := c.Check(assignment, solution, ctx); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// VerifySolution runs CheckAll across every assignment in solution against
// itself (each assignment checked against the full solution it belongs to).
func VerifySolution(solution []*domain.Assignment, ctx *domain.ConstraintContext) []domain.Violation {
	var all []domain.Violation
	for _, a := range solution {
		all = append(all, CheckAll(a, solution, ctx)...)
	}
	return all
}

// BuiltIns returns the default ordered list of hard constraints. Order only
// affects which violation construction reports first, never feasibility.
func BuiltIns(capacityBuffer float64, maxPerDay int, minGap time.Duration) []domain.Constraint {
	return []domain.Constraint{
		&NoOverlap{},
		&BlackoutDates{},
		&WithinDateRange{},
		&MaxPerDay{Limit: maxPerDay},
		&MinGapBetweenOccurrences{MinGap: minGap},
		&AttributeMatch{},
		&CapacityConstraint{Buffer: capacityBuffer},
		&DaySpecificResourceRequirement{},
		&TimeBlockerConstraint{},
		&BuildingBlackoutConstraint{},
	}
}
