package constraint

import "github.com/edusched/core/pkg/domain"

// NoOverlap enforces that a resource's concurrency_capacity is never
// exceeded: for resource r with capacity c, fewer than c assignments that
// overlap a candidate's interval may already list r.
type NoOverlap struct{}

func (NoOverlap) ConstraintType() string { return "hard.no_overlap" }

func (NoOverlap) Explain(v domain.Violation) string { return v.Message }

func (NoOverlap) Check(assignment *domain.Assignment, solution []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	window := assignment.Window()
	for _, resourceID := range assignment.AllResourceIDs() {
		res, ok := ctx.Resources[resourceID]
		if !ok {
			continue
		}
		count := 0
		for _, other := range solution {
			if other == assignment {
				continue
			}
			if !other.HasResource(resourceID) {
				continue
			}
			if window.Overlaps(other.Window()) {
				count++
			}
		}
		// adding the candidate itself occupies one more slot
		if count+1 > res.ConcurrencyCapacity {
			return &domain.Violation{
				ConstraintType:     "hard.no_overlap",
				AffectedRequestID:  assignment.RequestID,
				AffectedResourceID: resourceID,
				Message:            "resource " + resourceID + " exceeds concurrency capacity in overlapping interval",
			}
		}
	}
	return nil
}
