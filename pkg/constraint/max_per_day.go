package constraint

import "github.com/edusched/core/pkg/domain"

// MaxPerDay caps, per resource, the number of assignments landing on the
// same calendar day in that resource's calendar timezone (falling back to
// the assignment's own location when the resource has no calendar).
type MaxPerDay struct {
	Limit int // <= 0 disables the check
}

func (MaxPerDay) ConstraintType() string { return "hard.max_per_day" }

func (MaxPerDay) Explain(v domain.Violation) string { return v.Message }

func (m MaxPerDay) Check(assignment *domain.Assignment, solution []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	if m.Limit <= 0 {
		return nil
	}
	for _, resourceID := range assignment.AllResourceIDs() {
		loc := assignment.StartTime.Location()
		if cal, ok := ctx.ResourceCalendar(resourceID); ok && cal.Location != nil {
			loc = cal.Location
		}
		day := assignment.StartTime.In(loc).Format("2006-01-02")
		count := 1 // the candidate itself
		for _, other := range solution {
			if other == assignment || !other.HasResource(resourceID) {
				continue
			}
			if other.StartTime.In(loc).Format("2006-01-02") == day {
				count++
			}
		}
		if count > m.Limit {
			return &domain.Violation{
				ConstraintType:     "hard.max_per_day",
				AffectedRequestID:  assignment.RequestID,
				AffectedResourceID: resourceID,
				Message:            "resource " + resourceID + " exceeds its per-day assignment limit",
			}
		}
	}
	return nil
}
