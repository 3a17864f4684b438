package constraint

import "github.com/edusched/core/pkg/domain"

// BlackoutDates rejects an assignment whose interval overlaps any blackout
// of an assigned resource's calendar, or a building-wide blackout for the
// resource's building.
type BlackoutDates struct{}

func (BlackoutDates) ConstraintType() string { return "hard.blackout_date" }

func (BlackoutDates) Explain(v domain.Violation) string { return v.Message }

func (BlackoutDates) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	window := domain.TimeWindow{Start: assignment.StartTime, End: assignment.EndTime}
	for _, resourceID := range assignment.AllResourceIDs() {
		if cal, ok := ctx.ResourceCalendar(resourceID); ok {
			for _, b := range cal.BlackoutWindows {
				if window.Overlaps(b) {
					return &domain.Violation{
						ConstraintType:     "hard.blackout_date",
						AffectedRequestID:  assignment.RequestID,
						AffectedResourceID: resourceID,
						Message:            "assignment overlaps a blackout window on the resource's calendar",
					}
				}
			}
		}
		if b, ok := ctx.ResourceBuilding(resourceID); ok {
			for _, bw := range b.BlackoutWindows {
				if window.Overlaps(bw) {
					return &domain.Violation{
						ConstraintType:     "hard.blackout_date",
						AffectedRequestID:  assignment.RequestID,
						AffectedResourceID: resourceID,
						Message:            "assignment overlaps a building-wide blackout window",
					}
				}
			}
		}
	}
	return nil
}

// BuildingBlackoutConstraint rejects an assignment using any resource in a
// building during that building's blackout. This is distinct from
// BlackoutDates' building-blackout branch only in constraint_type, so that
// diagnostics can distinguish calendar-level from building-wide blackouts
// when both happen to be registered.
type BuildingBlackoutConstraint struct{}

func (BuildingBlackoutConstraint) ConstraintType() string { return "hard.building_blackout" }

func (BuildingBlackoutConstraint) Explain(v domain.Violation) string { return v.Message }

func (BuildingBlackoutConstraint) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	window := domain.TimeWindow{Start: assignment.StartTime, End: assignment.EndTime}
	for _, resourceID := range assignment.AllResourceIDs() {
		b, ok := ctx.ResourceBuilding(resourceID)
		if !ok {
			continue
		}
		for _, bw := range b.BlackoutWindows {
			if window.Overlaps(bw) {
				return &domain.Violation{
					ConstraintType:     "hard.building_blackout",
					AffectedRequestID:  assignment.RequestID,
					AffectedResourceID: resourceID,
					Message:            "building " + b.ID + " is blacked out during this interval",
				}
			}
		}
	}
	return nil
}
