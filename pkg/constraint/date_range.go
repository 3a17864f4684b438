package constraint

import "github.com/edusched/core/pkg/domain"

// WithinDateRange enforces request.earliest_date <= start_time and
// end_time <= request.latest_date.
type WithinDateRange struct{}

func (WithinDateRange) ConstraintType() string { return "hard.within_date_range" }

func (WithinDateRange) Explain(v domain.Violation) string { return v.Message }

func (WithinDateRange) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	req, ok := ctx.Requests[assignment.RequestID]
	if !ok {
		return nil
	}
	if assignment.StartTime.Before(req.EarliestDate) || assignment.EndTime.After(req.LatestDate) {
		return &domain.Violation{
			ConstraintType:    "hard.within_date_range",
			AffectedRequestID: assignment.RequestID,
			Message:           "assignment falls outside the request's [earliest_date, latest_date] window",
		}
	}
	return nil
}
