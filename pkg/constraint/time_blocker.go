package constraint

import "github.com/edusched/core/pkg/domain"

// TimeBlockerConstraint rejects an assignment whose start, end, or midpoint
// falls inside any registered institutional TimeBlocker interval.
type TimeBlockerConstraint struct {
	Blockers []domain.TimeBlocker
}

func (TimeBlockerConstraint) ConstraintType() string { return "hard.time_blocker" }

func (TimeBlockerConstraint) Explain(v domain.Violation) string { return v.Message }

func (t TimeBlockerConstraint) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	blockers := t.Blockers
	if blockers == nil && ctx.Problem != nil {
		blockers = ctx.Problem.TimeBlockers
	}
	mid := assignment.StartTime.Add(assignment.EndTime.Sub(assignment.StartTime) / 2)
	for i := range blockers {
		b := &blockers[i]
		if blocked, label := b.IsTimeBlocked(assignment.StartTime); blocked {
			return violationFor(assignment, label, "start_time")
		}
		if blocked, label := b.IsTimeBlocked(assignment.EndTime); blocked {
			return violationFor(assignment, label, "end_time")
		}
		if blocked, label := b.IsTimeBlocked(mid); blocked {
			return violationFor(assignment, label, "the session's midpoint")
		}
	}
	return nil
}

func violationFor(assignment *domain.Assignment, label, which string) *domain.Violation {
	return &domain.Violation{
		ConstraintType:    "hard.time_blocker",
		AffectedRequestID: assignment.RequestID,
		Message:           which + " conflicts with blocked interval " + label,
	}
}
