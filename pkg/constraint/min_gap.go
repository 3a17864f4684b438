package constraint

import (
	"time"

	"github.com/edusched/core/pkg/domain"
)

// MinGapBetweenOccurrences enforces a minimum start-time distance between
// any two assignments sharing a request_id.
type MinGapBetweenOccurrences struct {
	MinGap time.Duration // <= 0 disables the check
}

func (MinGapBetweenOccurrences) ConstraintType() string { return "hard.min_gap_between_occurrences" }

func (MinGapBetweenOccurrences) Explain(v domain.Violation) string { return v.Message }

func (m MinGapBetweenOccurrences) Check(assignment *domain.Assignment, solution []*domain.Assignment, _ *domain.ConstraintContext) *domain.Violation {
	if m.MinGap <= 0 {
		return nil
	}
	for _, other := range solution {
		if other == assignment || other.RequestID != assignment.RequestID {
			continue
		}
		gap := assignment.StartTime.Sub(other.StartTime)
		if gap < 0 {
			gap = -gap
		}
		if gap < m.MinGap {
			return &domain.Violation{
				ConstraintType:    "hard.min_gap_between_occurrences",
				AffectedRequestID: assignment.RequestID,
				Message:           "occurrences of this request are scheduled closer together than the configured minimum gap",
			}
		}
	}
	return nil
}
