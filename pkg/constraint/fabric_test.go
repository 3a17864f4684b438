package constraint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edusched/core/pkg/domain"
)

func newTestProblem() *domain.Problem {
	capacity := 30
	return &domain.Problem{
		Requests: []domain.SessionRequest{{
			ID:                  "req-1",
			Duration:            time.Hour,
			NumberOfOccurrences: 1,
			EarliestDate:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			LatestDate:          time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			Modality:            domain.ModalityInPerson,
			EnrollmentCount:     20,
			RequiredResources: []domain.ResourceRequirement{
				{ResourceType: "classroom", Count: 1},
			},
		}},
		Resources: []domain.Resource{{
			ID:                  "room-1",
			ResourceType:        "classroom",
			ConcurrencyCapacity: 1,
			Capacity:            &capacity,
		}},
	}
}

func TestNoOverlapRejectsDoubleBooking(t *testing.T) {
	p := newTestProblem()
	ctx := domain.NewConstraintContext(p, []domain.Constraint{&NoOverlap{}})

	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	existing := &domain.Assignment{
		RequestID:         "req-1",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		AssignedResources: map[string][]string{"classroom": {"room-1"}},
	}
	candidate := &domain.Assignment{
		RequestID:         "req-1",
		StartTime:         start.Add(30 * time.Minute),
		EndTime:           start.Add(90 * time.Minute),
		AssignedResources: map[string][]string{"classroom": {"room-1"}},
	}

	v := CheckFirst(candidate, []*domain.Assignment{existing}, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.no_overlap", v.ConstraintType)
}

func TestCapacityConstraintRejectsUndersizedRoom(t *testing.T) {
	p := newTestProblem()
	p.Requests[0].EnrollmentCount = 100
	ctx := domain.NewConstraintContext(p, []domain.Constraint{&CapacityConstraint{Buffer: DefaultCapacityBuffer}})

	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	candidate := &domain.Assignment{
		RequestID:         "req-1",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		AssignedResources: map[string][]string{"classroom": {"room-1"}},
	}

	v := CheckFirst(candidate, nil, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.classroom_capacity", v.ConstraintType)
}

func TestBuiltInsOrdering(t *testing.T) {
	active := BuiltIns(DefaultCapacityBuffer, 0, 0)
	require.NotEmpty(t, active)
	require.Equal(t, "hard.no_overlap", active[0].ConstraintType())
}

func TestVerifySolutionCleanSolutionHasNoViolations(t *testing.T) {
	p := newTestProblem()
	ctx := domain.NewConstraintContext(p, BuiltIns(DefaultCapacityBuffer, 0, 0))
	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	solution := []*domain.Assignment{{
		RequestID:         "req-1",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		AssignedResources: map[string][]string{"classroom": {"room-1"}},
	}}
	require.Empty(t, VerifySolution(solution, ctx))
}
