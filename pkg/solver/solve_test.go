package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/domain"
)

func singleRoomProblem() *domain.Problem {
	capacity := 30
	loc := time.UTC
	earliest := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	latest := time.Date(2024, 1, 2, 0, 0, 0, 0, loc)
	return &domain.Problem{
		Requests: []domain.SessionRequest{{
			ID:                  "r1",
			Duration:            time.Hour,
			NumberOfOccurrences: 1,
			EarliestDate:        earliest,
			LatestDate:          latest,
			Modality:            domain.ModalityInPerson,
			EnrollmentCount:     20,
			RequiredResources: []domain.ResourceRequirement{
				{ResourceType: "room", Count: 1},
			},
		}},
		Resources: []domain.Resource{{
			ID:                  "room_1",
			ResourceType:        "room",
			ConcurrencyCapacity: 1,
			Capacity:            &capacity,
			AvailabilityCalendarID: "cal_1",
		}},
		Calendars: []domain.Calendar{{
			ID:       "cal_1",
			Location: loc,
			AvailabilityWindows: []domain.TimeWindow{
				{Start: time.Date(2024, 1, 1, 8, 0, 0, 0, loc), End: time.Date(2024, 1, 1, 18, 0, 0, 0, loc)},
			},
		}},
	}
}

// TestSolveSingleRoomSingleSession covers scenario S1: single room, single session.
func TestSolveSingleRoomSingleSession(t *testing.T) {
	p := singleRoomProblem()
	result := Solve(p, 42, Options{Tuning: config.DefaultSolverTuning()})

	require.Equal(t, domain.StatusSuccess, result.Status)
	require.Len(t, result.Assignments, 1)
	a := result.Assignments[0]
	require.Equal(t, a.StartTime.Add(time.Hour), a.EndTime)
	require.Equal(t, []string{"room_1"}, a.AssignedResources["room"])
}

// TestSolveOverlapRejected covers scenario S2: two requests competing
// for the same single-capacity room in an identical one-hour window.
func TestSolveOverlapRejected(t *testing.T) {
	p := singleRoomProblem()
	loc := time.UTC
	narrowStart := time.Date(2024, 1, 1, 9, 0, 0, 0, loc)
	narrowEnd := narrowStart.Add(time.Hour)
	p.Requests[0].EarliestDate = narrowStart
	p.Requests[0].LatestDate = narrowEnd
	second := p.Requests[0]
	second.ID = "r2"
	p.Requests = append(p.Requests, second)

	result := Solve(p, 42, Options{Tuning: config.DefaultSolverTuning()})

	require.Equal(t, domain.StatusNoSolution, result.Status)
	require.Len(t, result.UnscheduledRequestIDs, 1)
}

// TestSolveCapacityInsufficient covers scenario S3: enrollment exceeds every candidate room's buffered capacity.
func TestSolveCapacityInsufficient(t *testing.T) {
	p := singleRoomProblem()
	p.Requests[0].EnrollmentCount = 40

	result := Solve(p, 42, Options{Tuning: config.DefaultSolverTuning()})

	require.Equal(t, domain.StatusNoSolution, result.Status)
	found := false
	for _, d := range result.Diagnostics {
		if d.Violation != nil && d.Violation.ConstraintType == "hard.classroom_capacity" {
			found = true
		}
	}
	require.True(t, found, "expected a hard.classroom_capacity diagnostic")
}

// TestSolveBlackoutAvoidance covers scenario S4: the solver must route around a calendar blackout window.
func TestSolveBlackoutAvoidance(t *testing.T) {
	p := singleRoomProblem()
	loc := time.UTC
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, loc)
	p.Requests[0].EarliestDate = day
	p.Requests[0].LatestDate = day.Add(24 * time.Hour)
	p.Calendars[0].AvailabilityWindows = []domain.TimeWindow{
		{Start: day.Add(8 * time.Hour), End: day.Add(18 * time.Hour)},
	}
	p.Calendars[0].BlackoutWindows = []domain.TimeWindow{
		{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
	}

	result := Solve(p, 42, Options{Tuning: config.DefaultSolverTuning()})

	require.Equal(t, domain.StatusSuccess, result.Status)
	blackout := domain.TimeWindow{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)}
	a := result.Assignments[0]
	require.False(t, a.Window().Overlaps(blackout))
}

// TestSolveDeterminism covers scenario S5: the same (problem, seed) pair must always produce the same result.
func TestSolveDeterminism(t *testing.T) {
	p := singleRoomProblem()
	first := Solve(p, 12345, Options{Tuning: config.DefaultSolverTuning()})
	second := Solve(p, 12345, Options{Tuning: config.DefaultSolverTuning()})

	require.Equal(t, first.Assignments, second.Assignments)
	require.Equal(t, first.UnscheduledRequestIDs, second.UnscheduledRequestIDs)
}
