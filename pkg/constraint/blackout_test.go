package constraint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edusched/core/pkg/domain"
)

func TestBlackoutDatesRejectsCalendarBlackout(t *testing.T) {
	p := newTestProblem()
	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	p.Resources[0].AvailabilityCalendarID = "cal-1"
	p.Calendars = []domain.Calendar{{
		ID: "cal-1",
		BlackoutWindows: []domain.TimeWindow{
			{Start: start, End: start.Add(2 * time.Hour)},
		},
	}}
	ctx := domain.NewConstraintContext(p, []domain.Constraint{&BlackoutDates{}})

	candidate := &domain.Assignment{
		RequestID:         "req-1",
		StartTime:         start,
		EndTime:           start.Add(time.Hour),
		AssignedResources: map[string][]string{"classroom": {"room-1"}},
	}
	v := CheckFirst(candidate, nil, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.blackout_date", v.ConstraintType)
}

func TestMaxPerDayRejectsThirdAssignmentOnSameDay(t *testing.T) {
	p := newTestProblem()
	ctx := domain.NewConstraintContext(p, []domain.Constraint{&MaxPerDay{Limit: 2}})

	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	existing := []*domain.Assignment{
		{RequestID: "req-1", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour), AssignedResources: map[string][]string{"classroom": {"room-1"}}},
		{RequestID: "req-1", StartTime: day.Add(11 * time.Hour), EndTime: day.Add(12 * time.Hour), AssignedResources: map[string][]string{"classroom": {"room-1"}}},
	}
	candidate := &domain.Assignment{RequestID: "req-1", StartTime: day.Add(13 * time.Hour), EndTime: day.Add(14 * time.Hour), AssignedResources: map[string][]string{"classroom": {"room-1"}}}

	v := CheckFirst(candidate, existing, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.max_per_day", v.ConstraintType)
}

func TestMinGapBetweenOccurrencesRejectsTooClose(t *testing.T) {
	ctx := domain.NewConstraintContext(&domain.Problem{}, []domain.Constraint{&MinGapBetweenOccurrences{MinGap: 24 * time.Hour}})
	day := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	existing := &domain.Assignment{RequestID: "req-1", StartTime: day, EndTime: day.Add(time.Hour)}
	candidate := &domain.Assignment{RequestID: "req-1", StartTime: day.Add(2 * time.Hour), EndTime: day.Add(3 * time.Hour)}

	v := CheckFirst(candidate, []*domain.Assignment{existing}, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.min_gap_between_occurrences", v.ConstraintType)
}

func TestDaySpecificResourceRequirement(t *testing.T) {
	p := newTestProblem()
	monday := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC) // a Monday
	p.Requests[0].DayRequirements = map[domain.Weekday][]string{
		domain.Monday: {"classroom"},
	}
	ctx := domain.NewConstraintContext(p, []domain.Constraint{&DaySpecificResourceRequirement{}})

	candidate := &domain.Assignment{
		RequestID:         "req-1",
		StartTime:         monday,
		EndTime:           monday.Add(time.Hour),
		AssignedResources: map[string][]string{"lab_equipment": {"eq-1"}},
	}
	v := CheckFirst(candidate, nil, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.day_specific_resource", v.ConstraintType)
}

func TestTimeBlockerConstraintRejectsBlockedInterval(t *testing.T) {
	start := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	blockers := []domain.TimeBlocker{{
		ID:    "lunch",
		Label: "lunch break",
		Blocks: []domain.TimeWindow{
			{Start: start, End: start.Add(time.Hour)},
		},
	}}
	ctx := domain.NewConstraintContext(&domain.Problem{TimeBlockers: blockers}, []domain.Constraint{&TimeBlockerConstraint{}})

	candidate := &domain.Assignment{RequestID: "req-1", StartTime: start, EndTime: start.Add(30 * time.Minute)}
	v := CheckFirst(candidate, nil, ctx)
	require.NotNil(t, v)
	require.Equal(t, "hard.time_blocker", v.ConstraintType)
}
