package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeBlockerOneOffBlock(t *testing.T) {
	start := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	tb := &TimeBlocker{
		ID:    "winter-break",
		Label: "Winter Break",
		Blocks: []TimeWindow{
			{Start: start, End: start.AddDate(0, 0, 14)},
		},
	}

	blocked, label := tb.IsTimeBlocked(start.AddDate(0, 0, 5))
	require.True(t, blocked)
	require.Equal(t, "Winter Break", label)

	blocked, _ = tb.IsTimeBlocked(start.AddDate(0, 0, 20))
	require.False(t, blocked)
}

func TestTimeBlockerRecurringBlock(t *testing.T) {
	tb := &TimeBlocker{
		ID: "lunch",
		Recurring: []RecurringBlock{{
			Label:    "Lunch",
			Weekdays: map[Weekday]bool{Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true},
			StartTOD: 12 * time.Hour,
			EndTOD:   13 * time.Hour,
		}},
	}

	monday := time.Date(2026, 9, 7, 12, 30, 0, 0, time.UTC)
	blocked, label := tb.IsTimeBlocked(monday)
	require.True(t, blocked)
	require.Equal(t, "Lunch", label)

	saturday := time.Date(2026, 9, 12, 12, 30, 0, 0, time.UTC)
	blocked, _ = tb.IsTimeBlocked(saturday)
	require.False(t, blocked)
}
