package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekdayFromTime(t *testing.T) {
	// time.Sunday == 0, time.Monday == 1 in the standard library.
	require.Equal(t, Monday, WeekdayFromTime(int(time.Monday)))
	require.Equal(t, Sunday, WeekdayFromTime(int(time.Sunday)))
	require.Equal(t, Saturday, WeekdayFromTime(int(time.Saturday)))
}

func TestWeekdayString(t *testing.T) {
	require.Equal(t, "Monday", Monday.String())
	require.Equal(t, "InvalidWeekday", Weekday(99).String())
}

func TestAggregateScore(t *testing.T) {
	type fixedObjective struct {
		w, s float64
	}
	a := fixedObjective{w: 2.0, s: 0.5}
	b := fixedObjective{w: 1.0, s: 1.0}

	objectives := []Objective{
		stubObjective{weight: a.w, score: a.s},
		stubObjective{weight: b.w, score: b.s},
	}
	require.Equal(t, 2.0, AggregateScore(objectives, nil))
}

type stubObjective struct {
	weight float64
	score  float64
}

func (s stubObjective) Score([]*Assignment) float64 { return s.score }
func (s stubObjective) Weight() float64              { return s.weight }
func (s stubObjective) ObjectiveType() string        { return "stub" }
