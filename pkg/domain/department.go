package domain

import (
	"regexp"
)

var preferredTimeFormat = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)-([01]\d|2[0-3]):([0-5]\d)$`)

// Department carries academic-organization metadata and scheduling
// preferences that feed departmental soft/hard rules.
type Department struct {
	ID                     string
	Name                   string
	Head                   string
	BuildingID             string
	Contact                string
	AvailabilityCalendarID string

	// PreferredTimes maps a weekday to an ordered list of "HH:MM-HH:MM"
	// windows, validated at construction.
	PreferredTimes     map[Weekday][]string
	BlackedOutDays     map[Weekday]bool
	PreferredRoomTypes []string
	RequiredAmenities  []string
}

// Validate checks construction-time invariants, including that every
// preferred_times entry is a well-formed "HH:MM-HH:MM" string.
func (d *Department) Validate() []ValidationIssue {
	var issues []ValidationIssue
	if d.ID == "" {
		issues = append(issues, issue("id", "non-empty string", d.ID))
	}
	if d.Name == "" {
		issues = append(issues, issue("name", "non-empty string", d.Name))
	}
	for _, windows := range d.PreferredTimes {
		for _, w := range windows {
			if !preferredTimeFormat.MatchString(w) {
				issues = append(issues, issue("preferred_times", `"HH:MM-HH:MM" 24-hour`, w))
			}
		}
	}
	return issues
}

// IsDayAvailable reports whether the department may be scheduled on day.
// A blacked-out day is never available; a day absent from PreferredTimes is
// available by default; otherwise availability follows whether any window
// was configured for that day.
func (d *Department) IsDayAvailable(day Weekday) bool {
	if d.BlackedOutDays[day] {
		return false
	}
	windows, has := d.PreferredTimes[day]
	if !has {
		return true
	}
	return len(windows) > 0
}
