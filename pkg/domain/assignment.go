package domain

import "time"

// Assignment is the placement of one occurrence of a SessionRequest onto a
// start time and a set of resources.
type Assignment struct {
	RequestID        string
	OccurrenceIndex  int
	StartTime        time.Time
	EndTime          time.Time
	AssignedResources map[string][]string // resource type -> ordered resource ids
	CohortID         string
}

// Validate checks construction-time invariants: timezone-aware bounds and
// EndTime strictly after StartTime.
func (a *Assignment) Validate() []ValidationIssue {
	var issues []ValidationIssue
	if !isTimezoneAware(a.StartTime) {
		issues = append(issues, issue("start_time", "timezone-aware datetime", a.StartTime))
	}
	if !isTimezoneAware(a.EndTime) {
		issues = append(issues, issue("end_time", "timezone-aware datetime", a.EndTime))
	}
	if !a.EndTime.After(a.StartTime) {
		issues = append(issues, issue("end_time", "end_time > start_time", a.EndTime))
	}
	return issues
}

// Window returns the assignment's interval as a TimeWindow.
func (a *Assignment) Window() TimeWindow {
	return TimeWindow{Start: a.StartTime, End: a.EndTime}
}

// HasResource reports whether resourceID appears under any resource type.
func (a *Assignment) HasResource(resourceID string) bool {
	for _, ids := range a.AssignedResources {
		for _, id := range ids {
			if id == resourceID {
				return true
			}
		}
	}
	return false
}

// AllResourceIDs flattens AssignedResources into a single slice.
func (a *Assignment) AllResourceIDs() []string {
	var out []string
	for _, ids := range a.AssignedResources {
		out = append(out, ids...)
	}
	return out
}
