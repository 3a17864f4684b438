package domain

import "time"

// SessionRequest describes one course's scheduling need: how long each
// occurrence runs, how many occurrences are needed, the window they must
// fall in, and what resources each occurrence requires.
type SessionRequest struct {
	ID                 string
	Duration           time.Duration
	NumberOfOccurrences int
	EarliestDate       time.Time
	LatestDate         time.Time
	CohortID           string
	Modality           Modality
	EnrollmentCount    int
	MinCapacity        *int // absent means unset, distinct from a legitimate 0
	MaxCapacity        *int

	// DayRequirements maps a weekday to the ordered list of resource-type
	// tags required on that day. A day absent from this map is unconstrained
	// by DaySpecificResourceRequirement.
	DayRequirements map[Weekday][]string

	// RequiredResources lists, per resource type, how many resources of
	// that type are needed and the predicate each must satisfy.
	RequiredResources []ResourceRequirement
}

// Validate checks construction-time invariants and reports every defect
// found, not just the first.
func (r *SessionRequest) Validate() []ValidationIssue {
	var issues []ValidationIssue

	if r.ID == "" {
		issues = append(issues, issue("id", "non-empty string", r.ID))
	}
	if !isTimezoneAware(r.EarliestDate) {
		issues = append(issues, issue("earliest_date", "timezone-aware datetime", r.EarliestDate))
	}
	if !isTimezoneAware(r.LatestDate) {
		issues = append(issues, issue("latest_date", "timezone-aware datetime", r.LatestDate))
	}
	if isTimezoneAware(r.EarliestDate) && isTimezoneAware(r.LatestDate) && r.EarliestDate.After(r.LatestDate) {
		issues = append(issues, issue("earliest_date", "earliest_date <= latest_date", r.EarliestDate))
	}
	if r.Duration <= 0 {
		issues = append(issues, issue("duration", "positive duration", r.Duration))
	}
	if r.NumberOfOccurrences < 1 {
		issues = append(issues, issue("number_of_occurrences", ">= 1", r.NumberOfOccurrences))
	}
	if r.EnrollmentCount < 0 {
		issues = append(issues, issue("enrollment_count", ">= 0", r.EnrollmentCount))
	}
	if r.MinCapacity != nil && *r.MinCapacity > r.EnrollmentCount {
		issues = append(issues, issue("min_capacity", "<= enrollment_count", *r.MinCapacity))
	}
	if r.MaxCapacity != nil && r.MinCapacity != nil && *r.MaxCapacity < *r.MinCapacity {
		issues = append(issues, issue("max_capacity", ">= min_capacity", *r.MaxCapacity))
	}
	if !r.Modality.valid() {
		issues = append(issues, issue("modality", `"in_person"|"online"|"hybrid"`, r.Modality))
	}

	return issues
}

// isTimezoneAware reports whether t carries a location other than the naive
// zero-value default. Go's time.Time is always "aware" in the sense of
// always having a *Location, so the practical rule worth enforcing here is:
// the caller must not pass the zero time. We treat time.Time{} as the naive
// sentinel.
func isTimezoneAware(t time.Time) bool {
	return !t.IsZero()
}

// RequirementFor returns the requirement entry for a resource type, if any.
func (r *SessionRequest) RequirementFor(resourceType string) (ResourceRequirement, bool) {
	for _, rr := range r.RequiredResources {
		if rr.ResourceType == resourceType {
			return rr, true
		}
	}
	return ResourceRequirement{}, false
}
