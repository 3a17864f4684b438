package domain

import "time"

// Status is the terminal state of a solve call.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusNoSolution Status = "no_solution"
	StatusError      Status = "error"
)

// DiagnosticKind distinguishes a constraint violation from an internal
// error recorded in Result.Diagnostics.
type DiagnosticKind string

const (
	DiagnosticViolation DiagnosticKind = "violation"
	DiagnosticError     DiagnosticKind = "error"
)

// Diagnostic is either a Violation or an internal-error note surfaced
// alongside a Result so a caller can tell "we couldn't fit everything"
// apart from "the solver hit a bug".
type Diagnostic struct {
	ID      string
	Kind    DiagnosticKind
	Violation *Violation
	Message string
}

// Result is the solver's output: status, assignments, the occurrences it
// could not place, timing, and diagnostics.
type Result struct {
	Status               Status
	Assignments          []Assignment
	UnscheduledRequestIDs []string
	SolverTimeMs         float64
	Iterations           int
	BackendUsed          string
	Seed                 uint64
	Diagnostics          []Diagnostic
}

// ResultJSON is the wire shape for consumers outside the core (HTTP
// surface, CLI). Result itself carries richer Go types (time.Time, typed
// enums); ToJSON renders the serializable shape.
type ResultJSON struct {
	Status                string                 `json:"status"`
	Assignments           []AssignmentJSON       `json:"assignments"`
	UnscheduledRequestIDs []string               `json:"unscheduled_requests"`
	SolverTimeMs          float64                `json:"solver_time_ms"`
	Iterations            int                    `json:"iterations"`
	BackendUsed           string                 `json:"backend_used"`
	Seed                  uint64                 `json:"seed"`
	Diagnostics           []map[string]any       `json:"diagnostics"`
}

// AssignmentJSON is the ISO-8601-with-offset wire shape of an Assignment.
type AssignmentJSON struct {
	RequestID         string              `json:"request_id"`
	OccurrenceIndex   int                 `json:"occurrence_index"`
	StartTime         string              `json:"start_time"`
	EndTime           string              `json:"end_time"`
	AssignedResources map[string][]string `json:"assigned_resources"`
	CohortID          string              `json:"cohort_id"`
}

// ToJSON renders Result into the §6 wire shape.
func (r *Result) ToJSON() ResultJSON {
	out := ResultJSON{
		Status:                string(r.Status),
		UnscheduledRequestIDs: r.UnscheduledRequestIDs,
		SolverTimeMs:          r.SolverTimeMs,
		Iterations:            r.Iterations,
		BackendUsed:           r.BackendUsed,
		Seed:                  r.Seed,
	}
	for _, a := range r.Assignments {
		out.Assignments = append(out.Assignments, AssignmentJSON{
			RequestID:         a.RequestID,
			OccurrenceIndex:   a.OccurrenceIndex,
			StartTime:         a.StartTime.Format(time.RFC3339),
			EndTime:           a.EndTime.Format(time.RFC3339),
			AssignedResources: a.AssignedResources,
			CohortID:          a.CohortID,
		})
	}
	for _, d := range r.Diagnostics {
		entry := map[string]any{"kind": string(d.Kind), "message": d.Message}
		if d.Violation != nil {
			entry["constraint_type"] = d.Violation.ConstraintType
			entry["affected_request_id"] = d.Violation.AffectedRequestID
			if d.Violation.AffectedResourceID != "" {
				entry["affected_resource_id"] = d.Violation.AffectedResourceID
			}
		}
		out.Diagnostics = append(out.Diagnostics, entry)
	}
	return out
}
