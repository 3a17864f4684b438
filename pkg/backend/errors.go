package backend

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/edusched/core/pkg/domain"
)

// ValidationError means problem.Validate() found structural defects. It is
// raised before any backend runs and is never retried: a malformed Problem
// stays malformed regardless of which backend receives it. Issues carries
// the original ValidationIssue records; Err aggregates them (via multierr)
// into one error so a caller that only wants the message can just print it.
type ValidationError struct {
	Issues []domain.ValidationIssue
	Err    error
}

func newValidationError(issues []domain.ValidationIssue) *ValidationError {
	var combined error
	for _, is := range issues {
		combined = multierr.Append(combined, fmt.Errorf("%s", is.String()))
	}
	return &ValidationError{Issues: issues, Err: combined}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d issue(s): %v", len(e.Issues), e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BackendError wraps a failure internal to a specific backend, or an
// unknown backend name. Solve retries once against the heuristic backend
// when fallback is enabled. Panics inside a backend are not recovered.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %q failed: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// MissingOptionalDependencyError is returned by a backend that exists as a
// registered name but whose real implementation was not compiled in (the
// ortools stub). Solve treats it exactly like a BackendError for fallback
// purposes.
type MissingOptionalDependencyError struct {
	Backend string
}

func (e *MissingOptionalDependencyError) Error() string {
	return fmt.Sprintf("backend %q is not available in this build (optional dependency not linked)", e.Backend)
}

// InfeasibilityError is reserved for exact backends that can prove no
// solution exists. The heuristic backend never returns it; it reports
// status=no_solution with diagnostics instead.
type InfeasibilityError struct {
	Reason string
}

func (e *InfeasibilityError) Error() string {
	return fmt.Sprintf("problem is infeasible: %s", e.Reason)
}
