// Package backend implements the solve entry point: validation, backend
// selection (auto/heuristic/ortools), and a single-retry fallback
// discipline. It gathers what would otherwise be two near-duplicate
// dispatch paths into one.
package backend

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edusched/core/internal/rng"
	"github.com/edusched/core/pkg/domain"
	"github.com/edusched/core/pkg/solver"
)

// Backend is anything capable of turning a validated Problem into a Result.
// The heuristic backend is built in; others (ortools) register themselves
// under a name and are looked up by it.
type Backend interface {
	Name() string
	Solve(problem *domain.Problem, seed uint64, opts solver.Options) (*domain.Result, error)
}

// heuristicBackend adapts solver.Solve, which never errors, to the Backend
// interface's (Result, error) shape.
type heuristicBackend struct{}

func (heuristicBackend) Name() string { return "heuristic" }

func (heuristicBackend) Solve(problem *domain.Problem, seed uint64, opts solver.Options) (*domain.Result, error) {
	return solver.Solve(problem, seed, opts), nil
}

// ortoolsStub stands in for an exact OR-Tools-backed backend. spec.md §1
// scopes the real implementation out; registering the name lets callers
// request "ortools" and get a clear MissingOptionalDependencyError instead
// of an unknown-backend error, matching the original's optional-dependency
// contract (original_source/src/edusched/core_api.py).
type ortoolsStub struct{}

func (ortoolsStub) Name() string { return "ortools" }

func (ortoolsStub) Solve(*domain.Problem, uint64, solver.Options) (*domain.Result, error) {
	return nil, &MissingOptionalDependencyError{Backend: "ortools"}
}

var registry = map[string]Backend{
	"heuristic": heuristicBackend{},
	"ortools":   ortoolsStub{},
}

// Register adds or replaces a named backend, letting a host process wire in
// a real exact solver without modifying this package.
func Register(b Backend) {
	registry[b.Name()] = b
}

// Request bundles everything Solve needs: the problem, the requested
// backend name ("auto" picks heuristic unless a non-stub exact backend has
// been registered, see resolveAuto), an optional seed, and whether to retry
// once on the heuristic backend after a backend-internal failure.
type Request struct {
	Problem  *domain.Problem
	Backend  string // "auto", "heuristic", "ortools", or any Register()'d name
	Seed     *uint64
	Fallback bool
	Options  solver.Options
}

// Solve is the single entry point spec.md §4.5 describes: validate, resolve
// a seed, dispatch to the requested backend, and retry once against the
// heuristic backend on any error from that backend when Fallback is set.
// Without a retry, a backend failure that is not already a BackendError or
// MissingOptionalDependencyError is returned wrapped in a BackendError. A
// ValidationError is always returned immediately and is never retried.
func Solve(req Request) (*domain.Result, error) {
	if issues := req.Problem.Validate(); len(issues) > 0 {
		return nil, newValidationError(issues)
	}

	name := req.Backend
	if name == "" || name == "auto" {
		name = resolveAuto()
	}

	b, ok := registry[name]
	if !ok {
		return nil, &BackendError{Backend: name, Err: fmt.Errorf("unknown backend %q", name)}
	}

	seed := resolveSeed(req.Seed)
	opts := req.Options
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	result, err := b.Solve(req.Problem, seed, opts)
	if err == nil {
		return result, nil
	}

	if !req.Fallback || name == "heuristic" {
		switch err.(type) {
		case *BackendError, *MissingOptionalDependencyError:
			return nil, err
		}
		return nil, &BackendError{Backend: name, Err: err}
	}

	opts.Logger.Warn("backend failed, falling back to heuristic",
		zap.String("backend", name), zap.Error(err))
	if opts.Metrics != nil {
		opts.Metrics.ObserveFallback()
	}
	fallbackResult, fallbackErr := registry["heuristic"].Solve(req.Problem, seed, opts)
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	return fallbackResult, nil
}

// resolveAuto picks "ortools" only when a real implementation has been
// Register()'d over the stub; otherwise it picks "heuristic". Checking
// identity against the stub value (rather than just the name) means a host
// that registers a genuine exact backend under the same name is honored.
func resolveAuto() string {
	if b, ok := registry["ortools"]; ok {
		if _, isStub := b.(ortoolsStub); !isStub {
			return "ortools"
		}
	}
	return "heuristic"
}

// resolveSeed returns the caller-supplied seed, or a fresh one drawn from a
// wall-clock-seeded source when unset. Wall-clock time is acceptable here
// only because this is the one place a seed itself is minted, not consumed;
// every downstream draw is deterministic given the returned value.
func resolveSeed(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}
	source := rng.New(uint64(time.Now().UnixNano()))
	return uint64(source.Intn(1 << 31))
}
