package solver

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusched/core/internal/rng"
	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/constraint"
	"github.com/edusched/core/pkg/domain"
)

// Solve runs the heuristic backend end to end: Phase 0 preparation, Phase 1
// seeded greedy construction, and an optional Phase 2 improvement pass,
// returning a Result with status, timing, and diagnostics populated.
// problem must already have passed Problem.Validate(); Solve does not
// re-validate it.
func Solve(problem *domain.Problem, seed uint64, opts Options) *domain.Result {
	start := time.Now()
	log := opts.logger()

	ctx, occurrences := prepare(problem, opts.Tuning)

	cons := newConstruction(ctx, opts.Tuning, seed, log, opts.cancelledFunc())
	cons.run(occurrences)

	occByID := make(map[string]*occurrence, len(occurrences))
	for _, occ := range occurrences {
		occByID[occ.id()] = occ
	}
	idOf := func(a *domain.Assignment) string {
		return a.RequestID + "#" + itoa(a.OccurrenceIndex)
	}

	solution := cons.solution
	unscheduled := cons.unscheduled
	iterations := cons.iterations

	if maxTime := opts.maxImproveTime(); maxTime > 0 {
		improveRand := rng.New(seed ^ improvementSaltConst)
		im := newImprovement(ctx, opts.Tuning, improveRand, cons.cache, problem.Objectives, log, opts.cancelledFunc(), maxTime, opts.plateauSize())
		solution, unscheduled = im.run(solution, unscheduled, occurrences, occByID, idOf)
	}

	elapsed := time.Since(start)

	diagnostics := make([]domain.Diagnostic, 0, len(cons.diagnostics))
	for i := range cons.diagnostics {
		v := cons.diagnostics[i]
		diagnostics = append(diagnostics, domain.Diagnostic{
			ID:        uuid.NewString(),
			Kind:      domain.DiagnosticViolation,
			Violation: &v,
			Message:   v.Message,
		})
	}

	status := domain.StatusSuccess
	if len(unscheduled) > 0 {
		status = domain.StatusNoSolution
	}

	result := &domain.Result{
		Status:                status,
		Assignments:           derefAssignments(solution),
		UnscheduledRequestIDs: unscheduled,
		SolverTimeMs:          float64(elapsed.Microseconds()) / 1000.0,
		Iterations:            iterations,
		BackendUsed:           "heuristic",
		Seed:                  seed,
		Diagnostics:           diagnostics,
	}

	if opts.Metrics != nil {
		opts.Metrics.ObserveSolve(string(status), "heuristic", elapsed.Seconds(), iterations)
		for i := range diagnostics {
			if diagnostics[i].Violation != nil {
				opts.Metrics.ObserveViolation(diagnostics[i].Violation.ConstraintType)
			}
		}
	}

	log.Info("solve finished",
		zap.String("status", string(status)),
		zap.Int("scheduled", len(solution)),
		zap.Int("unscheduled", len(unscheduled)),
		zap.Float64("solver_time_ms", result.SolverTimeMs),
	)

	return result
}

// improvementSaltConst decorrelates Phase 2's random draws from Phase 1's
// without depending on wall-clock time, keeping the whole solve
// deterministic for a fixed seed.
const improvementSaltConst uint64 = 0x9E3779B97F4A7C15

func derefAssignments(in []*domain.Assignment) []domain.Assignment {
	out := make([]domain.Assignment, len(in))
	for i, a := range in {
		out[i] = *a
	}
	return out
}

// Verify re-checks every assignment in result against problem's active
// constraints, returning any violation the construction/improvement passes
// may have let through. Callers use this instead of trusting Solve's own
// bookkeeping.
func Verify(problem *domain.Problem, tuning config.SolverTuning, result *domain.Result) []domain.Violation {
	active := buildActiveConstraints(problem, tuning)
	ctx := domain.NewConstraintContext(problem, active)
	solution := make([]*domain.Assignment, len(result.Assignments))
	for i := range result.Assignments {
		solution[i] = &result.Assignments[i]
	}
	return constraint.VerifySolution(solution, ctx)
}

// cancelledFunc adapts Options.cancelled (which reads the Cancel channel) to
// the func() bool construction/improvement expect.
func (o Options) cancelledFunc() func() bool {
	return func() bool { return o.cancelled() }
}
