package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/edusched/core/internal/rng"
	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/domain"
)

// improvement runs Phase 2: a time-bounded local-search pass that attempts
// to schedule remaining unscheduled occurrences, or re-place a scheduled one
// into another candidate start time, accepting a move only when it strictly
// improves the aggregate objective score (or newly schedules an occurrence)
// without introducing a violation. No pairwise swap of two scheduled
// occurrences is attempted.
type improvement struct {
	ctx        *domain.ConstraintContext
	tuning     config.SolverTuning
	rand       *rng.Source
	cache      *slotCache
	objectives []domain.Objective
	log        *zap.Logger
	cancel     func() bool
	deadline   time.Time
	plateau    int
}

func newImprovement(ctx *domain.ConstraintContext, tuning config.SolverTuning, rand *rng.Source, cache *slotCache, objectives []domain.Objective, log *zap.Logger, cancel func() bool, maxTime time.Duration, plateau int) *improvement {
	im := &improvement{
		ctx: ctx, tuning: tuning, rand: rand, cache: cache,
		objectives: objectives, log: log, cancel: cancel, plateau: plateau,
	}
	if maxTime > 0 {
		im.deadline = timeNow().Add(maxTime)
	}
	return im
}

// timeNow is Phase 2's only wall-clock read; it is never reached when no
// improvement budget is set (Phase 2 skipped entirely). Wall-clock budgeting is the one place real time enters the solver, since
// it bounds an external resource (caller patience), not a scheduling
// decision.
func timeNow() time.Time { return time.Now() }

func (im *improvement) deadlinePassed() bool {
	return !im.deadline.IsZero() && timeNow().After(im.deadline)
}

// run attempts moves until the deadline, a plateau of non-improving
// attempts, or cancellation. occurrences is the Phase 0 difficulty-ordered
// slice (deterministic iteration order); occByID maps "requestID#index" to
// its precomputed candidates, built once in Phase 0.
func (im *improvement) run(solution []*domain.Assignment, unscheduled []string, occurrences []*occurrence, occByID map[string]*occurrence, idOf func(*domain.Assignment) string) ([]*domain.Assignment, []string) {
	if im.deadline.IsZero() {
		return solution, unscheduled
	}
	nonImproving := 0
	for !im.deadlinePassed() && nonImproving < im.plateau {
		if im.cancel != nil && im.cancel() {
			break
		}
		if len(unscheduled) > 0 && im.rand.Float64() < 0.5 {
			reqID := unscheduled[im.rand.Intn(len(unscheduled))]
			occ := firstOccurrenceFor(occurrences, reqID)
			if occ == nil {
				nonImproving++
				continue
			}
			c := &construction{ctx: im.ctx, tuning: im.tuning, rand: im.rand, cache: im.cache, log: im.log}
			c.solution = solution
			if c.placeOccurrence(occ) {
				solution = c.solution
				unscheduled = removeFirst(unscheduled, reqID)
				nonImproving = 0
				continue
			}
			nonImproving++
			continue
		}

		if len(solution) == 0 {
			nonImproving++
			continue
		}
		idx := im.rand.Intn(len(solution))
		if im.attemptReplacement(solution, idx, occByID, idOf) {
			nonImproving = 0
		} else {
			nonImproving++
		}
	}
	return solution, unscheduled
}

// attemptReplacement tries moving solution[idx] to a different candidate
// start time, accepting the move only if it does not violate any active
// constraint and strictly increases the aggregate objective score.
func (im *improvement) attemptReplacement(solution []*domain.Assignment, idx int, occByID map[string]*occurrence, idOf func(*domain.Assignment) string) bool {
	current := solution[idx]
	occ, ok := occByID[idOf(current)]
	if !ok || len(occ.candidateStarts) < 2 {
		return false
	}

	before := domain.AggregateScore(im.objectives, solution)

	newStart := occ.candidateStarts[im.rand.Intn(len(occ.candidateStarts))]
	candidate := &domain.Assignment{
		RequestID:         current.RequestID,
		OccurrenceIndex:   current.OccurrenceIndex,
		StartTime:         newStart,
		EndTime:           newStart.Add(occ.request.Duration),
		AssignedResources: current.AssignedResources,
		CohortID:          current.CohortID,
	}

	rest := make([]*domain.Assignment, 0, len(solution)-1)
	for i, a := range solution {
		if i != idx {
			rest = append(rest, a)
		}
	}

	c := &construction{ctx: im.ctx, tuning: im.tuning, rand: im.rand, cache: im.cache, log: im.log}
	c.solution = rest
	candidate.AssignedResources = map[string][]string{}
	if !c.assignResources(occ, candidate) {
		return false
	}
	if v := firstViolationAll(im.ctx, candidate, rest); v != nil {
		return false
	}

	trial := append(append([]*domain.Assignment{}, rest...), candidate)
	after := domain.AggregateScore(im.objectives, trial)
	if after <= before {
		return false
	}

	solution[idx] = candidate
	return true
}

func firstViolationAll(ctx *domain.ConstraintContext, a *domain.Assignment, solution []*domain.Assignment) *domain.Violation {
	for _, con := range ctx.ActiveConstraints {
		if v := con.Check(a, solution, ctx); v != nil {
			return v
		}
	}
	return nil
}

// firstOccurrenceFor scans occurrences (Phase 0's stable difficulty order,
// not a map) so the choice of which occurrence represents an unscheduled
// request id is deterministic for a fixed seed.
func firstOccurrenceFor(occurrences []*occurrence, requestID string) *occurrence {
	for _, occ := range occurrences {
		if occ.request.ID == requestID {
			return occ
		}
	}
	return nil
}

func removeFirst(items []string, target string) []string {
	for i, v := range items {
		if v == target {
			return append(append([]string{}, items[:i]...), items[i+1:]...)
		}
	}
	return items
}
