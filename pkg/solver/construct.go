package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/edusched/core/internal/rng"
	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/constraint"
	"github.com/edusched/core/pkg/domain"
)

// construction runs Phase 1: seeded greedy placement of every occurrence in
// difficulty order, returning the committed solution, the occurrences left
// unscheduled, and the violations observed along the way (useful as
// diagnostics even though construction never raises on them).
type construction struct {
	ctx     *domain.ConstraintContext
	tuning  config.SolverTuning
	rand    *rng.Source
	cache   *slotCache
	log     *zap.Logger
	cancel  func() bool

	solution     []*domain.Assignment
	unscheduled  []string
	diagnostics  []domain.Violation
	iterations   int
}

func newConstruction(ctx *domain.ConstraintContext, tuning config.SolverTuning, seed uint64, log *zap.Logger, cancel func() bool) *construction {
	return &construction{
		ctx:    ctx,
		tuning: tuning,
		rand:   rng.New(seed),
		cache:  newCalendarCache(),
		log:    log,
		cancel: cancel,
	}
}

// quickConstraints is the reduced set checked incrementally while greedily
// assembling a tentative assignment's resources, before the full active set
// gets a final check.
func (c *construction) quickConstraints() []domain.Constraint {
	return []domain.Constraint{
		&constraint.NoOverlap{},
		&constraint.BlackoutDates{},
		&constraint.TimeBlockerConstraint{},
		&constraint.DaySpecificResourceRequirement{},
		&constraint.CapacityConstraint{Buffer: c.tuning.CapacityBuffer},
	}
}

func (c *construction) run(occurrences []*occurrence) {
	for _, occ := range occurrences {
		if c.cancel != nil && c.cancel() {
			c.log.Info("construction cancelled", zap.String("occurrence", occ.id()))
			return
		}
		c.iterations++
		if !c.placeOccurrence(occ) {
			c.unscheduled = append(c.unscheduled, occ.request.ID)
			c.log.Debug("occurrence left unscheduled", zap.String("occurrence", occ.id()))
		}
	}
}

func (c *construction) placeOccurrence(occ *occurrence) bool {
	starts := shuffledCopy(c.rand, occ.candidateStarts)
	for _, start := range starts {
		end := start.Add(occ.request.Duration)
		tentative := &domain.Assignment{
			RequestID:         occ.request.ID,
			OccurrenceIndex:   occ.index,
			StartTime:         start,
			EndTime:           end,
			AssignedResources: map[string][]string{},
			CohortID:          occ.request.CohortID,
		}

		if !c.assignResources(occ, tentative) {
			continue
		}

		if v := constraint.CheckFirst(tentative, c.solution, c.ctx); v != nil {
			c.diagnostics = append(c.diagnostics, *v)
			continue
		}

		c.solution = append(c.solution, tentative)
		return true
	}
	return false
}

// assignResources greedily fills every required resource type on tentative,
// shuffling each type's candidate pool and keeping only ids that pass the
// quick constraint subset against the partial solution plus what has been
// chosen so far for this same tentative assignment.
func (c *construction) assignResources(occ *occurrence, tentative *domain.Assignment) bool {
	quick := c.quickConstraints()
	for _, rr := range occ.request.RequiredResources {
		pool := shuffledStrings(c.rand, occ.candidateRes[rr.ResourceType])
		chosen := make([]string, 0, rr.Count)
		for _, id := range pool {
			if len(chosen) >= rr.Count {
				break
			}
			if !c.cache.available(c.ctx, id, tentative.StartTime, tentative.EndTime) {
				continue
			}
			tentative.AssignedResources[rr.ResourceType] = append(chosen, id)
			if v := firstViolation(quick, tentative, c.solution, c.ctx); v != nil {
				c.diagnostics = append(c.diagnostics, *v)
				tentative.AssignedResources[rr.ResourceType] = chosen
				continue
			}
			chosen = append(chosen, id)
			tentative.AssignedResources[rr.ResourceType] = chosen
		}
		if len(chosen) < rr.Count {
			return false
		}
	}
	return true
}

func firstViolation(constraints []domain.Constraint, a *domain.Assignment, solution []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	for _, con := range constraints {
		if v := con.Check(a, solution, ctx); v != nil {
			return v
		}
	}
	return nil
}

func shuffledCopy(r *rng.Source, items []time.Time) []time.Time {
	idx := r.ShuffledIndices(len(items))
	out := make([]time.Time, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

func shuffledStrings(r *rng.Source, items []string) []string {
	idx := r.ShuffledIndices(len(items))
	out := make([]string, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
