package solver

import (
	"sort"
	"time"

	"github.com/edusched/core/internal/rng"
	"github.com/edusched/core/pkg/config"
	"github.com/edusched/core/pkg/constraint"
	"github.com/edusched/core/pkg/domain"
)

// occurrence is one of a SessionRequest's number_of_occurrences meetings,
// expanded in Phase 0 and placed (or left unscheduled) in Phase 1.
type occurrence struct {
	request         *domain.SessionRequest
	index           int
	candidateStarts []time.Time
	candidateRes    map[string][]string // resource type -> candidate resource ids
}

func (o *occurrence) id() string {
	return o.request.ID + "#" + itoa(o.index)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// prepare runs Phase 0: build read-only id indexes, assemble the active
// constraint list, and compute per-occurrence candidate start times and
// candidate resource ids.
func prepare(problem *domain.Problem, tuning config.SolverTuning) (*domain.ConstraintContext, []*occurrence) {
	active := buildActiveConstraints(problem, tuning)
	ctx := domain.NewConstraintContext(problem, active)

	granularity := tightestGranularity(problem)

	var occurrences []*occurrence
	for i := range problem.Requests {
		req := &problem.Requests[i]
		starts := candidateStartTimes(req, granularity)
		candRes := candidateResources(req, problem.Resources)
		for occIdx := 0; occIdx < req.NumberOfOccurrences; occIdx++ {
			occurrences = append(occurrences, &occurrence{
				request:         req,
				index:           occIdx,
				candidateStarts: starts,
				candidateRes:    candRes,
			})
		}
	}

	sortByDifficulty(occurrences)
	return ctx, occurrences
}

func buildActiveConstraints(problem *domain.Problem, tuning config.SolverTuning) []domain.Constraint {
	active := constraint.BuiltIns(tuning.CapacityBuffer, tuning.MaxPerDay, tuning.MinGapBetween)
	active = append(active, problem.ExtraConstraints...)
	return active
}

func tightestGranularity(problem *domain.Problem) time.Duration {
	best := domain.DefaultGranularity
	for i := range problem.Calendars {
		g := problem.Calendars[i].Granularity()
		if g > 0 && g < best {
			best = g
		}
	}
	return best
}

// candidateStartTimes enumerates every granularity-aligned boundary within
// [earliest_date, latest_date] that leaves room for the request's duration.
func candidateStartTimes(req *domain.SessionRequest, granularity time.Duration) []time.Time {
	if granularity <= 0 {
		granularity = domain.DefaultGranularity
	}
	var out []time.Time
	last := req.LatestDate.Add(-req.Duration)
	for t := req.EarliestDate; !t.After(last); t = t.Add(granularity) {
		out = append(out, t)
	}
	return out
}

// candidateResources finds, for each required resource type, the set of
// resource ids whose attributes satisfy the requirement predicate. This is
// the per-request qualifying pool Phase 1 draws from and shuffles; it does
// not yet account for availability in a specific candidate window.
func candidateResources(req *domain.SessionRequest, resources []domain.Resource) map[string][]string {
	out := make(map[string][]string, len(req.RequiredResources))
	for _, rr := range req.RequiredResources {
		var ids []string
		for i := range resources {
			res := &resources[i]
			if res.ResourceType != rr.ResourceType {
				continue
			}
			if res.CanSatisfy(rr.Predicate) {
				ids = append(ids, res.ID)
			}
		}
		sort.Strings(ids)
		out[rr.ResourceType] = ids
	}
	return out
}

// sortByDifficulty orders occurrences by (fewer candidate slots, more
// required resource types, narrower [earliest,latest] window, stable id
// hash tie-break), so the hardest-to-place occurrences go first.
func sortByDifficulty(occurrences []*occurrence) {
	sort.Slice(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if len(a.candidateStarts) != len(b.candidateStarts) {
			return len(a.candidateStarts) < len(b.candidateStarts)
		}
		if len(a.request.RequiredResources) != len(b.request.RequiredResources) {
			return len(a.request.RequiredResources) > len(b.request.RequiredResources)
		}
		aWindow := a.request.LatestDate.Sub(a.request.EarliestDate)
		bWindow := b.request.LatestDate.Sub(b.request.EarliestDate)
		if aWindow != bWindow {
			return aWindow < bWindow
		}
		return rng.StableHash(a.id()) < rng.StableHash(b.id())
	})
}
