package solver

import (
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/edusched/core/pkg/domain"
)

// slotCache memoizes Calendar.IsAvailable lookups for the lifetime of one
// solve call. Phase 1 evaluates many candidate (resource, window) pairs
// that repeat across competing slot/resource combinations for the same
// occurrence and across sibling occurrences of the same request; caching
// avoids re-walking each calendar's availability/blackout window lists.
type slotCache struct {
	c *cache.Cache
}

func newCalendarCache() *slotCache {
	return &slotCache{c: newSlotCache()}
}

func (s *slotCache) available(ctx *domain.ConstraintContext, resourceID string, start, end time.Time) bool {
	cal, ok := ctx.ResourceCalendar(resourceID)
	if !ok {
		return true
	}
	key := resourceID + "|" + strconv.FormatInt(start.Unix(), 10) + "|" + strconv.FormatInt(end.Unix(), 10)
	if v, found := s.c.Get(key); found {
		return v.(bool)
	}
	result := cal.IsAvailable(start, end)
	s.c.SetDefault(key, result)
	return result
}
