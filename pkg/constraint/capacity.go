package constraint

import (
	"math"
	"sort"

	"github.com/edusched/core/pkg/domain"
)

// DefaultCapacityBuffer is the fractional headroom CapacityConstraint
// requires above max(enrollment_count, min_capacity) when no buffer is
// configured.
const DefaultCapacityBuffer = 0.10

// CapacityConstraint enforces that an in-person/hybrid request's primary
// classroom seats at least ceil(max(enrollment, min_capacity) * (1+buffer))
// students, and no more than max_capacity when one is set. Online requests
// never trigger this check. Resource types are free-form per spec.md §3, so
// the "classroom" is identified generically: the first assigned resource
// (in resource-type-then-id order) carrying a structured Capacity, not a
// hardcoded type-name match.
type CapacityConstraint struct {
	Buffer float64 // fraction, e.g. 0.10 for 10%
}

func (CapacityConstraint) ConstraintType() string { return "hard.classroom_capacity" }

func (CapacityConstraint) Explain(v domain.Violation) string { return v.Message }

func (c CapacityConstraint) buffer() float64 {
	if c.Buffer <= 0 {
		return DefaultCapacityBuffer
	}
	return c.Buffer
}

func (c CapacityConstraint) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	req, ok := ctx.Requests[assignment.RequestID]
	if !ok {
		return nil
	}
	if req.Modality == domain.ModalityOnline {
		return nil
	}
	classroomID, classroom, ok := findPrimaryClassroom(assignment, ctx)
	if !ok {
		return nil
	}

	required := req.EnrollmentCount
	if req.MinCapacity != nil && *req.MinCapacity > required {
		required = *req.MinCapacity
	}
	if required == 0 {
		return nil
	}
	requiredWithBuffer := int(math.Ceil(float64(required) * (1 + c.buffer())))

	if *classroom.Capacity < requiredWithBuffer {
		return &domain.Violation{
			ConstraintType:     "hard.classroom_capacity",
			AffectedRequestID:  assignment.RequestID,
			AffectedResourceID: classroomID,
			Message:            "classroom capacity is insufficient for the enrolled cohort plus buffer",
		}
	}
	if req.MaxCapacity != nil && *classroom.Capacity > *req.MaxCapacity {
		return &domain.Violation{
			ConstraintType:     "hard.classroom_capacity",
			AffectedRequestID:  assignment.RequestID,
			AffectedResourceID: classroomID,
			Message:            "classroom capacity exceeds the request's max_capacity",
		}
	}
	return nil
}

// findPrimaryClassroom picks the assignment's primary classroom generically:
// the first assigned resource, scanned in sorted (resource-type, id) order
// for determinism, that carries a structured Capacity field. Resource types
// are free-form tags (spec.md §3), so this deliberately does not match
// against any particular type name such as "classroom" or "room".
func findPrimaryClassroom(assignment *domain.Assignment, ctx *domain.ConstraintContext) (string, *domain.Resource, bool) {
	types := make([]string, 0, len(assignment.AssignedResources))
	for rt := range assignment.AssignedResources {
		types = append(types, rt)
	}
	sort.Strings(types)
	for _, rt := range types {
		ids := append([]string(nil), assignment.AssignedResources[rt]...)
		sort.Strings(ids)
		for _, id := range ids {
			res, ok := ctx.Resources[id]
			if ok && res.Capacity != nil {
				return id, res, true
			}
		}
	}
	return "", nil, false
}
