package constraint

import "github.com/edusched/core/pkg/domain"

// AttributeMatch enforces that, for every required resource-type in a
// request's resource spec, the assigned resources satisfy the predicate
// via Resource.CanSatisfy and meet the required count.
type AttributeMatch struct{}

func (AttributeMatch) ConstraintType() string { return "hard.attribute_match" }

func (AttributeMatch) Explain(v domain.Violation) string { return v.Message }

func (AttributeMatch) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	req, ok := ctx.Requests[assignment.RequestID]
	if !ok {
		return nil
	}
	for _, rr := range req.RequiredResources {
		ids := assignment.AssignedResources[rr.ResourceType]
		matched := 0
		for _, id := range ids {
			res, ok := ctx.Resources[id]
			if !ok {
				continue
			}
			if res.CanSatisfy(rr.Predicate) {
				matched++
			}
		}
		if matched < rr.Count {
			return &domain.Violation{
				ConstraintType:    "hard.attribute_match",
				AffectedRequestID: assignment.RequestID,
				Message:           "insufficient matching resources of type " + rr.ResourceType,
			}
		}
	}
	return nil
}
