package constraint

import (
	"sort"

	"github.com/edusched/core/pkg/domain"
)

// DaySpecificResourceRequirement enforces that, on the weekday an
// assignment lands on, every resource-type it uses is listed in the
// request's day_requirements for that day, when that day is specified.
type DaySpecificResourceRequirement struct{}

func (DaySpecificResourceRequirement) ConstraintType() string { return "hard.day_specific_resource" }

func (DaySpecificResourceRequirement) Explain(v domain.Violation) string { return v.Message }

func (DaySpecificResourceRequirement) Check(assignment *domain.Assignment, _ []*domain.Assignment, ctx *domain.ConstraintContext) *domain.Violation {
	req, ok := ctx.Requests[assignment.RequestID]
	if !ok || len(req.DayRequirements) == 0 {
		return nil
	}
	day := domain.WeekdayFromTime(int(assignment.StartTime.Weekday()))
	required, specified := req.DayRequirements[day]
	if !specified {
		return nil
	}
	allowed := make(map[string]bool, len(required))
	for _, rt := range required {
		allowed[rt] = true
	}
	usedTypes := make([]string, 0, len(assignment.AssignedResources))
	for resourceType := range assignment.AssignedResources {
		usedTypes = append(usedTypes, resourceType)
	}
	sort.Strings(usedTypes)
	for _, resourceType := range usedTypes {
		if !allowed[resourceType] {
			return &domain.Violation{
				ConstraintType:    "hard.day_specific_resource",
				AffectedRequestID: assignment.RequestID,
				Message:           "resource type " + resourceType + " is not permitted on " + day.String() + " for this request",
			}
		}
	}
	return nil
}
