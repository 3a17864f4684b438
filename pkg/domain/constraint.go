package domain

// Violation is a structured record of a failed hard-constraint check.
type Violation struct {
	ConstraintType      string
	AffectedRequestID   string
	AffectedResourceID  string
	Message             string
}

// Constraint is the narrow capability every hard rule exposes. Built-ins
// and plugin-supplied constraints are interchangeable behind this
// interface; neither needs a shared base beyond it.
type Constraint interface {
	// Check reports a Violation if assignment, placed alongside solution,
	// breaks this rule. It returns nil when the rule does not apply or is
	// satisfied.
	Check(assignment *Assignment, solution []*Assignment, ctx *ConstraintContext) *Violation
	Explain(v Violation) string
	ConstraintType() string
}

// ConstraintContext carries the Problem plus id-indexed lookups built once
// per solve, so constraint checks never re-scan the Problem's slices.
type ConstraintContext struct {
	Problem *Problem

	Resources   map[string]*Resource
	Calendars   map[string]*Calendar
	Requests    map[string]*SessionRequest
	Buildings   map[string]*Building
	Departments map[string]*Department

	// ActiveConstraints is the ordered list the fabric evaluates in
	// sequence: built-ins first, then the Problem's declared extras. The
	// solver does not read the plugin registry when assembling it. Order
	// affects only which violation is reported first, never feasibility.
	ActiveConstraints []Constraint
}

// NewConstraintContext builds the id-indexed lookups for p once.
func NewConstraintContext(p *Problem, active []Constraint) *ConstraintContext {
	ctx := &ConstraintContext{
		Problem:           p,
		Resources:         make(map[string]*Resource, len(p.Resources)),
		Calendars:         make(map[string]*Calendar, len(p.Calendars)),
		Requests:          make(map[string]*SessionRequest, len(p.Requests)),
		Buildings:         make(map[string]*Building, len(p.Buildings)),
		Departments:       make(map[string]*Department, len(p.Departments)),
		ActiveConstraints: active,
	}
	for i := range p.Resources {
		ctx.Resources[p.Resources[i].ID] = &p.Resources[i]
	}
	for i := range p.Calendars {
		ctx.Calendars[p.Calendars[i].ID] = &p.Calendars[i]
	}
	for i := range p.Requests {
		ctx.Requests[p.Requests[i].ID] = &p.Requests[i]
	}
	for i := range p.Buildings {
		ctx.Buildings[p.Buildings[i].ID] = &p.Buildings[i]
	}
	for i := range p.Departments {
		ctx.Departments[p.Departments[i].ID] = &p.Departments[i]
	}
	return ctx
}

// ResourceBuilding looks up the Building owning a resource, if any.
func (c *ConstraintContext) ResourceBuilding(resourceID string) (*Building, bool) {
	r, ok := c.Resources[resourceID]
	if !ok || r.BuildingID == "" {
		return nil, false
	}
	b, ok := c.Buildings[r.BuildingID]
	return b, ok
}

// ResourceCalendar looks up the Calendar tied to a resource, if any.
func (c *ConstraintContext) ResourceCalendar(resourceID string) (*Calendar, bool) {
	r, ok := c.Resources[resourceID]
	if !ok || r.AvailabilityCalendarID == "" {
		return nil, false
	}
	cal, ok := c.Calendars[r.AvailabilityCalendarID]
	return cal, ok
}
