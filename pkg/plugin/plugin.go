// Package plugin implements the registration surface for custom
// constraints, objectives, and solver backends: metadata, a compatibility
// check, and a registry. pkg/solver does not read this registry; its
// active constraints are the built-ins plus Problem.ExtraConstraints.
package plugin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Type is the kind of capability a plugin provides.
type Type string

const (
	TypeConstraint Type = "constraint"
	TypeObjective  Type = "objective"
	TypeSolver     Type = "solver"
)

// Metadata describes a plugin: its identity, its declared compatibility
// range against the host version, and what kind of capability it provides.
type Metadata struct {
	ID            string // minted at Register time if empty
	Name          string
	Version       string
	Author        string
	Description   string
	PluginType    Type
	Compatibility string // e.g. ">=1.0.0,<2.0.0"
}

// Plugin is anything the registry can hold: it must describe itself and be
// able to validate its own readiness.
type Plugin interface {
	Describe() Metadata
	Validate() bool
}

// HostVersion is the version new plugins' Compatibility ranges are checked
// against. Exported so a host process can pin its own release version.
var HostVersion = "1.0.0"

// Registry holds registered plugins, keyed by (type, name); duplicates fail
// fast.
type Registry struct {
	mu      sync.Mutex
	plugins map[Type]map[string]Plugin
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[Type]map[string]Plugin)}
}

// Register adds p to the registry after validating its metadata,
// compatibility range, and Validate() hook. Registering the same
// (type, name) twice is an error.
func (r *Registry) Register(p Plugin) error {
	meta := p.Describe()
	if meta.Name == "" {
		return fmt.Errorf("plugin metadata: name must be non-empty")
	}
	if meta.PluginType != TypeConstraint && meta.PluginType != TypeObjective && meta.PluginType != TypeSolver {
		return fmt.Errorf("plugin %q: unknown plugin_type %q", meta.Name, meta.PluginType)
	}
	if meta.Compatibility != "" {
		ok, err := satisfiesRange(HostVersion, meta.Compatibility)
		if err != nil {
			return fmt.Errorf("plugin %q: invalid compatibility range %q: %w", meta.Name, meta.Compatibility, err)
		}
		if !ok {
			return fmt.Errorf("plugin %q: host version %s is not within compatibility range %q", meta.Name, HostVersion, meta.Compatibility)
		}
	}
	if !p.Validate() {
		return fmt.Errorf("plugin %q: failed self-validation", meta.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plugins[meta.PluginType] == nil {
		r.plugins[meta.PluginType] = make(map[string]Plugin)
	}
	if _, exists := r.plugins[meta.PluginType][meta.Name]; exists {
		return fmt.Errorf("plugin %q of type %q already registered", meta.Name, meta.PluginType)
	}
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	r.plugins[meta.PluginType][meta.Name] = p
	return nil
}

// Lookup finds a registered plugin by type and name.
func (r *Registry) Lookup(t Type, name string) (Plugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byName, ok := r.plugins[t]
	if !ok {
		return nil, false
	}
	p, ok := byName[name]
	return p, ok
}

// All returns every registered plugin of the given type.
func (r *Registry) All(t Type) []Plugin {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Plugin, 0, len(r.plugins[t]))
	for _, p := range r.plugins[t] {
		out = append(out, p)
	}
	return out
}

var semverRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// satisfiesRange checks version against a comma-separated list of
// ">=x.y.z" / "<x.y.z" / "<=x.y.z" / ">x.y.z" clauses, the compatibility
// range syntax shown in original_source/src/edusched/plugins/template.py
// (">=0.1.0"). No example repo in the retrieval pack carries a semver-range
// library, so this is a small, deliberately narrow parser rather than an
// unused dependency (see DESIGN.md).
func satisfiesRange(version, rangeExpr string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, err
	}
	for _, clause := range strings.Split(rangeExpr, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		op, verStr := splitOperator(clause)
		bound, err := parseSemver(verStr)
		if err != nil {
			return false, err
		}
		if !compare(v, op, bound) {
			return false, nil
		}
	}
	return true, nil
}

func splitOperator(clause string) (string, string) {
	for _, op := range []string{">=", "<=", ">", "<", "=="} {
		if strings.HasPrefix(clause, op) {
			return op, strings.TrimSpace(strings.TrimPrefix(clause, op))
		}
	}
	return "==", clause
}

type semver struct{ major, minor, patch int }

func parseSemver(s string) (semver, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return semver{}, fmt.Errorf("invalid semver %q", s)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return semver{major, minor, patch}, nil
}

func (a semver) cmp(b semver) int {
	if a.major != b.major {
		return a.major - b.major
	}
	if a.minor != b.minor {
		return a.minor - b.minor
	}
	return a.patch - b.patch
}

func compare(v semver, op string, bound semver) bool {
	c := v.cmp(bound)
	switch op {
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	default:
		return c == 0
	}
}
