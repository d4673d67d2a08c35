package capability

import (
	"fmt"

	"go.uber.org/zap"
)

// Manager answers capability and agent lookup queries against an immutable
// catalog and matrix. All lookup structures are built in NewManager; nothing
// is mutated afterwards, so a Manager is safe for concurrent use without
// locking.
type Manager struct {
	defs      map[Type]*Definition
	catalog   []Definition // retains declaration order for deterministic filters
	hierarchy map[Type]Hierarchy

	// matrix keeps seed order; byRole is the same data keyed for O(1) lookup.
	matrix []RoleProfiles
	byRole map[AgentRole][]Profile

	logger *zap.Logger
}

// DefaultMinProficiency is the threshold AgentsWithCapability applies when
// the caller passes a non-positive one.
const DefaultMinProficiency = 0.5

// NewManager builds a Manager from the given catalog and matrix, validating
// both. It returns an error when a definition is duplicated, a parent/child/
// dependency reference points at an undefined capability, a parent/child edge
// is declared on only one side, a profile references an undefined capability,
// or a proficiency/confidence score falls outside [0, 1].
func NewManager(catalog []Definition, matrix []RoleProfiles, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		defs:      make(map[Type]*Definition, len(catalog)),
		catalog:   catalog,
		hierarchy: make(map[Type]Hierarchy, len(catalog)),
		matrix:    matrix,
		byRole:    make(map[AgentRole][]Profile, len(matrix)),
		logger:    logger.With(zap.String("component", "capability_manager")),
	}

	for i := range catalog {
		def := catalog[i]
		if def.Capability == "" {
			return nil, fmt.Errorf("catalog entry %d has no capability name", i)
		}
		if _, dup := m.defs[def.Capability]; dup {
			return nil, fmt.Errorf("capability %s defined twice", def.Capability)
		}
		if !def.Level.Valid() {
			return nil, fmt.Errorf("capability %s has unknown level %q", def.Capability, def.Level)
		}
		m.defs[def.Capability] = &catalog[i]
	}

	if err := m.validateReferences(catalog); err != nil {
		return nil, err
	}
	if err := m.validateMatrix(matrix); err != nil {
		return nil, err
	}

	for _, def := range catalog {
		m.hierarchy[def.Capability] = Hierarchy{
			Parents:      def.Parents,
			Children:     def.Children,
			Dependencies: def.Dependencies,
		}
	}
	for _, rp := range matrix {
		m.byRole[rp.Role] = rp.Profiles
	}

	m.logger.Debug("capability tables built",
		zap.Int("capabilities", len(m.defs)),
		zap.Int("roles", len(matrix)),
	)

	return m, nil
}

// NewDefaultManager builds a Manager from the built-in catalog and matrix.
// The built-in data always validates; a failure here is a programming error.
func NewDefaultManager(logger *zap.Logger) (*Manager, error) {
	return NewManager(DefaultCatalog(), DefaultMatrix(), logger)
}

func (m *Manager) validateReferences(catalog []Definition) error {
	for _, def := range catalog {
		for _, p := range def.Parents {
			other, ok := m.defs[p]
			if !ok {
				return fmt.Errorf("capability %s lists undefined parent %s", def.Capability, p)
			}
			if !containsType(other.Children, def.Capability) {
				return fmt.Errorf("capability %s lists parent %s, but %s does not list it as a child", def.Capability, p, p)
			}
		}
		for _, c := range def.Children {
			other, ok := m.defs[c]
			if !ok {
				return fmt.Errorf("capability %s lists undefined child %s", def.Capability, c)
			}
			if !containsType(other.Parents, def.Capability) {
				return fmt.Errorf("capability %s lists child %s, but %s does not list it as a parent", def.Capability, c, c)
			}
		}
		for _, d := range def.Dependencies {
			if _, ok := m.defs[d]; !ok {
				return fmt.Errorf("capability %s depends on undefined capability %s", def.Capability, d)
			}
		}
	}
	return nil
}

func (m *Manager) validateMatrix(matrix []RoleProfiles) error {
	seen := make(map[AgentRole]bool, len(matrix))
	for _, rp := range matrix {
		if rp.Role == "" {
			return fmt.Errorf("matrix entry has no role name")
		}
		if seen[rp.Role] {
			return fmt.Errorf("role %s appears twice in the matrix", rp.Role)
		}
		seen[rp.Role] = true

		for _, p := range rp.Profiles {
			if _, ok := m.defs[p.Capability]; !ok {
				return fmt.Errorf("role %s has a profile for undefined capability %s", rp.Role, p.Capability)
			}
			if p.Proficiency < 0 || p.Proficiency > 1 {
				return fmt.Errorf("role %s capability %s has proficiency %v outside [0, 1]", rp.Role, p.Capability, p.Proficiency)
			}
			if p.Confidence < 0 || p.Confidence > 1 {
				return fmt.Errorf("role %s capability %s has confidence %v outside [0, 1]", rp.Role, p.Capability, p.Confidence)
			}
		}
	}
	return nil
}

// Definition returns the definition for the capability, if one exists.
func (m *Manager) Definition(ct Type) (*Definition, bool) {
	def, ok := m.defs[ct]
	return def, ok
}

// AgentCapabilities returns the profiles held by the role, in seed order.
// Unknown roles yield an empty slice.
func (m *Manager) AgentCapabilities(role AgentRole) []Profile {
	return m.byRole[role]
}

// AgentsWithCapability returns every role holding the capability at or above
// minProficiency, in matrix order. A role appears at most once. Non-positive
// thresholds fall back to DefaultMinProficiency.
func (m *Manager) AgentsWithCapability(ct Type, minProficiency float64) []AgentRole {
	if minProficiency <= 0 {
		minProficiency = DefaultMinProficiency
	}

	roles := make([]AgentRole, 0)
	for _, rp := range m.matrix {
		for _, p := range rp.Profiles {
			if p.Capability == ct && p.Proficiency >= minProficiency {
				roles = append(roles, rp.Role)
				break
			}
		}
	}
	return roles
}

// BestAgentFor returns the role with the highest proficiency for the
// capability. Only strictly positive proficiencies qualify. Ties go to the
// role seeded earliest in the matrix; the second return is false when no
// role qualifies.
func (m *Manager) BestAgentFor(ct Type) (AgentRole, bool) {
	var best AgentRole
	var bestScore float64

	for _, rp := range m.matrix {
		for _, p := range rp.Profiles {
			if p.Capability != ct {
				continue
			}
			if p.Proficiency > bestScore {
				best = rp.Role
				bestScore = p.Proficiency
			}
		}
	}

	return best, bestScore > 0
}

// Hierarchy returns the capability's neighborhood in the taxonomy DAG.
// Unknown capabilities yield a zero Hierarchy.
func (m *Manager) Hierarchy(ct Type) Hierarchy {
	return m.hierarchy[ct]
}

// RelatedCapabilities returns the deduplicated union of the capability's
// parents, children, siblings, and dependencies. Order follows the
// declaration order within the definition.
func (m *Manager) RelatedCapabilities(ct Type) []Type {
	h, ok := m.hierarchy[ct]
	if !ok {
		return nil
	}

	seen := make(map[Type]bool)
	related := make([]Type, 0, len(h.Parents)+len(h.Children)+len(h.Siblings)+len(h.Dependencies))
	for _, group := range [][]Type{h.Parents, h.Children, h.Siblings, h.Dependencies} {
		for _, t := range group {
			if !seen[t] {
				seen[t] = true
				related = append(related, t)
			}
		}
	}
	return related
}

// CapabilitiesByLevel returns every capability defined at the given tier,
// in catalog iteration order.
func (m *Manager) CapabilitiesByLevel(level Level) []Definition {
	return m.filter(func(d *Definition) bool { return d.Level == level })
}

// CapabilitiesByCategory returns every capability tagged with the category.
func (m *Manager) CapabilitiesByCategory(category Category) []Definition {
	return m.filter(func(d *Definition) bool { return d.Category == category })
}

func (m *Manager) filter(keep func(*Definition) bool) []Definition {
	out := make([]Definition, 0)
	for i := range m.catalog {
		if keep(&m.catalog[i]) {
			out = append(out, m.catalog[i])
		}
	}
	return out
}

// Summarize aggregates counts by level, category, and role.
func (m *Manager) Summarize() Summary {
	s := Summary{
		TotalCapabilities: len(m.defs),
		TotalRoles:        len(m.matrix),
		ByLevel:           make(map[Level]int),
		ByCategory:        make(map[Category]int),
		ByRole:            make(map[AgentRole]int),
	}
	for _, def := range m.defs {
		s.ByLevel[def.Level]++
		s.ByCategory[def.Category]++
	}
	for _, rp := range m.matrix {
		s.ByRole[rp.Role] = len(rp.Profiles)
	}
	return s
}

// Roles returns the matrix roles in seed order.
func (m *Manager) Roles() []AgentRole {
	roles := make([]AgentRole, 0, len(m.matrix))
	for _, rp := range m.matrix {
		roles = append(roles, rp.Role)
	}
	return roles
}

// Definitions returns every definition in catalog declaration order.
func (m *Manager) Definitions() []Definition {
	return m.filter(func(*Definition) bool { return true })
}

func containsType(list []Type, t Type) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}
