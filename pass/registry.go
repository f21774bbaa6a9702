package pass

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the full set of passes and rule-sets known to the pipeline
// and returns them in deterministic, dependency-respecting order (spec.md
// §4.3), mirroring the teacher's language Registry's RWMutex-guarded,
// deterministically-ordered lookups.
type Registry struct {
	mu      sync.RWMutex
	passes  map[string]Pass
	ruleSets map[string]RuleSetHandle
}

// RuleSetHandle is the minimal shape the registry needs from a rule-set; the
// rule package implements this via rule.Set.
type RuleSetHandle interface {
	ID() string
	Family() string // "local" or "semantic"
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		passes:   make(map[string]Pass),
		ruleSets: make(map[string]RuleSetHandle),
	}
}

// Register adds a pass, panicking on a duplicate id (a programmer error,
// not a runtime condition).
func (r *Registry) Register(p Pass) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.passes[p.ID()]; exists {
		panic(fmt.Sprintf("pass %q already registered", p.ID()))
	}
	r.passes[p.ID()] = p
}

// RegisterRuleSet adds a rule-set handle, panicking on a duplicate id.
func (r *Registry) RegisterRuleSet(rs RuleSetHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ruleSets[rs.ID()]; exists {
		panic(fmt.Sprintf("rule-set %q already registered", rs.ID()))
	}
	r.ruleSets[rs.ID()] = rs
}

// PassesInPhase returns every registered pass in phase, ordered by
// dependency topology and then by id (spec.md §4.3: "deterministic order
// derived from (phase, declared-dependency topology, then id)").
func (r *Registry) PassesInPhase(phase Phase) []Pass {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var inPhase []Pass
	for _, p := range r.passes {
		if p.Phase() == phase {
			inPhase = append(inPhase, p)
		}
	}
	return topoSort(inPhase)
}

// RuleSetsByFamily returns the ids, in sorted order, of every rule-set
// belonging to family ("local" or "semantic").
func (r *Registry) RuleSetsByFamily(family string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, rs := range r.ruleSets {
		if rs.Family() == family {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// topoSort orders passes by declared-dependency topology, breaking ties (and
// resolving passes with no ordering relationship) by id. A dependency that
// points outside this phase or is otherwise unresolvable is ignored here:
// spec.md §4.3/§7 says a dependent pass still runs and must itself tolerate
// a missing artifact.
func topoSort(passes []Pass) []Pass {
	byID := make(map[string]Pass, len(passes))
	for _, p := range passes {
		byID[p.ID()] = p
	}

	var ordered []Pass
	visited := make(map[string]bool)
	visiting := make(map[string]bool)

	ids := make([]string, 0, len(passes))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var visit func(id string)
	visit = func(id string) {
		if visited[id] || visiting[id] {
			return
		}
		p, ok := byID[id]
		if !ok {
			return
		}
		visiting[id] = true
		deps := append([]string{}, p.DependsOn()...)
		sort.Strings(deps)
		for _, dep := range deps {
			if _, ok := byID[dep]; ok {
				visit(dep)
			}
		}
		visiting[id] = false
		visited[id] = true
		ordered = append(ordered, p)
	}

	for _, id := range ids {
		visit(id)
	}
	return ordered
}
