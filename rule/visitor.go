package rule

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/session"
)

// FusedVisitor adapts a flattened list of rules into a single ast.Visitor so
// the pipeline driver can traverse the AST exactly once per rule family,
// regardless of how many rules are enabled (spec.md §4.4).
type FusedVisitor struct {
	Rules []Rule
}

// Enter invokes every rule's Visit for node. Exit is a no-op: rules observe
// nodes on entry only, matching the reference pipeline's rule traversal.
func (v *FusedVisitor) Enter(node ast.NodeRef, sess *session.Session) {
	for _, r := range v.Rules {
		r.Visit(node, sess)
	}
}

// Exit is intentionally empty.
func (v *FusedVisitor) Exit(node ast.NodeRef, sess *session.Session) {}

// Collect gathers every enabled rule from the named rule-sets (in sets
// order, rules in each set's registration order) honoring both the plain
// enable_rulesets map and, when present, a per-rule CEL condition.
func Collect(sets []*Set, sess *session.Session, evalCondition func(ruleID string) bool) []Rule {
	var rules []Rule
	for _, s := range sets {
		if !sess.RuleSetEnabled(s.ID()) {
			continue
		}
		for _, r := range s.Rules() {
			if evalCondition != nil && !evalCondition(r.ID()) {
				continue
			}
			rules = append(rules, r)
		}
	}
	return rules
}
