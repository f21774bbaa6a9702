// Package rule implements the rule DSL and the rule catalog from spec.md
// §4.4: node-visiting inspectors, grouped into rule-sets, fused by the
// pipeline driver into exactly two AST traversals per file.
package rule

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/session"
)

// Rule is a single node-visiting inspector. Visit is called for every
// NodeRef during a fused rule-set traversal; a rule that does not care
// about the current node variant simply returns.
type Rule interface {
	ID() string
	Category() string
	Visit(node ast.NodeRef, sess *session.Session)
}

// Func adapts a plain function into a Rule, the function-per-rule
// equivalent of the source's declarative rule macro (spec.md §9).
type Func struct {
	id       string
	category string
	visit    func(node ast.NodeRef, sess *session.Session)
}

// NewFunc builds a Rule from id, category and a visit function.
func NewFunc(id, category string, visit func(node ast.NodeRef, sess *session.Session)) *Func {
	return &Func{id: id, category: category, visit: visit}
}

func (f *Func) ID() string       { return f.id }
func (f *Func) Category() string { return f.category }
func (f *Func) Visit(node ast.NodeRef, sess *session.Session) {
	defer func() {
		if r := recover(); r != nil {
			emitRuleInternalError(sess, f.id, r)
		}
	}()
	f.visit(node, sess)
}

// Set is a named collection of rules executed in one fused AST walk,
// belonging to one family ("local" or "semantic").
type Set struct {
	id     string
	family string
	rules  []Rule
}

// NewSet builds a rule-set from id, family, and its member rules.
func NewSet(id, family string, rules ...Rule) *Set {
	return &Set{id: id, family: family, rules: rules}
}

func (s *Set) ID() string     { return s.id }
func (s *Set) Family() string { return s.family }

// Rules returns the rule-set's members in registration order.
func (s *Set) Rules() []Rule { return s.rules }
