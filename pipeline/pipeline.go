// Package pipeline implements the per-file driver (spec.md §4.10): the
// fixed phase sequence Index -> LocalRules -> local rule-set traversal ->
// Global -> semantic rule-set traversal -> Semantic -> Reporting, grounded
// on the teacher's framework.pipeline AnalyzerPipeline::run_for_file.
package pipeline

import (
	"github.com/flanksource/commons/logger"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/rule"
	"github.com/flanksource/bsharp-analyzer/session"
)

// Catalog is the full set of passes and rule-sets a RunForFile call draws
// on, built once and shared across every file in a workspace run.
type Catalog struct {
	Registry   *pass.Registry
	LocalSets  []*rule.Set
	Semantic   []*rule.Set
	Conditions func(ruleID string) bool // optional CEL gate, nil means "always enabled"
}

// RunForFile drives the complete pipeline over one compilation unit,
// publishing artifacts and diagnostics into sess.
func RunForFile(cu *ast.CompilationUnit, sess *session.Session, cat *Catalog) {
	runPhase(pass.Index, cu, sess, cat.Registry)
	runPhase(pass.LocalRules, cu, sess, cat.Registry)
	runRuleFamily(cat.LocalSets, cu, sess, cat.Conditions)
	runPhase(pass.Global, cu, sess, cat.Registry)
	runRuleFamily(cat.Semantic, cu, sess, cat.Conditions)
	runPhase(pass.Semantic, cu, sess, cat.Registry)
	runPhase(pass.Reporting, cu, sess, cat.Registry)
}

func runPhase(phase pass.Phase, cu *ast.CompilationUnit, sess *session.Session, reg *pass.Registry) {
	for _, p := range reg.PassesInPhase(phase) {
		if !sess.PassEnabled(p.ID()) {
			logger.Debugf("pipeline: skipping disabled pass %s", p.ID())
			continue
		}
		p.Run(cu, sess)
	}
}

func runRuleFamily(sets []*rule.Set, cu *ast.CompilationUnit, sess *session.Session, conditions func(string) bool) {
	rules := rule.Collect(sets, sess, conditions)
	if len(rules) == 0 {
		return
	}
	visitor := &rule.FusedVisitor{Rules: rules}
	ast.NewWalker().WithVisitor(visitor).Run(cu, sess)
}
