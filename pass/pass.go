package pass

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/session"
)

// Pass is a single unit of per-file work belonging to one Phase, optionally
// depending on other passes having already run (spec.md §4.3).
type Pass interface {
	ID() string
	Phase() Phase
	DependsOn() []string
	Run(cu *ast.CompilationUnit, sess *session.Session)
}

// Func adapts a plain function into a Pass, the idiomatic equivalent of the
// source's rule-declaration macro (spec.md §9 "Rule DSL").
type Func struct {
	id        string
	phase     Phase
	dependsOn []string
	run       func(cu *ast.CompilationUnit, sess *session.Session)
}

// NewFunc builds a Pass from a plain run function.
func NewFunc(id string, phase Phase, dependsOn []string, run func(cu *ast.CompilationUnit, sess *session.Session)) *Func {
	return &Func{id: id, phase: phase, dependsOn: dependsOn, run: run}
}

func (f *Func) ID() string           { return f.id }
func (f *Func) Phase() Phase         { return f.phase }
func (f *Func) DependsOn() []string  { return f.dependsOn }
func (f *Func) Run(cu *ast.CompilationUnit, sess *session.Session) {
	defer recoverInto(sess, f.id)
	f.run(cu, sess)
}

// recoverInto converts a panicking pass/rule into an internal-error
// diagnostic rather than letting it abort the file (SPEC_FULL.md §7).
func recoverInto(sess *session.Session, id string) {
	if r := recover(); r != nil {
		emitInternalError(sess, id, r)
	}
}
