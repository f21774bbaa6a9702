package metrics

import (
	"strings"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/fqn"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// forEachType recursively walks every class/struct/interface/record
// declaration reachable from cu, including namespace and nested members,
// mirroring the anchor-on-compilation-unit traversal the rule catalog uses.
func forEachType(cu *ast.CompilationUnit, fn func(c *ast.ClassDecl)) {
	var walkClass func(c *ast.ClassDecl)
	walkClass = func(c *ast.ClassDecl) {
		fn(c)
		for _, m := range c.Members {
			if m.NestedClass != nil {
				walkClass(m.NestedClass)
			}
		}
	}
	var walkMembers func(members []ast.NamespaceMember)
	walkMembers = func(members []ast.NamespaceMember) {
		for _, m := range members {
			switch m.Kind {
			case ast.NSClass, ast.NSStruct, ast.NSInterface, ast.NSRecord:
				walkClass(m.Class)
			case ast.NSNamespace:
				walkMembers(m.Namespace.Declarations)
			}
		}
	}
	if cu.FileScopedNamespace != nil {
		walkMembers(cu.FileScopedNamespace.Declarations)
	}
	for _, decl := range cu.Declarations {
		switch decl.Kind {
		case ast.TopClass, ast.TopStruct, ast.TopInterface, ast.TopRecord:
			walkClass(decl.Class)
		case ast.TopNamespace:
			walkMembers(decl.Namespace.Declarations)
		}
	}
}

func countSourceLines(src string) int {
	lines := strings.Split(src, "\n")
	count := 0
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t != "" && !strings.HasPrefix(t, "//") {
			count++
		}
	}
	return count
}

// NewMetricsPass builds the LocalRules-phase pass that publishes the
// per-file AstAnalysis artifact (spec.md §4.5, grounded on the teacher's
// passes.metrics).
func NewMetricsPass() pass.Pass {
	return pass.NewFunc("passes.metrics", pass.LocalRules, nil, func(cu *ast.CompilationUnit, sess *session.Session) {
		var a AstAnalysis
		forEachType(cu, func(c *ast.ClassDecl) {
			switch c.TypeKind {
			case ast.KindClass:
				a.TotalClasses++
			case ast.KindStruct:
				a.TotalStructs++
			case ast.KindInterface:
				a.TotalInterfaces++
			case ast.KindRecord:
				a.TotalRecords++
			}
			for _, m := range c.Members {
				switch m.Kind {
				case ast.MemberMethod:
					a.TotalMethods++
					a.CyclomaticComplexity += MethodComplexity(m.Method.Body)
					a.MaxNestingDepth = max(a.MaxNestingDepth, MethodMaxNesting(m.Method.Body))
					a.LinesOfCode += MethodStatementCount(m.Method.Body)
					if m.Method.Body != nil {
						countConstructs(&a, *m.Method.Body)
					}
				case ast.MemberConstructor:
					a.TotalConstructors++
				case ast.MemberProperty, ast.MemberIndexer:
					a.TotalProperties++
				case ast.MemberField:
					a.TotalFields++
				case ast.MemberEvent:
					a.TotalEvents++
				}
			}
		})
		a.LinesOfCode += countSourceLines(sess.Ctx.SourceText)
		session.InsertArtifact(sess, a)
	})
}

// countConstructs tallies construct-specific counters (if/for/while/switch/
// try/using) over a method body for AstAnalysis's breakdown fields.
func countConstructs(a *AstAnalysis, b ast.BlockStatement) {
	var walk func(s ast.Statement)
	walk = func(s ast.Statement) {
		switch s.Kind {
		case ast.StmtIf:
			a.TotalIfStatements++
			walk(s.If.Consequence)
			if s.If.Alternative != nil {
				walk(*s.If.Alternative)
			}
		case ast.StmtFor:
			a.TotalForLoops++
			walk(s.For.Body)
		case ast.StmtForEach:
			a.TotalForLoops++
			walk(s.ForEach.Body)
		case ast.StmtWhile:
			a.TotalWhileLoops++
			walk(s.While.Body)
		case ast.StmtDoWhile:
			a.TotalWhileLoops++
			walk(s.DoWhile.Body)
		case ast.StmtSwitch:
			a.TotalSwitchStatements++
			for _, sec := range s.Switch.Sections {
				for _, stmt := range sec.Statements {
					walk(stmt)
				}
			}
		case ast.StmtTry:
			a.TotalTryStatements++
			for _, stmt := range s.Try.TryBlock.Statements {
				walk(stmt)
			}
			for _, h := range s.Try.Catches {
				for _, stmt := range h.Block.Statements {
					walk(stmt)
				}
			}
			if s.Try.Finally != nil {
				for _, stmt := range s.Try.Finally.Block.Statements {
					walk(stmt)
				}
			}
		case ast.StmtUsing:
			a.TotalUsingStatements++
			walk(s.Using.Body)
		case ast.StmtBlock:
			for _, stmt := range s.Block.Statements {
				walk(stmt)
			}
		}
	}
	for _, s := range b.Statements {
		walk(s)
	}
}

// NewControlFlowPass builds the Global-phase pass that publishes
// ControlFlowIndex, ControlFlowGraphs and CfgSummary, grounded on the
// teacher's passes.control_flow.
func NewControlFlowPass() pass.Pass {
	return pass.NewFunc("passes.control_flow", pass.Global, nil, func(cu *ast.CompilationUnit, sess *session.Session) {
		index := ControlFlowIndex{}
		graphs := ControlFlowGraphs{}
		summary := CfgSummary{}

		forEachType(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			for _, m := range c.Members {
				if m.Kind != ast.MemberMethod {
					continue
				}
				method := m.Method
				key := fqn.Method(cu, method)
				stats := MethodStats{
					Complexity:     MethodComplexity(method.Body),
					MaxNesting:     MethodMaxNesting(method.Body),
					ExitPoints:     MethodExitPoints(method.Body),
					StatementCount: MethodStatementCount(method.Body),
				}
				index[key] = stats
				graphs[key] = BuildCFG(method.Body)

				summary.TotalMethods++
				if stats.Complexity >= HighComplexityThreshold {
					summary.HighComplexityMethods++
				}
				if stats.MaxNesting >= DeepNestingThreshold {
					summary.DeepNestingMethods++
				}
			}
		})

		session.InsertArtifact(sess, index)
		session.InsertArtifact(sess, graphs)
		session.InsertArtifact(sess, summary)
	})
}
