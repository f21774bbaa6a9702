// Package metrics derives cyclomatic complexity, nesting depth, statement
// counts and per-method control-flow graphs from method bodies, and
// publishes the per-file and per-method artifacts spec.md §4.5 describes.
package metrics

import "github.com/flanksource/bsharp-analyzer/ast"

// decisionPoints counts structural decision points in a statement tree:
// each If/For/ForEach/While/DoWhile/Using contributes 1 plus its body's
// decision points; Switch contributes one per section plus the decision
// points of every contained statement; Try contributes 1 for the try
// block plus the decision points of every catch and the finally clause.
func decisionPoints(s ast.Statement) int {
	switch s.Kind {
	case ast.StmtIf:
		d := 1 + decisionPoints(s.If.Consequence)
		if s.If.Alternative != nil {
			d += decisionPoints(*s.If.Alternative)
		}
		return d
	case ast.StmtFor:
		return 1 + decisionPoints(s.For.Body)
	case ast.StmtForEach:
		return 1 + decisionPoints(s.ForEach.Body)
	case ast.StmtWhile:
		return 1 + decisionPoints(s.While.Body)
	case ast.StmtDoWhile:
		return 1 + decisionPoints(s.DoWhile.Body)
	case ast.StmtUsing:
		return 1 + decisionPoints(s.Using.Body)
	case ast.StmtSwitch:
		d := len(s.Switch.Sections)
		for _, sec := range s.Switch.Sections {
			for _, stmt := range sec.Statements {
				d += decisionPoints(stmt)
			}
		}
		return d
	case ast.StmtTry:
		d := 1 + decisionPointsBlock(s.Try.TryBlock)
		for _, h := range s.Try.Catches {
			d += decisionPointsBlock(h.Block)
		}
		if s.Try.Finally != nil {
			d += decisionPointsBlock(s.Try.Finally.Block)
		}
		return d
	case ast.StmtBlock:
		return decisionPointsBlock(*s.Block)
	default:
		return 0
	}
}

func decisionPointsBlock(b ast.BlockStatement) int {
	total := 0
	for _, s := range b.Statements {
		total += decisionPoints(s)
	}
	return total
}

// maxNestingOf returns the deepest nesting level reached under s, given the
// current depth. Block does not add depth; every other control-flow
// statement does.
func maxNestingOf(s ast.Statement, current int) int {
	switch s.Kind {
	case ast.StmtIf:
		next := current + 1
		c := maxNestingOf(s.If.Consequence, next)
		a := next
		if s.If.Alternative != nil {
			a = maxNestingOf(*s.If.Alternative, next)
		}
		return max(c, a)
	case ast.StmtFor:
		return maxNestingOf(s.For.Body, current+1)
	case ast.StmtForEach:
		return maxNestingOf(s.ForEach.Body, current+1)
	case ast.StmtWhile:
		return maxNestingOf(s.While.Body, current+1)
	case ast.StmtDoWhile:
		return maxNestingOf(s.DoWhile.Body, current+1)
	case ast.StmtUsing:
		return maxNestingOf(s.Using.Body, current+1)
	case ast.StmtSwitch:
		maxD := current + 1
		for _, sec := range s.Switch.Sections {
			for _, stmt := range sec.Statements {
				maxD = max(maxD, maxNestingOf(stmt, current+1))
			}
		}
		return maxD
	case ast.StmtBlock:
		maxD := current
		for _, stmt := range s.Block.Statements {
			maxD = max(maxD, maxNestingOf(stmt, current))
		}
		return maxD
	default:
		return current
	}
}

// countExitPoints counts Return/Throw statements reachable through a
// statement's control-flow-bearing substructure.
func countExitPoints(s *ast.Statement) int {
	if s == nil {
		return 0
	}
	switch s.Kind {
	case ast.StmtReturn, ast.StmtThrow:
		return 1
	case ast.StmtIf:
		c := countExitPoints(&s.If.Consequence)
		if s.If.Alternative != nil {
			c += countExitPoints(s.If.Alternative)
		}
		return c
	case ast.StmtFor:
		return countExitPoints(&s.For.Body)
	case ast.StmtForEach:
		return countExitPoints(&s.ForEach.Body)
	case ast.StmtWhile:
		return countExitPoints(&s.While.Body)
	case ast.StmtDoWhile:
		return countExitPoints(&s.DoWhile.Body)
	case ast.StmtUsing:
		return countExitPoints(&s.Using.Body)
	case ast.StmtSwitch:
		total := 0
		for _, sec := range s.Switch.Sections {
			for _, stmt := range sec.Statements {
				total += countExitPoints(&stmt)
			}
		}
		return total
	case ast.StmtTry:
		total := countExitPointsBlock(s.Try.TryBlock)
		for _, h := range s.Try.Catches {
			total += countExitPointsBlock(h.Block)
		}
		if s.Try.Finally != nil {
			total += countExitPointsBlock(s.Try.Finally.Block)
		}
		return total
	case ast.StmtBlock:
		return countExitPointsBlock(*s.Block)
	default:
		return 0
	}
}

func countExitPointsBlock(b ast.BlockStatement) int {
	total := 0
	for _, s := range b.Statements {
		total += countExitPoints(&s)
	}
	return total
}

// countStatements counts leaf statements, with Block summing its children.
func countStatements(s *ast.Statement) int {
	if s == nil {
		return 0
	}
	if s.Kind == ast.StmtBlock {
		total := 0
		for _, stmt := range s.Block.Statements {
			total += countStatements(&stmt)
		}
		return total
	}
	return 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MethodComplexity computes the baseline-1-plus-decision-points complexity
// for a method body; a method with no body (interface/abstract) has
// complexity 1.
func MethodComplexity(body *ast.BlockStatement) int {
	if body == nil {
		return 1
	}
	return 1 + decisionPointsBlock(*body)
}

// MethodMaxNesting computes the deepest nesting level of a method body.
func MethodMaxNesting(body *ast.BlockStatement) int {
	if body == nil {
		return 0
	}
	maxD := 0
	for _, s := range body.Statements {
		maxD = max(maxD, maxNestingOf(s, 0))
	}
	return maxD
}

// MethodExitPoints counts Return/Throw statements in a method body.
func MethodExitPoints(body *ast.BlockStatement) int {
	if body == nil {
		return 0
	}
	return countExitPointsBlock(*body)
}

// MethodStatementCount counts the leaf statements in a method body.
func MethodStatementCount(body *ast.BlockStatement) int {
	if body == nil {
		return 0
	}
	total := 0
	for _, s := range body.Statements {
		total += countStatements(&s)
	}
	return total
}
