package metrics

import "github.com/flanksource/bsharp-analyzer/ast"

// BasicBlock is one maximal straight-line run of statements. Successors
// holds the indices, within the owning ControlFlowGraph.Blocks slice, of
// every block control can transfer to.
type BasicBlock struct {
	Statements []ast.Statement
	Successors []int
}

// ControlFlowGraph is the per-method CFG: one basic block per straight-line
// run, connected by edges for branches, loop back-edges, switch sections
// and try/catch/finally transfers (spec.md §4.5).
type ControlFlowGraph struct {
	Blocks []BasicBlock
}

// cfgBuilder accumulates basic blocks while walking a method body.
type cfgBuilder struct {
	blocks  []BasicBlock
	current int // index of the block currently being appended to
}

func newCFGBuilder() *cfgBuilder {
	b := &cfgBuilder{blocks: []BasicBlock{{}}}
	b.current = 0
	return b
}

func (b *cfgBuilder) newBlock() int {
	b.blocks = append(b.blocks, BasicBlock{})
	return len(b.blocks) - 1
}

func (b *cfgBuilder) link(from, to int) {
	blk := b.blocks[from]
	blk.Successors = append(blk.Successors, to)
	b.blocks[from] = blk
}

func (b *cfgBuilder) append(s ast.Statement) {
	blk := b.blocks[b.current]
	blk.Statements = append(blk.Statements, s)
	b.blocks[b.current] = blk
}

// BuildCFG constructs a ControlFlowGraph for a method body.
func BuildCFG(body *ast.BlockStatement) *ControlFlowGraph {
	if body == nil {
		return &ControlFlowGraph{Blocks: []BasicBlock{{}}}
	}
	b := newCFGBuilder()
	walkBlock(b, body.Statements)
	return &ControlFlowGraph{Blocks: b.blocks}
}

func walkBlock(b *cfgBuilder, stmts []ast.Statement) {
	for _, s := range stmts {
		walkStmt(b, s)
	}
}

func walkStmt(b *cfgBuilder, s ast.Statement) {
	switch s.Kind {
	case ast.StmtIf:
		head := b.current
		conseq := b.newBlock()
		b.link(head, conseq)
		b.current = conseq
		walkStmt(b, s.If.Consequence)
		after := b.newBlock()
		b.link(b.current, after)

		if s.If.Alternative != nil {
			alt := b.newBlock()
			b.link(head, alt)
			b.current = alt
			walkStmt(b, *s.If.Alternative)
			b.link(b.current, after)
		} else {
			b.link(head, after)
		}
		b.current = after

	case ast.StmtFor, ast.StmtForEach, ast.StmtWhile, ast.StmtDoWhile:
		head := b.current
		loopBody := b.newBlock()
		b.link(head, loopBody)
		b.current = loopBody
		walkStmt(b, loopBodyOf(s))
		b.link(b.current, head) // back-edge to condition
		after := b.newBlock()
		b.link(head, after)
		b.current = after

	case ast.StmtSwitch:
		head := b.current
		after := b.newBlock()
		for _, sec := range s.Switch.Sections {
			secBlock := b.newBlock()
			b.link(head, secBlock)
			b.current = secBlock
			walkBlock(b, sec.Statements)
			b.link(b.current, after)
		}
		b.current = after

	case ast.StmtTry:
		head := b.current
		tryBlock := b.newBlock()
		b.link(head, tryBlock)
		b.current = tryBlock
		walkBlock(b, s.Try.TryBlock.Statements)
		tryExit := b.current
		after := b.newBlock()
		for _, h := range s.Try.Catches {
			catchBlock := b.newBlock()
			b.link(head, catchBlock)
			b.current = catchBlock
			walkBlock(b, h.Block.Statements)
			b.link(b.current, after)
		}
		if s.Try.Finally != nil {
			finBlock := b.newBlock()
			b.link(tryExit, finBlock)
			b.current = finBlock
			walkBlock(b, s.Try.Finally.Block.Statements)
			b.link(b.current, after)
		} else {
			b.link(tryExit, after)
		}
		b.current = after

	case ast.StmtUsing:
		walkStmt(b, s.Using.Body)

	case ast.StmtBlock:
		walkBlock(b, s.Block.Statements)

	default:
		b.append(s)
	}
}

func loopBodyOf(s ast.Statement) ast.Statement {
	switch s.Kind {
	case ast.StmtFor:
		return s.For.Body
	case ast.StmtForEach:
		return s.ForEach.Body
	case ast.StmtWhile:
		return s.While.Body
	case ast.StmtDoWhile:
		return s.DoWhile.Body
	default:
		return s
	}
}
