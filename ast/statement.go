package ast

// StatementKind discriminates Statement variants.
type StatementKind int

const (
	StmtBlock StatementKind = iota
	StmtIf
	StmtFor
	StmtForEach
	StmtWhile
	StmtDoWhile
	StmtSwitch
	StmtTry
	StmtUsing
	StmtReturn
	StmtThrow
	StmtLabel
	StmtGoto
	StmtExpression
	StmtDeclaration
	StmtLocalFunction
	StmtBreak
	StmtContinue
	StmtEmpty
)

// Statement is a tagged union over every statement kind the grammar produces.
// Only the field matching Kind is populated.
type Statement struct {
	Kind StatementKind

	Block *BlockStatement // StmtBlock

	If         *IfStatement         // StmtIf
	For        *ForStatement        // StmtFor
	ForEach    *ForEachStatement    // StmtForEach
	While      *WhileStatement      // StmtWhile
	DoWhile    *DoWhileStatement    // StmtDoWhile
	Switch     *SwitchStatement     // StmtSwitch
	Try        *TryStatement        // StmtTry
	Using      *UsingStatement      // StmtUsing
	Label      *LabelStatement      // StmtLabel
	LocalFunc  *LocalFunctionStatement // StmtLocalFunction
	Decl       *DeclarationStatement   // StmtDeclaration

	Text string // raw rendering for leaf kinds (Return/Throw/Goto/Expression/Label name), used only for diagnostics context
}

// BlockStatement is `{ ... }`; it does not add nesting depth on its own.
type BlockStatement struct {
	Statements []Statement
}

// IfStatement is `if (cond) consequence [else alternative]`.
type IfStatement struct {
	Consequence Statement
	Alternative *Statement // nil when there is no else branch
}

// ForStatement is a C-style `for (...) body`.
type ForStatement struct {
	Body Statement
}

// ForEachStatement is `foreach (...) body`.
type ForEachStatement struct {
	Body Statement
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Body Statement
}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Body Statement
}

// SwitchSection is one `case ...:`/`default:` group and the statements it guards.
type SwitchSection struct {
	Labels     []string // literal case labels, "default" for the default section
	Statements []Statement
}

// SwitchStatement is a `switch (expr) { sections... }`.
type SwitchStatement struct {
	Sections []SwitchSection
}

// CatchClause is one `catch (Type name) { block }`.
type CatchClause struct {
	ExceptionType string
	Block         BlockStatement
}

// FinallyClause is the optional `finally { block }`.
type FinallyClause struct {
	Block BlockStatement
}

// TryStatement is `try { } catch... finally?`.
type TryStatement struct {
	TryBlock BlockStatement
	Catches  []CatchClause
	Finally  *FinallyClause
}

// UsingStatement is a `using (...) body` resource-scoping statement.
type UsingStatement struct {
	Body Statement
}

// LabelStatement is `name: statement`.
type LabelStatement struct {
	Name      string
	Statement Statement
}

// LocalFunctionStatement is a function declared inside a method body.
type LocalFunctionStatement struct {
	Name Identifier
	Body *BlockStatement
}

// DeclarationStatement is a local variable declaration, e.g. `var x = ...;`.
type DeclarationStatement struct {
	Names []string
	Type  string
}
