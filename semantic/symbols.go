// Package semantic implements the Semantic-phase pass chain: symbol-table
// construction, name binding, and the no-op placeholder passes that record
// the dependency order a fuller type/overload/flow/nullability pipeline
// would occupy (spec.md §4.7/§4.8, grounded on the teacher's semantic
// module).
package semantic

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// Kind classifies a SymbolTable entry.
type Kind int

const (
	KindNamespace Kind = iota
	KindClass
	KindStruct
	KindInterface
	KindRecord
	KindEnum
	KindDelegate
)

// Entry is one SymbolTable row.
type Entry struct {
	Name string
	Kind Kind
	FQN  string
}

// SymbolTable is the file-level symbol table produced by semantic.symbols:
// every declared type, keyed both by its fully-qualified name and by its
// simple name (which may have more than one FQN candidate).
type SymbolTable struct {
	ByFQN    map[string]Entry
	BySimple map[string][]string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{ByFQN: map[string]Entry{}, BySimple: map[string][]string{}}
}

func (t *SymbolTable) insert(e Entry) {
	t.BySimple[e.Name] = append(t.BySimple[e.Name], e.FQN)
	t.ByFQN[e.FQN] = e
}

// ResolveSimple returns every FQN candidate a simple name resolves to.
func (t *SymbolTable) ResolveSimple(name string) []string {
	return t.BySimple[name]
}

func fqnForType(nsPrefix, name string) string {
	if nsPrefix == "" {
		return name
	}
	return nsPrefix + "." + name
}

// NewSymbolsPass builds the semantic.symbols pass: one SymbolTable entry per
// top-level type declaration, qualified by the file's first namespace (file
// bodies with more than one namespace are not modelled, matching the
// teacher's single-namespace-per-file assumption). A second declaration
// reusing an already-seen FQN is reported as BSE03011 instead of inserted.
func NewSymbolsPass() pass.Pass {
	return pass.NewFunc("semantic.symbols", pass.Semantic, nil, func(cu *ast.CompilationUnit, sess *session.Session) {
		nsPrefix := firstNamespace(cu)
		table := newSymbolTable()

		for _, d := range topLevelTypes(cu) {
			fqn := fqnForType(nsPrefix, d.name)
			if existing, ok := table.ByFQN[fqn]; ok {
				diagnostic.New(diagnostic.CodeDuplicateSymbol).
					WithMessage(fmt.Sprintf("Duplicate symbol '%s' (%s) in the same file", d.name, existing.FQN)).
					Emit(sess)
				continue
			}
			table.insert(Entry{Name: d.name, Kind: d.kind, FQN: fqn})
		}

		session.InsertArtifact(sess, table)
	})
}

func firstNamespace(cu *ast.CompilationUnit) string {
	if cu.FileScopedNamespace != nil {
		return cu.FileScopedNamespace.Name.Name()
	}
	for _, decl := range cu.Declarations {
		if decl.Kind == ast.TopNamespace {
			return decl.Namespace.Name.Name()
		}
	}
	return ""
}

type typeDecl struct {
	name string
	kind Kind
}

func classKind(k ast.TypeKind) Kind {
	switch k {
	case ast.KindStruct:
		return KindStruct
	case ast.KindInterface:
		return KindInterface
	case ast.KindRecord:
		return KindRecord
	default:
		return KindClass
	}
}

// topLevelTypes returns every directly-declared class/struct/interface/
// record/enum/delegate at the top level of the compilation unit (including
// inside its single supported namespace), matching the original's
// Query::from(cu).of::<TypeDeclaration>() shallow walk — nested class
// members are intentionally excluded, as in the source pass.
func topLevelTypes(cu *ast.CompilationUnit) []typeDecl {
	var out []typeDecl
	collectMembers := func(members []ast.NamespaceMember) {
		for _, m := range members {
			switch m.Kind {
			case ast.NSClass, ast.NSStruct, ast.NSInterface, ast.NSRecord:
				out = append(out, typeDecl{name: m.Class.Name.Name(), kind: classKind(m.Class.TypeKind)})
			case ast.NSEnum:
				out = append(out, typeDecl{name: m.Enum.Name.Name(), kind: KindEnum})
			case ast.NSDelegate:
				out = append(out, typeDecl{name: m.Delegate.Name.Name(), kind: KindDelegate})
			}
		}
	}
	// Only the namespace firstNamespace picks is collected.
	seenNamespace := cu.FileScopedNamespace != nil
	collect := func(decl ast.TopLevelDeclaration) {
		switch decl.Kind {
		case ast.TopClass, ast.TopStruct, ast.TopInterface, ast.TopRecord:
			out = append(out, typeDecl{name: decl.Class.Name.Name(), kind: classKind(decl.Class.TypeKind)})
		case ast.TopEnum:
			out = append(out, typeDecl{name: decl.Enum.Name.Name(), kind: KindEnum})
		case ast.TopDelegate:
			out = append(out, typeDecl{name: decl.Delegate.Name.Name(), kind: KindDelegate})
		case ast.TopNamespace:
			if !seenNamespace {
				seenNamespace = true
				collectMembers(decl.Namespace.Declarations)
			}
		}
	}
	for _, decl := range cu.Declarations {
		collect(decl)
	}
	if cu.FileScopedNamespace != nil {
		collectMembers(cu.FileScopedNamespace.Declarations)
	}
	return out
}
