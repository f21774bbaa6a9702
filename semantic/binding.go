package semantic

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// BindingTable maps every type-reference simple name seen in the file to
// the single SymbolTable entry it resolved to.
type BindingTable struct {
	TypesBySimple map[string]string
}

func newBindingTable() *BindingTable {
	return &BindingTable{TypesBySimple: map[string]string{}}
}

var primitiveTypeNames = map[string]bool{
	"void": true, "bool": true, "byte": true, "sbyte": true, "char": true,
	"short": true, "ushort": true, "int": true, "uint": true, "long": true,
	"ulong": true, "float": true, "double": true, "decimal": true,
	"string": true, "object": true, "dynamic": true, "var": true,
}

// baseTypeName strips array/nullable/generic-argument suffixes and picks
// the outermost generic base, e.g. "List<Foo>" -> "List", "int[]" -> "int",
// "Foo?" -> "Foo".
func baseTypeName(t string) string {
	t = stripTrailing(t, "[]")
	t = stripTrailing(t, "?")
	if i := indexOfByte(t, '<'); i >= 0 {
		t = t[:i]
	}
	return t
}

func stripTrailing(s, suffix string) string {
	for len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
		s = s[:len(s)-len(suffix)]
	}
	return s
}

func indexOfByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// NewBindingPass builds the semantic.binding pass: every type name
// referenced by a field, property, parameter, return type or base-type
// clause is resolved against the file's SymbolTable. Zero candidates or
// more than one is reported as BSE03012; primitive keywords are skipped,
// matching the original's Type::Reference/Type::Generic-only query.
func NewBindingPass() pass.Pass {
	return pass.NewFunc("semantic.binding", pass.Semantic, []string{"semantic.symbols"}, func(cu *ast.CompilationUnit, sess *session.Session) {
		symtab, ok := session.GetArtifact[*SymbolTable](sess)
		if !ok {
			return
		}
		table := newBindingTable()

		for _, name := range collectTypeReferences(cu) {
			base := baseTypeName(name)
			if base == "" || primitiveTypeNames[base] {
				continue
			}
			cand := symtab.ResolveSimple(base)
			switch len(cand) {
			case 0:
				diagnostic.New(diagnostic.CodeUnresolvedOrAmbiguousName).
					WithMessage(fmt.Sprintf("Unresolved name '%s'", base)).
					Emit(sess)
			case 1:
				table.TypesBySimple[base] = cand[0]
			default:
				diagnostic.New(diagnostic.CodeUnresolvedOrAmbiguousName).
					WithMessage(fmt.Sprintf("Ambiguous name '%s': %d candidates", base, len(cand))).
					Emit(sess)
			}
		}

		session.InsertArtifact(sess, table)
	})
}

// collectTypeReferences gathers every type-name string appearing in field,
// property, parameter, return and base-type positions across the whole
// compilation unit, standing in for the original's generic Type query over
// an explicit Type AST node this grammar does not materialize.
func collectTypeReferences(cu *ast.CompilationUnit) []string {
	var out []string
	add := func(t string) {
		if t != "" {
			out = append(out, t)
		}
	}

	var walkClass func(c *ast.ClassDecl)
	walkClass = func(c *ast.ClassDecl) {
		for _, bt := range c.BaseTypes {
			add(bt.Name())
		}
		for _, m := range c.Members {
			switch m.Kind {
			case ast.MemberMethod, ast.MemberOperator:
				add(m.Method.ReturnType)
				for _, p := range m.Method.Parameters {
					add(p.Type)
				}
			case ast.MemberConstructor:
				for _, p := range m.Constructor.Parameters {
					add(p.Type)
				}
			case ast.MemberProperty, ast.MemberIndexer:
				add(m.Property.Type)
				for _, p := range m.Property.Parameters {
					add(p.Type)
				}
			case ast.MemberField:
				add(m.Field.Type)
			case ast.MemberEvent:
				add(m.Event.Type)
			case ast.MemberNestedClass, ast.MemberNestedStruct, ast.MemberNestedInterface, ast.MemberNestedRecord:
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
			case ast.NSDelegate:
				add(m.Delegate.ReturnType)
				for _, p := range m.Delegate.Parameters {
					add(p.Type)
				}
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
		case ast.TopDelegate:
			add(decl.Delegate.ReturnType)
			for _, p := range decl.Delegate.Parameters {
				add(p.Type)
			}
		}
	}

	return out
}
