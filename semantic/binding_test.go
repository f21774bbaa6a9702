package semantic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func runBinding(t *testing.T, cu *ast.CompilationUnit) *session.Session {
	t.Helper()
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewSymbolsPass().Run(cu, sess)
	NewBindingPass().Run(cu, sess)
	return sess
}

func TestBaseTypeNameStripsArrayNullableAndGenericSuffixes(t *testing.T) {
	require.Equal(t, "int", baseTypeName("int[]"))
	require.Equal(t, "Foo", baseTypeName("Foo?"))
	require.Equal(t, "List", baseTypeName("List<Foo>"))
}

func TestBindingPassSkipsPrimitiveTypeNames(t *testing.T) {
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{
			{Kind: ast.TopClass, Class: &ast.ClassDecl{
				Name: ast.Identifier{Simple: "Widget"},
				Members: []ast.ClassMember{
					{Kind: ast.MemberField, Field: &ast.FieldDecl{Name: ast.Identifier{Simple: "count"}, Type: "int"}},
				},
			}},
		},
	}

	sess := runBinding(t, cu)
	require.Empty(t, sess.Diagnostics.Items)
}

func TestBindingPassResolvesSingleCandidate(t *testing.T) {
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{
			{Kind: ast.TopClass, Class: &ast.ClassDecl{Name: ast.Identifier{Simple: "Engine"}}},
			{Kind: ast.TopClass, Class: &ast.ClassDecl{
				Name: ast.Identifier{Simple: "Car"},
				Members: []ast.ClassMember{
					{Kind: ast.MemberField, Field: &ast.FieldDecl{Name: ast.Identifier{Simple: "e"}, Type: "Engine"}},
				},
			}},
		},
	}

	sess := runBinding(t, cu)

	require.Empty(t, sess.Diagnostics.Items)
	table, ok := session.GetArtifact[*BindingTable](sess)
	require.True(t, ok)
	require.Equal(t, "Engine", table.TypesBySimple["Engine"])
}

func TestBindingPassFlagsUnresolvedName(t *testing.T) {
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{
			{Kind: ast.TopClass, Class: &ast.ClassDecl{
				Name: ast.Identifier{Simple: "Car"},
				Members: []ast.ClassMember{
					{Kind: ast.MemberField, Field: &ast.FieldDecl{Name: ast.Identifier{Simple: "e"}, Type: "Engine"}},
				},
			}},
		},
	}

	sess := runBinding(t, cu)

	require.Len(t, sess.Diagnostics.Items, 1)
	require.Equal(t, diagnostic.CodeUnresolvedOrAmbiguousName, sess.Diagnostics.Items[0].Code)
}

// A SymbolTable can hold more than one FQN for the same simple name once a
// caller populates it directly (e.g. from a multi-namespace merge upstream
// of this pass); binding.go must still flag that as ambiguous rather than
// picking one arbitrarily.
func TestBindingPassFlagsAmbiguousName(t *testing.T) {
	car := &ast.ClassDecl{
		Name: ast.Identifier{Simple: "Car"},
		Members: []ast.ClassMember{
			{Kind: ast.MemberField, Field: &ast.FieldDecl{Name: ast.Identifier{Simple: "e"}, Type: "Engine"}},
		},
	}
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{{Kind: ast.TopClass, Class: car}},
	}

	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	table := newSymbolTable()
	table.insert(Entry{Name: "Engine", Kind: KindClass, FQN: "A.Engine"})
	table.insert(Entry{Name: "Engine", Kind: KindClass, FQN: "B.Engine"})
	session.InsertArtifact(sess, table)

	NewBindingPass().Run(cu, sess)

	require.Len(t, sess.Diagnostics.Items, 1)
	require.Equal(t, diagnostic.CodeUnresolvedOrAmbiguousName, sess.Diagnostics.Items[0].Code)
	require.Contains(t, sess.Diagnostics.Items[0].Message, "Ambiguous")
}
