package fqn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/ast"
)

func TestClassInsideFileScopedNamespace(t *testing.T) {
	method := &ast.MethodDecl{Name: ast.Identifier{Simple: "DoWork"}}
	class := &ast.ClassDecl{
		Name: ast.Identifier{Simple: "Worker"},
		Members: []ast.ClassMember{
			{Kind: ast.MemberMethod, Method: method},
		},
	}
	cu := &ast.CompilationUnit{
		FileScopedNamespace: &ast.FileScopedNamespace{
			Name: ast.Identifier{Simple: "Acme.Jobs"},
			Declarations: []ast.NamespaceMember{
				{Kind: ast.NSClass, Class: class},
			},
		},
	}

	require.Equal(t, "Acme.Jobs.Worker", Class(cu, class))
	require.Equal(t, "Acme.Jobs.Worker::DoWork", Method(cu, method))
}

func TestNestedClassPath(t *testing.T) {
	inner := &ast.ClassDecl{Name: ast.Identifier{Simple: "Inner"}}
	outer := &ast.ClassDecl{
		Name: ast.Identifier{Simple: "Outer"},
		Members: []ast.ClassMember{
			{Kind: ast.MemberNestedClass, NestedClass: inner},
		},
	}
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{
			{Kind: ast.TopClass, Class: outer},
		},
	}

	require.Equal(t, "Outer", Class(cu, outer))
	require.Equal(t, "Outer.Inner", Class(cu, inner))
}

func TestUnknownDeclarationFallsBackToBareName(t *testing.T) {
	orphan := &ast.ClassDecl{Name: ast.Identifier{Simple: "Orphan"}}
	cu := &ast.CompilationUnit{}

	require.Equal(t, "Orphan", Class(cu, orphan))
}

func TestNamespacePath(t *testing.T) {
	inner := &ast.NamespaceDecl{Name: ast.Identifier{Simple: "Inner"}}
	outer := &ast.NamespaceDecl{
		Name: ast.Identifier{Simple: "Outer"},
		Declarations: []ast.NamespaceMember{
			{Kind: ast.NSNamespace, Namespace: inner},
		},
	}
	cu := &ast.CompilationUnit{
		Declarations: []ast.TopLevelDeclaration{
			{Kind: ast.TopNamespace, Namespace: outer},
		},
	}

	require.Equal(t, "Outer", Namespace(cu, outer))
	require.Equal(t, "Outer.Inner", Namespace(cu, inner))
}
