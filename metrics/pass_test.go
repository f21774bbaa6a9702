package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/session"
)

func TestMetricsPassCountsTypeAndMemberTotals(t *testing.T) {
	method := &ast.MethodDecl{Name: ast.Identifier{Simple: "DoWork"}, Body: blockOf(ifStmt(emptyStmt(), nil))}
	class := &ast.ClassDecl{
		Name: ast.Identifier{Simple: "Widget"},
		Members: []ast.ClassMember{
			{Kind: ast.MemberMethod, Method: method},
			{Kind: ast.MemberField, Field: &ast.FieldDecl{Name: ast.Identifier{Simple: "count"}, Type: "int"}},
		},
	}
	cu := &ast.CompilationUnit{Declarations: []ast.TopLevelDeclaration{{Kind: ast.TopClass, Class: class}}}

	sess := session.New(session.NewContext("a.cs", "class Widget {}\n", nil), nil)
	NewMetricsPass().Run(cu, sess)

	a, ok := session.GetArtifact[AstAnalysis](sess)
	require.True(t, ok)
	require.Equal(t, 1, a.TotalClasses)
	require.Equal(t, 1, a.TotalMethods)
	require.Equal(t, 1, a.TotalFields)
	require.Equal(t, 1, a.TotalIfStatements)
	require.Equal(t, 2, a.CyclomaticComplexity)
}

func TestControlFlowPassPublishesIndexAndSummary(t *testing.T) {
	method := &ast.MethodDecl{Name: ast.Identifier{Simple: "DoWork"}, Body: blockOf(emptyStmt())}
	class := &ast.ClassDecl{
		Name:    ast.Identifier{Simple: "Widget"},
		Members: []ast.ClassMember{{Kind: ast.MemberMethod, Method: method}},
	}
	cu := &ast.CompilationUnit{Declarations: []ast.TopLevelDeclaration{{Kind: ast.TopClass, Class: class}}}

	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewControlFlowPass().Run(cu, sess)

	index, ok := session.GetArtifact[ControlFlowIndex](sess)
	require.True(t, ok)
	require.Contains(t, index, "Widget::DoWork")

	summary, ok := session.GetArtifact[CfgSummary](sess)
	require.True(t, ok)
	require.Equal(t, 1, summary.TotalMethods)
	require.Zero(t, summary.HighComplexityMethods)
}
