package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/session"
)

type recordingVisitor struct {
	entered []string
	exited  []string
}

func (v *recordingVisitor) Enter(n NodeRef, sess *session.Session) {
	v.entered = append(v.entered, describe(n))
}

func (v *recordingVisitor) Exit(n NodeRef, sess *session.Session) {
	v.exited = append(v.exited, describe(n))
}

func describe(n NodeRef) string {
	switch n.Kind {
	case RefCompilationUnit:
		return "cu"
	case RefNamespace:
		return "ns:" + n.Namespace.Name
	case RefClass:
		return "class:" + n.Class.Decl.Name.Name()
	case RefMethod:
		return "method:" + n.Method.Decl.Name.Name()
	case RefStatement:
		return "stmt"
	default:
		return "?"
	}
}

func TestWalkerVisitsCompilationUnitFirstAndLast(t *testing.T) {
	v := &recordingVisitor{}
	cu := &CompilationUnit{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)

	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu"}, v.entered)
	require.Equal(t, []string{"cu"}, v.exited)
}

func TestWalkerDescendsIntoFileScopedNamespaceAndClass(t *testing.T) {
	class := &ClassDecl{Name: Identifier{Simple: "Widget"}}
	cu := &CompilationUnit{
		FileScopedNamespace: &FileScopedNamespace{
			Name: Identifier{Simple: "N"},
			Declarations: []NamespaceMember{
				{Kind: NSClass, Class: class},
			},
		},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu", "ns:N", "class:Widget"}, v.entered)
	require.Equal(t, []string{"class:Widget", "ns:N", "cu"}, v.exited)
}

func TestWalkerBuildsDottedNamespacePathForNestedNamespaces(t *testing.T) {
	inner := &NamespaceDecl{
		Name: Identifier{Simple: "Inner"},
		Declarations: []NamespaceMember{
			{Kind: NSClass, Class: &ClassDecl{Name: Identifier{Simple: "Widget"}}},
		},
	}
	outer := &NamespaceDecl{
		Name:         Identifier{Simple: "Outer"},
		Declarations: []NamespaceMember{{Kind: NSNamespace, Namespace: inner}},
	}
	cu := &CompilationUnit{
		Declarations: []TopLevelDeclaration{{Kind: TopNamespace, Namespace: outer}},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu", "ns:Outer", "ns:Outer.Inner", "class:Widget"}, v.entered)
}

func TestWalkerDescendsIntoNestedClassesAndMethods(t *testing.T) {
	method := &MethodDecl{Name: Identifier{Simple: "DoWork"}}
	nested := &ClassDecl{
		Name:    Identifier{Simple: "Inner"},
		Members: []ClassMember{{Kind: MemberMethod, Method: method}},
	}
	outer := &ClassDecl{
		Name: Identifier{Simple: "Outer"},
		Members: []ClassMember{
			{Kind: MemberNestedClass, NestedClass: nested},
		},
	}
	cu := &CompilationUnit{
		Declarations: []TopLevelDeclaration{{Kind: TopClass, Class: outer}},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu", "class:Outer", "class:Inner", "method:DoWork"}, v.entered)
}

func TestWalkerTreatsBlockAsTransparentContainer(t *testing.T) {
	method := &MethodDecl{
		Name: Identifier{Simple: "DoWork"},
		Body: &BlockStatement{
			Statements: []Statement{
				{Kind: StmtReturn, Text: "return;"},
			},
		},
	}
	class := &ClassDecl{
		Name:    Identifier{Simple: "Widget"},
		Members: []ClassMember{{Kind: MemberMethod, Method: method}},
	}
	cu := &CompilationUnit{
		Declarations: []TopLevelDeclaration{{Kind: TopClass, Class: class}},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu", "class:Widget", "method:DoWork", "stmt"}, v.entered)
}

func TestWalkerDescendsIntoIfConsequenceAndAlternative(t *testing.T) {
	method := &MethodDecl{
		Name: Identifier{Simple: "DoWork"},
		Body: &BlockStatement{
			Statements: []Statement{
				{
					Kind: StmtIf,
					If: &IfStatement{
						Consequence: Statement{Kind: StmtReturn, Text: "return 1;"},
						Alternative: &Statement{Kind: StmtReturn, Text: "return 2;"},
					},
				},
			},
		},
	}
	class := &ClassDecl{
		Name:    Identifier{Simple: "Widget"},
		Members: []ClassMember{{Kind: MemberMethod, Method: method}},
	}
	cu := &CompilationUnit{
		Declarations: []TopLevelDeclaration{{Kind: TopClass, Class: class}},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	// the if statement itself plus its consequence and alternative each emit a stmt node.
	stmtCount := 0
	for _, e := range v.entered {
		if e == "stmt" {
			stmtCount++
		}
	}
	require.Equal(t, 3, stmtCount)
}

func TestWalkerSkipsEnumAndDelegateTopLevelDeclarations(t *testing.T) {
	cu := &CompilationUnit{
		Declarations: []TopLevelDeclaration{
			{Kind: TopEnum, Enum: &EnumDecl{Name: Identifier{Simple: "Color"}}},
			{Kind: TopDelegate, Delegate: &DelegateDecl{Name: Identifier{Simple: "Handler"}}},
		},
	}

	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(cu, sess)

	require.Equal(t, []string{"cu"}, v.entered)
}

func TestWalkerRunOnNilCompilationUnitIsNoop(t *testing.T) {
	v := &recordingVisitor{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(v).Run(nil, sess)

	require.Empty(t, v.entered)
}

func TestWalkerExitsInReverseVisitorRegistrationOrder(t *testing.T) {
	var order []string
	first := &orderVisitor{name: "first", order: &order}
	second := &orderVisitor{name: "second", order: &order}

	cu := &CompilationUnit{}
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	NewWalker().WithVisitor(first).WithVisitor(second).Run(cu, sess)

	require.Equal(t, []string{"enter:first", "enter:second", "exit:second", "exit:first"}, order)
}

type orderVisitor struct {
	name  string
	order *[]string
}

func (v *orderVisitor) Enter(NodeRef, *session.Session) { *v.order = append(*v.order, "enter:"+v.name) }
func (v *orderVisitor) Exit(NodeRef, *session.Session)  { *v.order = append(*v.order, "exit:"+v.name) }
