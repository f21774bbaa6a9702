package ast

import "github.com/flanksource/bsharp-analyzer/session"

// Visitor observes a NodeRef as the walker enters and leaves it. Visitors
// never fail: a visitor that wants to report a problem emits a diagnostic
// through session instead of returning an error.
type Visitor interface {
	Enter(node NodeRef, sess *session.Session)
	Exit(node NodeRef, sess *session.Session)
}

// Walker performs one pre-order traversal of a CompilationUnit, fusing an
// arbitrary number of registered visitors into a single pass over the tree.
type Walker struct {
	visitors []Visitor
}

// NewWalker returns an empty walker; visitors are added with WithVisitor.
func NewWalker() *Walker {
	return &Walker{}
}

// WithVisitor registers a visitor and returns the walker for chaining.
func (w *Walker) WithVisitor(v Visitor) *Walker {
	w.visitors = append(w.visitors, v)
	return w
}

// Run drives one traversal of cu, invoking every visitor's Enter then
// descending, then invoking every visitor's Exit in reverse registration
// order. It never returns an error; recovery is each visitor's own concern.
func (w *Walker) Run(cu *CompilationUnit, sess *session.Session) {
	if cu == nil {
		return
	}
	root := NodeRef{Kind: RefCompilationUnit, Unit: cu}
	w.enter(root, sess)
	defer w.exit(root, sess)

	if cu.FileScopedNamespace != nil {
		nsRef := NodeRef{Kind: RefNamespace, Namespace: &NamespaceRefData{
			Name: cu.FileScopedNamespace.Name.Name(),
			File: cu.FileScopedNamespace,
		}}
		w.enter(nsRef, sess)
		for _, m := range cu.FileScopedNamespace.Declarations {
			w.walkNamespaceMember(m, nsRef.Namespace.Name, sess)
		}
		w.exit(nsRef, sess)
	}

	for _, decl := range cu.Declarations {
		switch decl.Kind {
		case TopNamespace:
			w.walkNamespace(decl.Namespace, "", sess)
		case TopClass, TopStruct, TopInterface, TopRecord:
			w.walkClass(decl.Class, "", nil, sess)
		default:
			// Enum/Delegate are not hosts for further analysis; passes read
			// them directly from the compilation unit's declaration list.
		}
	}
}

func (w *Walker) walkNamespace(ns *NamespaceDecl, parentPath string, sess *session.Session) {
	if ns == nil {
		return
	}
	path := ns.Name.Name()
	if parentPath != "" {
		path = parentPath + "." + path
	}
	ref := NodeRef{Kind: RefNamespace, Namespace: &NamespaceRefData{Name: path, Decl: ns}}
	w.enter(ref, sess)
	for _, m := range ns.Declarations {
		w.walkNamespaceMember(m, path, sess)
	}
	w.exit(ref, sess)
}

func (w *Walker) walkNamespaceMember(m NamespaceMember, nsPath string, sess *session.Session) {
	switch m.Kind {
	case NSNamespace:
		w.walkNamespace(m.Namespace, nsPath, sess)
	case NSClass, NSStruct, NSInterface, NSRecord:
		w.walkClass(m.Class, nsPath, nil, sess)
	}
}

func (w *Walker) walkClass(c *ClassDecl, nsPath string, classPath []string, sess *session.Session) {
	if c == nil {
		return
	}
	path := append(append([]string{}, classPath...), c.Name.Name())
	ref := NodeRef{Kind: RefClass, Class: &ClassRefData{Decl: c, NamespacePath: nsPath, ClassPath: path}}
	w.enter(ref, sess)

	for _, member := range c.Members {
		switch member.Kind {
		case MemberMethod, MemberOperator:
			w.walkMethod(member.Method, *ref.Class, sess)
		case MemberConstructor:
			if member.Constructor != nil && member.Constructor.Body != nil {
				w.walkBlockAsStatement(*member.Constructor.Body, sess)
			}
		case MemberDestructor:
			if member.Destructor != nil && member.Destructor.Body != nil {
				w.walkBlockAsStatement(*member.Destructor.Body, sess)
			}
		case MemberNestedClass, MemberNestedStruct, MemberNestedInterface, MemberNestedRecord:
			w.walkClass(member.NestedClass, nsPath, path, sess)
		default:
			// Field/Property/Event/Indexer are observed directly from c by passes.
		}
	}

	w.exit(ref, sess)
}

func (w *Walker) walkMethod(m *MethodDecl, owner ClassRefData, sess *session.Session) {
	if m == nil {
		return
	}
	ref := NodeRef{Kind: RefMethod, Method: &MethodRefData{Decl: m, Owner: owner}}
	w.enter(ref, sess)
	if m.Body != nil {
		w.walkBlockAsStatement(*m.Body, sess)
	}
	w.exit(ref, sess)
}

// walkBlockAsStatement descends into a block's statements without emitting a
// NodeRef for the block itself; blocks are transparent containers (§4.1).
func (w *Walker) walkBlockAsStatement(b BlockStatement, sess *session.Session) {
	for _, stmt := range b.Statements {
		w.walkStatement(stmt, sess)
	}
}

func (w *Walker) walkStatement(s Statement, sess *session.Session) {
	ref := NodeRef{Kind: RefStatement, Statement: &s}
	w.enter(ref, sess)

	switch s.Kind {
	case StmtBlock:
		if s.Block != nil {
			w.walkBlockAsStatement(*s.Block, sess)
		}
	case StmtIf:
		if s.If != nil {
			w.walkStatement(s.If.Consequence, sess)
			if s.If.Alternative != nil {
				w.walkStatement(*s.If.Alternative, sess)
			}
		}
	case StmtFor:
		if s.For != nil {
			w.walkStatement(s.For.Body, sess)
		}
	case StmtForEach:
		if s.ForEach != nil {
			w.walkStatement(s.ForEach.Body, sess)
		}
	case StmtWhile:
		if s.While != nil {
			w.walkStatement(s.While.Body, sess)
		}
	case StmtDoWhile:
		if s.DoWhile != nil {
			w.walkStatement(s.DoWhile.Body, sess)
		}
	case StmtSwitch:
		if s.Switch != nil {
			for _, section := range s.Switch.Sections {
				for _, stmt := range section.Statements {
					w.walkStatement(stmt, sess)
				}
			}
		}
	case StmtTry:
		if s.Try != nil {
			w.walkBlockAsStatement(s.Try.TryBlock, sess)
			for _, c := range s.Try.Catches {
				w.walkBlockAsStatement(c.Block, sess)
			}
			if s.Try.Finally != nil {
				w.walkBlockAsStatement(s.Try.Finally.Block, sess)
			}
		}
	case StmtUsing:
		if s.Using != nil {
			w.walkStatement(s.Using.Body, sess)
		}
	case StmtLabel:
		if s.Label != nil {
			w.walkStatement(s.Label.Statement, sess)
		}
	case StmtLocalFunction:
		if s.LocalFunc != nil && s.LocalFunc.Body != nil {
			w.walkBlockAsStatement(*s.LocalFunc.Body, sess)
		}
	}

	w.exit(ref, sess)
}

func (w *Walker) enter(n NodeRef, sess *session.Session) {
	for _, v := range w.visitors {
		v.Enter(n, sess)
	}
}

func (w *Walker) exit(n NodeRef, sess *session.Session) {
	for i := len(w.visitors) - 1; i >= 0; i-- {
		w.visitors[i].Exit(n, sess)
	}
}
