package ast

// NodeRefKind discriminates what a NodeRef points at.
type NodeRefKind int

const (
	RefCompilationUnit NodeRefKind = iota
	RefNamespace
	RefClass
	RefMethod
	RefStatement
)

// NodeRef is a typed, address-stable reference into a single AST, used by
// the walker and by rules/passes in place of a generic interface{} node.
// Only nodes that can host further analysis (compilation units, namespaces,
// classes, methods, statements) are ever wrapped in a NodeRef; other
// declarations (fields, properties, events, ...) are read directly off
// their enclosing class.
type NodeRef struct {
	Kind NodeRefKind

	Unit      *CompilationUnit
	Namespace *NamespaceRefData
	Class     *ClassRefData
	Method    *MethodRefData
	Statement *Statement
}

// NamespaceRefData carries a namespace-like declaration plus the dotted path
// of namespace segments leading to (and including) it, computed by the walker
// as it descends so later consumers need not re-derive it.
type NamespaceRefData struct {
	Name string // dotted path from the root, e.g. "N.Inner"
	Decl *NamespaceDecl
	File *FileScopedNamespace // set instead of Decl for the file-scoped namespace
}

// ClassRefData carries a class-like declaration plus its owner path (namespace
// path, empty if none) and its nested-class name chain.
type ClassRefData struct {
	Decl        *ClassDecl
	NamespacePath string   // "" if the class is not namespaced
	ClassPath     []string // outer-to-inner chain of class names, including this class
}

// MethodRefData carries a method declaration plus the ClassRefData of its
// owner, so FQN computation never needs a second tree search.
type MethodRefData struct {
	Decl  *MethodDecl
	Owner ClassRefData
}

// OfCompilationUnit downcasts to the compilation-unit variant.
func (n NodeRef) OfCompilationUnit() (*CompilationUnit, bool) {
	if n.Kind == RefCompilationUnit {
		return n.Unit, true
	}
	return nil, false
}

// OfNamespace downcasts to the namespace variant.
func (n NodeRef) OfNamespace() (*NamespaceRefData, bool) {
	if n.Kind == RefNamespace {
		return n.Namespace, true
	}
	return nil, false
}

// OfClass downcasts to the class variant.
func (n NodeRef) OfClass() (*ClassRefData, bool) {
	if n.Kind == RefClass {
		return n.Class, true
	}
	return nil, false
}

// OfMethod downcasts to the method variant.
func (n NodeRef) OfMethod() (*MethodRefData, bool) {
	if n.Kind == RefMethod {
		return n.Method, true
	}
	return nil, false
}

// OfStatement downcasts to the statement variant.
func (n NodeRef) OfStatement() (*Statement, bool) {
	if n.Kind == RefStatement {
		return n.Statement, true
	}
	return nil, false
}
