// Package ast defines the in-memory tree the analyzer pipeline walks: a
// compilation unit built from namespaces, type declarations, members and
// statements of a C#-like source file. The tree is produced by an external
// parser (out of scope for this module) and is immutable for the lifetime
// of a session.
package ast

// Modifier is a declaration modifier such as "public", "static", "async".
type Modifier string

// The modifier vocabulary rules match against. Parsers may produce other
// modifier spellings (e.g. "readonly", "partial"); rules that don't
// reference them here simply never match.
const (
	ModPublic    Modifier = "public"
	ModPrivate   Modifier = "private"
	ModProtected Modifier = "protected"
	ModInternal  Modifier = "internal"
	ModStatic    Modifier = "static"
	ModAbstract  Modifier = "abstract"
	ModVirtual   Modifier = "virtual"
	ModOverride  Modifier = "override"
	ModSealed    Modifier = "sealed"
	ModAsync     Modifier = "async"
	ModConst     Modifier = "const"
	ModReadonly  Modifier = "readonly"
	ModPartial   Modifier = "partial"
)

// Attribute is a bare attribute annotation, e.g. "[Obsolete]" -> "Obsolete".
type Attribute struct {
	Name string
	Args []string
}

// Identifier models the three identifier shapes the grammar allows.
type Identifier struct {
	Simple   string   // non-empty for a bare name
	Parts    []string // non-empty for a dotted/qualified name
	Operator string   // non-empty for an overridden operator symbol
}

// Name returns the identifier's display form regardless of shape.
func (id Identifier) Name() string {
	switch {
	case id.Operator != "":
		return "operator" + id.Operator
	case len(id.Parts) > 0:
		joined := id.Parts[0]
		for _, p := range id.Parts[1:] {
			joined += "." + p
		}
		return joined
	default:
		return id.Simple
	}
}

// UsingKind distinguishes the directive flavors the grammar allows.
type UsingKind int

const (
	UsingPlain UsingKind = iota
	UsingStatic
	UsingGlobal
)

// UsingDirective is one `using ...;` line.
type UsingDirective struct {
	Kind      UsingKind
	Namespace Identifier
	Alias     string // non-empty for `using X = Y;`
}

// CompilationUnit is the AST root for one source file.
type CompilationUnit struct {
	Usings              []UsingDirective
	GlobalAttributes    []Attribute
	FileScopedNamespace *FileScopedNamespace
	Declarations        []TopLevelDeclaration
	TopLevelStatements  []Statement
}

// FileScopedNamespace is a `namespace N;` header with its own using list and members.
type FileScopedNamespace struct {
	Name         Identifier
	Usings       []UsingDirective
	Declarations []NamespaceMember
}

// TopLevelKind discriminates TopLevelDeclaration variants.
type TopLevelKind int

const (
	TopNamespace TopLevelKind = iota
	TopClass
	TopStruct
	TopInterface
	TopEnum
	TopRecord
	TopDelegate
)

// TopLevelDeclaration is a tagged union over the grammar's top-level items.
type TopLevelDeclaration struct {
	Kind      TopLevelKind
	Namespace *NamespaceDecl // Kind == TopNamespace
	Class     *ClassDecl     // Kind == TopClass / TopStruct / TopInterface / TopRecord
	Enum      *EnumDecl      // Kind == TopEnum
	Delegate  *DelegateDecl  // Kind == TopDelegate
}

// NamespaceDecl is a block-scoped `namespace N { ... }`.
type NamespaceDecl struct {
	Name         Identifier
	Usings       []UsingDirective
	Declarations []NamespaceMember
}

// NamespaceMemberKind discriminates NamespaceMember variants.
type NamespaceMemberKind int

const (
	NSNamespace NamespaceMemberKind = iota
	NSClass
	NSStruct
	NSInterface
	NSEnum
	NSRecord
	NSDelegate
)

// NamespaceMember mirrors TopLevelDeclaration but nested one level inside a namespace.
type NamespaceMember struct {
	Kind      NamespaceMemberKind
	Namespace *NamespaceDecl
	Class     *ClassDecl
	Enum      *EnumDecl
	Delegate  *DelegateDecl
}

// TypeKind distinguishes a ClassDecl's surface form; the fields below are
// shared because class/struct/interface/record all host the same member shapes.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindRecord
)

// ClassDecl is a class/struct/interface/record declaration (and, recursively,
// a NestedClass/NestedStruct/NestedInterface/NestedRecord member).
type ClassDecl struct {
	TypeKind    TypeKind
	Name        Identifier
	Modifiers   []Modifier
	Attributes  []Attribute
	BaseTypes   []Identifier // first entry is the base class, rest are interfaces (convention, not enforced)
	IsSealed    bool
	IsAbstract  bool
	Members     []ClassMember
}

// HasBase reports whether the declaration lists a base type at all (base
// class or implemented interfaces both count at the grammar level; callers
// that care about "base class present" should inspect BaseTypes[0] via a
// semantic pass, since this AST does not resolve which entry is a class).
func (c *ClassDecl) HasBase() bool { return len(c.BaseTypes) > 0 }

// ClassMemberKind discriminates ClassMember variants.
type ClassMemberKind int

const (
	MemberMethod ClassMemberKind = iota
	MemberConstructor
	MemberDestructor
	MemberProperty
	MemberField
	MemberEvent
	MemberIndexer
	MemberOperator
	MemberNestedClass
	MemberNestedStruct
	MemberNestedInterface
	MemberNestedEnum
	MemberNestedRecord
)

// ClassMember is a tagged union over everything that can appear in a class/struct/interface/record body.
type ClassMember struct {
	Kind        ClassMemberKind
	Method      *MethodDecl      // Kind in {MemberMethod, MemberOperator}
	Constructor *ConstructorDecl // Kind == MemberConstructor
	Destructor  *DestructorDecl  // Kind == MemberDestructor
	Property    *PropertyDecl    // Kind in {MemberProperty, MemberIndexer}
	Field       *FieldDecl       // Kind == MemberField
	Event       *EventDecl       // Kind == MemberEvent
	NestedClass *ClassDecl       // Kind in {MemberNestedClass, MemberNestedStruct, MemberNestedInterface, MemberNestedRecord}
	NestedEnum  *EnumDecl        // Kind == MemberNestedEnum
}

// Parameter is a method/constructor/indexer parameter.
type Parameter struct {
	Name string
	Type string
}

// MethodDecl covers both ordinary methods and operator overloads (Name.Operator set for the latter).
type MethodDecl struct {
	Name       Identifier
	Modifiers  []Modifier
	Attributes []Attribute
	Parameters []Parameter
	ReturnType string
	Body       *BlockStatement // nil for abstract/interface methods
	IsAsync    bool
}

// ConstructorDecl is a class/struct constructor, including static constructors.
// Name is carried separately from the enclosing ClassDecl's name because the
// grammar allows a constructor declarator to spell a different identifier,
// which semantic.ctor.name_matches_class then flags as a mismatch.
type ConstructorDecl struct {
	Name            Identifier
	Modifiers       []Modifier
	Parameters      []Parameter
	IsStatic        bool
	InitializerKind string // "" | "base" | "this"
	InitializerArgs []string
	Body            *BlockStatement
}

// DestructorDecl is a finalizer `~ClassName() { ... }`.
type DestructorDecl struct {
	Body *BlockStatement
}

// PropertyDecl covers properties and indexers (IsIndexer set for the latter).
type PropertyDecl struct {
	Name       Identifier
	Type       string
	Modifiers  []Modifier
	Attributes []Attribute
	HasGetter  bool
	HasSetter  bool
	IsIndexer  bool
	Parameters []Parameter // indexer parameters only
}

// FieldDecl is a field or a const field (IsConst true).
type FieldDecl struct {
	Name       Identifier
	Type       string
	Modifiers  []Modifier
	Attributes []Attribute
	IsConst    bool
}

// EventDecl is an event member.
type EventDecl struct {
	Name       Identifier
	Type       string
	Modifiers  []Modifier
	Attributes []Attribute
}

// EnumDecl is an enum declaration (top-level, namespace member, or nested).
type EnumDecl struct {
	Name       Identifier
	Modifiers  []Modifier
	Attributes []Attribute
	Members    []string
}

// DelegateDecl is a delegate type declaration.
type DelegateDecl struct {
	Name       Identifier
	Modifiers  []Modifier
	ReturnType string
	Parameters []Parameter
}
