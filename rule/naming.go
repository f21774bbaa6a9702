package rule

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	c := rune(name[0])
	if c < 'A' || c > 'Z' {
		return false
	}
	return !containsRune(name, '_')
}

func isCamelCase(name string) bool {
	if name == "" {
		return false
	}
	c := rune(name[0])
	if c < 'a' || c > 'z' {
		return false
	}
	return !containsRune(name, '_')
}

func isUpperCaseConstant(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return true
}

func isInterfacePascalCase(name string) bool {
	if len(name) < 2 || name[0] != 'I' {
		return false
	}
	c := rune(name[1])
	if c < 'A' || c > 'Z' {
		return false
	}
	return !containsRune(name, '_')
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func hasModifier(mods []ast.Modifier, name ast.Modifier) bool {
	for _, m := range mods {
		if m == name {
			return true
		}
	}
	return false
}

// forEachClass walks a compilation unit's top-level declarations and nested
// classes, invoking fn on every class/struct/interface/record declaration.
// Naming rules anchor on the compilation-unit NodeRef and re-derive their own
// traversal rather than reacting incrementally to the fused walker's
// per-node stream (spec.md §4.4: "most rules anchor on the compilation-unit node").
func forEachClass(cu *ast.CompilationUnit, fn func(c *ast.ClassDecl)) {
	var walkClass func(c *ast.ClassDecl)
	walkClass = func(c *ast.ClassDecl) {
		fn(c)
		for _, m := range c.Members {
			if m.NestedClass != nil {
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
		}
	}
}

func warnf(sess *session.Session, code diagnostic.Code, format string, args ...any) {
	diagnostic.New(code).WithMessage(fmt.Sprintf(format, args...)).Emit(sess)
}

// NamingRuleSet is the "naming" local rule-set from spec.md §4.4.
var NamingRuleSet = NewSet("naming", "local",
	NewFunc("naming.class_pascal_case", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			name := c.Name.Name()
			if c.TypeKind == ast.KindInterface {
				return // covered by naming.interface_i_pascal_case
			}
			if !isPascalCase(name) {
				warnf(sess, diagnostic.CodeNamingClass, "Type '%s' should be PascalCase", name)
			}
		})
	}),
	NewFunc("naming.interface_i_pascal_case", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindInterface {
				return
			}
			name := c.Name.Name()
			if !isInterfacePascalCase(name) {
				warnf(sess, diagnostic.CodeNamingInterface, "Interface '%s' should be named I<PascalCase>", name)
			}
		})
	}),
	NewFunc("naming.method_pascal_case", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			for _, m := range c.Members {
				if m.Kind != ast.MemberMethod || m.Method == nil {
					continue
				}
				name := m.Method.Name.Name()
				if !isPascalCase(name) {
					warnf(sess, diagnostic.CodeNamingMethod, "Method '%s' should be PascalCase", name)
				}
			}
		})
	}),
	NewFunc("naming.property_pascal_case", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			for _, m := range c.Members {
				if m.Kind != ast.MemberProperty || m.Property == nil {
					continue
				}
				name := m.Property.Name.Name()
				if !isPascalCase(name) {
					warnf(sess, diagnostic.CodeNamingProperty, "Property '%s' should be PascalCase", name)
				}
			}
		})
	}),
	NewFunc("naming.field_camel_or_const_upper", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			for _, m := range c.Members {
				if m.Kind != ast.MemberField || m.Field == nil {
					continue
				}
				name := m.Field.Name.Name()
				if m.Field.IsConst {
					if !isUpperCaseConstant(name) {
						warnf(sess, diagnostic.CodeNamingConstant, "Constant '%s' should be UPPER_CASE", name)
					}
				} else if !isCamelCase(name) {
					warnf(sess, diagnostic.CodeNamingField, "Field '%s' should be camelCase", name)
				}
			}
		})
	}),
	NewFunc("naming.parameter_camel_case", "Naming", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			for _, m := range c.Members {
				if m.Kind != ast.MemberMethod || m.Method == nil {
					continue
				}
				for _, p := range m.Method.Parameters {
					if !isCamelCase(p.Name) {
						warnf(sess, diagnostic.CodeNamingParameter, "Parameter '%s' should be camelCase", p.Name)
					}
				}
			}
		})
	}),
)
