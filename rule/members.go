package rule

import (
	"strings"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func forEachCtor(c *ast.ClassDecl, fn func(ctor *ast.ConstructorDecl)) {
	for _, m := range c.Members {
		if m.Kind == ast.MemberConstructor && m.Constructor != nil {
			fn(m.Constructor)
		}
	}
}

func forEachMethod(c *ast.ClassDecl, fn func(m *ast.MethodDecl)) {
	for _, member := range c.Members {
		if member.Kind == ast.MemberMethod && member.Method != nil {
			fn(member.Method)
		}
	}
}

// isAccessModifier matches the original's "public|private|protected|internal|file"
// set. This model has no separate "file" modifier, so it is omitted.
func isAccessModifier(m ast.Modifier) bool {
	switch m {
	case ast.ModPublic, ast.ModPrivate, ast.ModProtected, ast.ModInternal:
		return true
	default:
		return false
	}
}

func hasAnyAccessModifier(mods []ast.Modifier) bool {
	for _, m := range mods {
		if isAccessModifier(m) {
			return true
		}
	}
	return false
}

func validAsyncReturn(returnType string) bool {
	t := strings.TrimSpace(returnType)
	if t == "void" {
		return true
	}
	if t == "Task" {
		return true
	}
	return strings.HasPrefix(t, "Task<") && strings.HasSuffix(t, ">")
}

// MemberRuleSet is the "semantic members" rule-set from spec.md §4.4: the
// constructor-related and method/accessor shape checks that run in the
// semantic rule-family traversal, between the Global and Semantic phases.
var MemberRuleSet = NewSet("members", "semantic",
	NewFunc("semantic.ctor.no_async", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				if hasModifier(ctor.Modifiers, ast.ModAsync) {
					warnf(sess, diagnostic.CodeCtorNoAsync, "Constructor cannot be async")
				}
			})
		})
	}),
	NewFunc("semantic.ctor.no_virtual_or_abstract", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				if hasModifier(ctor.Modifiers, ast.ModVirtual) || hasModifier(ctor.Modifiers, ast.ModAbstract) {
					warnf(sess, diagnostic.CodeCtorNoVirtualOrAbstract, "Constructor cannot be virtual or abstract")
				}
			})
		})
	}),
	NewFunc("semantic.ctor.name_matches_class", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			className := c.Name.Name()
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				ctorName := ctor.Name.Name()
				if ctorName != className {
					warnf(sess, diagnostic.CodeCtorNameMismatch,
						"Constructor name '%s' does not match class name '%s'", ctorName, className)
				}
			})
		})
	}),
	NewFunc("semantic.ctor.invalid_base_call", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				if ctor.InitializerKind == "base" && !c.HasBase() {
					warnf(sess, diagnostic.CodeCtorInvalidBaseCall, "Constructor calls base(...) but the class has no base type")
				}
			})
		})
	}),
	NewFunc("semantic.ctor.no_override", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass && c.TypeKind != ast.KindStruct {
				return
			}
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				if hasModifier(ctor.Modifiers, ast.ModOverride) {
					warnf(sess, diagnostic.CodeCtorNoOverride, "Constructor cannot be override")
				}
			})
		})
	}),
	NewFunc("semantic.ctor.static_no_access_modifiers", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachCtor(c, func(ctor *ast.ConstructorDecl) {
				if hasModifier(ctor.Modifiers, ast.ModStatic) && hasAnyAccessModifier(ctor.Modifiers) {
					warnf(sess, diagnostic.CodeStaticCtorAccessModifier, "Static constructor cannot have an access modifier")
				}
			})
		})
	}),
	NewFunc("semantic.method.no_abstract_body", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if hasModifier(m.Modifiers, ast.ModAbstract) && m.Body != nil {
					warnf(sess, diagnostic.CodeMethodNoAbstractBody, "Abstract method '%s' cannot have a body", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.method.must_have_body_unless_abstract", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if !hasModifier(m.Modifiers, ast.ModAbstract) && m.Body == nil {
					warnf(sess, diagnostic.CodeMethodBodyRequired, "Method '%s' must have a body unless it is abstract", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.class.sealed_no_virtual_methods", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass || !hasModifier(c.Modifiers, ast.ModSealed) {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if hasModifier(m.Modifiers, ast.ModVirtual) {
					warnf(sess, diagnostic.CodeSealedClassNoVirtualMethods, "Sealed class cannot declare virtual method '%s'", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.method.no_static_virtual", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if hasModifier(m.Modifiers, ast.ModStatic) && hasModifier(m.Modifiers, ast.ModVirtual) {
					warnf(sess, diagnostic.CodeMethodNoStaticVirtual, "Method '%s' cannot be both static and virtual", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.method.no_static_override", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if hasModifier(m.Modifiers, ast.ModStatic) && hasModifier(m.Modifiers, ast.ModOverride) {
					warnf(sess, diagnostic.CodeMethodNoStaticOverride, "Method '%s' cannot be both static and override", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.interface.methods_no_body", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindInterface {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if m.Body != nil {
					warnf(sess, diagnostic.CodeInterfaceMethodsNoBody, "Interface method '%s' cannot have a body", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.async.returns_task_or_task_t", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				if hasModifier(m.Modifiers, ast.ModAsync) && !validAsyncReturn(m.ReturnType) {
					warnf(sess, diagnostic.CodeAsyncReturnsTask, "Async method '%s' must return Task or Task<T>", m.Name.Name())
				}
			})
		})
	}),
	NewFunc("semantic.method.param_names_unique", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass && c.TypeKind != ast.KindStruct && c.TypeKind != ast.KindInterface {
				return
			}
			forEachMethod(c, func(m *ast.MethodDecl) {
				seen := map[string]bool{}
				for _, p := range m.Parameters {
					if seen[p.Name] {
						warnf(sess, diagnostic.CodeMethodParamNamesNotUnique, "Method '%s' has duplicate parameter name '%s'", m.Name.Name(), p.Name)
						return
					}
					seen[p.Name] = true
				}
			})
		})
	}),
	NewFunc("semantic.interface.members_no_private", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindInterface {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModPrivate) {
					warnf(sess, diagnostic.CodeInterfaceAccess, "Interface member '%s' cannot be private", name)
				}
			}
		})
	}),
	NewFunc("semantic.struct.members_no_protected", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindStruct {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModProtected) {
					warnf(sess, diagnostic.CodeStructAccess, "Struct member '%s' cannot be protected", name)
				}
			}
		})
	}),
	NewFunc("semantic.members.abstract_no_private", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModAbstract) && hasModifier(mods, ast.ModPrivate) {
					warnf(sess, diagnostic.CodeAbstractNonPrivate, "Abstract member '%s' cannot be private", name)
				}
			}
		})
	}),
	NewFunc("semantic.members.virtual_no_private", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModVirtual) && hasModifier(mods, ast.ModPrivate) {
					warnf(sess, diagnostic.CodeVirtualNonPrivate, "Virtual member '%s' cannot be private", name)
				}
			}
		})
	}),
	NewFunc("semantic.members.sealed_only_on_overrides", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModSealed) && !hasModifier(mods, ast.ModOverride) {
					warnf(sess, diagnostic.CodeSealedOnlyOnOverride, "Sealed member '%s' must also be an override", name)
				}
			}
		})
	}),
	NewFunc("semantic.members.abstract_only_in_abstract_class", "Semantic", func(node ast.NodeRef, sess *session.Session) {
		cu, ok := node.OfCompilationUnit()
		if !ok {
			return
		}
		forEachClass(cu, func(c *ast.ClassDecl) {
			if c.TypeKind != ast.KindClass || hasModifier(c.Modifiers, ast.ModAbstract) {
				return
			}
			for _, member := range c.Members {
				mods, name := memberModifiersAndName(member)
				if mods == nil {
					continue
				}
				if hasModifier(mods, ast.ModAbstract) {
					warnf(sess, diagnostic.CodeAbstractOnlyInAbstract, "Member '%s' cannot be abstract outside an abstract class", name)
				}
			}
		})
	}),
)

// memberModifiersAndName extracts the modifier list and display name for the
// member kinds the original rule set inspects (method, property, field,
// event, indexer, constructor, operator). Nested type members and
// destructors return (nil, "").
func memberModifiersAndName(m ast.ClassMember) ([]ast.Modifier, string) {
	switch m.Kind {
	case ast.MemberMethod, ast.MemberOperator:
		if m.Method == nil {
			return nil, ""
		}
		return m.Method.Modifiers, m.Method.Name.Name()
	case ast.MemberProperty, ast.MemberIndexer:
		if m.Property == nil {
			return nil, ""
		}
		return m.Property.Modifiers, m.Property.Name.Name()
	case ast.MemberField:
		if m.Field == nil {
			return nil, ""
		}
		return m.Field.Modifiers, m.Field.Name.Name()
	case ast.MemberEvent:
		if m.Event == nil {
			return nil, ""
		}
		return m.Event.Modifiers, m.Event.Name.Name()
	case ast.MemberConstructor:
		if m.Constructor == nil {
			return nil, ""
		}
		return m.Constructor.Modifiers, m.Constructor.Name.Name()
	default:
		return nil, ""
	}
}
