// Package fqn computes fully-qualified names for methods, classes and
// namespaces by walking the owning compilation unit and matching the
// target declaration by pointer identity (spec.md §4.7).
package fqn

import "github.com/flanksource/bsharp-analyzer/ast"

// Method returns "<NS?>.<ClassPath>::<MethodName>" for a method declared
// inside cu, falling back to the bare method name if the lookup fails.
func Method(cu *ast.CompilationUnit, method *ast.MethodDecl) string {
	if cu.FileScopedNamespace != nil {
		if cfqn, name, ok := findMethodInMembers(cu.FileScopedNamespace.Name.Name(), cu.FileScopedNamespace.Declarations, method, nil); ok {
			return cfqn + "::" + name
		}
	}
	for _, decl := range cu.Declarations {
		switch decl.Kind {
		case ast.TopNamespace:
			if cfqn, name, ok := findMethodInMembers(decl.Namespace.Name.Name(), decl.Namespace.Declarations, method, nil); ok {
				return cfqn + "::" + name
			}
		case ast.TopClass, ast.TopStruct, ast.TopInterface, ast.TopRecord:
			if cfqn, name, ok := findMethodInClass("", decl.Class, method, nil); ok {
				return cfqn + "::" + name
			}
		}
	}
	return method.Name.Name()
}

// Class returns "<NS?>.<ClassPath>" for a class declared inside cu,
// falling back to the bare class name if the lookup fails.
func Class(cu *ast.CompilationUnit, class *ast.ClassDecl) string {
	if cu.FileScopedNamespace != nil {
		if cfqn, ok := findClassInMembers(cu.FileScopedNamespace.Name.Name(), cu.FileScopedNamespace.Declarations, class, nil); ok {
			return cfqn
		}
	}
	for _, decl := range cu.Declarations {
		switch decl.Kind {
		case ast.TopNamespace:
			if cfqn, ok := findClassInMembers(decl.Namespace.Name.Name(), decl.Namespace.Declarations, class, nil); ok {
				return cfqn
			}
		case ast.TopClass, ast.TopStruct, ast.TopInterface, ast.TopRecord:
			if cfqn, ok := findClassPath("", decl.Class, class, nil); ok {
				return cfqn
			}
		}
	}
	return class.Name.Name()
}

// Namespace returns the dot-joined namespace path from root down to ns,
// falling back to ns's own name if the lookup fails.
func Namespace(cu *ast.CompilationUnit, ns *ast.NamespaceDecl) string {
	if cu.FileScopedNamespace != nil {
		if path, ok := findNamespacePath(cu.FileScopedNamespace.Name.Name(), cu.FileScopedNamespace.Declarations, ns); ok {
			return path
		}
	}
	for _, decl := range cu.Declarations {
		if decl.Kind != ast.TopNamespace {
			continue
		}
		top := decl.Namespace
		seg := top.Name.Name()
		if top == ns {
			return seg
		}
		if path, ok := findNamespacePath(seg, top.Declarations, ns); ok {
			return path
		}
	}
	return ns.Name.Name()
}

func join(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

func findNamespacePath(prefix string, members []ast.NamespaceMember, target *ast.NamespaceDecl) (string, bool) {
	for _, m := range members {
		if m.Kind != ast.NSNamespace {
			continue
		}
		inner := m.Namespace
		seg := inner.Name.Name()
		next := join(prefix, seg)
		if inner == target {
			return next, true
		}
		if path, ok := findNamespacePath(next, inner.Declarations, target); ok {
			return path, true
		}
	}
	return "", false
}

func findClassInMembers(nsPath string, members []ast.NamespaceMember, target *ast.ClassDecl, stack []string) (string, bool) {
	for _, m := range members {
		switch m.Kind {
		case ast.NSNamespace:
			next := join(nsPath, m.Namespace.Name.Name())
			if cfqn, ok := findClassInMembers(next, m.Namespace.Declarations, target, stack); ok {
				return cfqn, true
			}
		case ast.NSClass, ast.NSStruct, ast.NSInterface, ast.NSRecord:
			if cfqn, ok := findClassPath(nsPath, m.Class, target, stack); ok {
				return cfqn, true
			}
		}
	}
	return "", false
}

func findClassPath(nsPath string, class, target *ast.ClassDecl, stack []string) (string, bool) {
	stack = append(stack, class.Name.Name())
	for _, member := range class.Members {
		if member.Kind == ast.MemberNestedClass || member.Kind == ast.MemberNestedStruct ||
			member.Kind == ast.MemberNestedInterface || member.Kind == ast.MemberNestedRecord {
			if path, ok := findClassPath(nsPath, member.NestedClass, target, stack); ok {
				return path, true
			}
		}
	}
	classPath := joinAll(stack)
	if class == target {
		return join(nsPath, classPath), true
	}
	return "", false
}

func findMethodInMembers(nsPath string, members []ast.NamespaceMember, target *ast.MethodDecl, stack []string) (string, string, bool) {
	for _, m := range members {
		switch m.Kind {
		case ast.NSNamespace:
			next := join(nsPath, m.Namespace.Name.Name())
			if cfqn, name, ok := findMethodInMembers(next, m.Namespace.Declarations, target, stack); ok {
				return cfqn, name, true
			}
		case ast.NSClass, ast.NSStruct, ast.NSInterface, ast.NSRecord:
			if cfqn, name, ok := findMethodInClass(nsPath, m.Class, target, stack); ok {
				return cfqn, name, true
			}
		}
	}
	return "", "", false
}

func findMethodInClass(nsPath string, class *ast.ClassDecl, target *ast.MethodDecl, stack []string) (string, string, bool) {
	stack = append(stack, class.Name.Name())
	for _, member := range class.Members {
		switch member.Kind {
		case ast.MemberMethod:
			if member.Method == target {
				return join(nsPath, joinAll(stack)), target.Name.Name(), true
			}
		case ast.MemberNestedClass, ast.MemberNestedStruct, ast.MemberNestedInterface, ast.MemberNestedRecord:
			if cfqn, name, ok := findMethodInClass(nsPath, member.NestedClass, target, stack); ok {
				return cfqn, name, true
			}
		}
	}
	return "", "", false
}

func joinAll(parts []string) string {
	out := ""
	for i, p := range parts {
		if i == 0 {
			out = p
		} else {
			out += "." + p
		}
	}
	return out
}
