// Package index implements the Index-phase symbol indexing pass (spec.md
// §4.6): SymbolIndex, NameIndex and FqnMap, built by one recursive walk over
// namespaces and classes.
package index

import (
	"github.com/samber/lo"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// SymbolKind classifies a SymbolIndex entry.
type SymbolKind int

const (
	SymbolNamespace SymbolKind = iota
	SymbolClass
	SymbolStruct
	SymbolInterface
	SymbolRecord
	SymbolEnum
	SymbolDelegate
	SymbolMethod
)

// Symbol is one SymbolIndex entry.
type Symbol struct {
	Name string
	Kind SymbolKind
	FQN  string
	File string
}

// SymbolIndex is the set of symbols declared in one file.
type SymbolIndex struct {
	Entries []Symbol
}

func (idx *SymbolIndex) insert(name string, kind SymbolKind, fqn, file string) {
	idx.Entries = append(idx.Entries, Symbol{Name: name, Kind: kind, FQN: fqn, File: file})
}

// NameIndex maps a simple name to its occurrence count across the file.
type NameIndex map[string]int

func (n NameIndex) bump(name string) { n[name]++ }

// FqnMap maps a simple name to every fully-qualified name it resolves to in
// this file.
type FqnMap map[string][]string

func (m FqnMap) add(name, fqn string) {
	if !lo.Contains(m[name], fqn) {
		m[name] = append(m[name], fqn)
	}
}

func joinNS(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

// NewIndexingPass builds the Index-phase pass publishing SymbolIndex,
// NameIndex and FqnMap, grounded on the teacher's passes.indexing.
func NewIndexingPass() pass.Pass {
	return pass.NewFunc("passes.indexing", pass.Index, nil, func(cu *ast.CompilationUnit, sess *session.Session) {
		symbols := &SymbolIndex{}
		names := NameIndex{}
		fqnMap := FqnMap{}
		file := sess.Ctx.FilePath

		if cu.FileScopedNamespace != nil {
			name := cu.FileScopedNamespace.Name.Name()
			symbols.insert(name, SymbolNamespace, name, file)
			names.bump(name)
			fqnMap.add(name, name)
			indexMembers(cu.FileScopedNamespace.Declarations, name, file, symbols, names, fqnMap, nil)
		}

		for _, decl := range cu.Declarations {
			switch decl.Kind {
			case ast.TopNamespace:
				indexNamespace(decl.Namespace, "", file, symbols, names, fqnMap)
			case ast.TopClass, ast.TopStruct, ast.TopInterface, ast.TopRecord:
				indexClass(decl.Class, "", file, symbols, names, fqnMap, nil)
			case ast.TopEnum:
				indexSimple(decl.Enum.Name.Name(), SymbolEnum, "", file, symbols, names, fqnMap)
			case ast.TopDelegate:
				indexSimple(decl.Delegate.Name.Name(), SymbolDelegate, "", file, symbols, names, fqnMap)
			}
		}

		session.InsertArtifact(sess, symbols)
		session.InsertArtifact(sess, names)
		session.InsertArtifact(sess, fqnMap)
	})
}

func indexSimple(name string, kind SymbolKind, nsPath, file string, symbols *SymbolIndex, names NameIndex, fqnMap FqnMap) {
	full := joinNS(nsPath, name)
	symbols.insert(name, kind, full, file)
	names.bump(name)
	fqnMap.add(name, full)
}

func indexNamespace(ns *ast.NamespaceDecl, nsPath, file string, symbols *SymbolIndex, names NameIndex, fqnMap FqnMap) {
	seg := ns.Name.Name()
	full := joinNS(nsPath, seg)
	symbols.insert(seg, SymbolNamespace, full, file)
	names.bump(seg)
	fqnMap.add(seg, full)
	indexMembers(ns.Declarations, full, file, symbols, names, fqnMap, nil)
}

func indexMembers(members []ast.NamespaceMember, nsPath, file string, symbols *SymbolIndex, names NameIndex, fqnMap FqnMap, classStack []string) {
	for _, m := range members {
		switch m.Kind {
		case ast.NSNamespace:
			indexNamespace(m.Namespace, nsPath, file, symbols, names, fqnMap)
		case ast.NSClass, ast.NSStruct, ast.NSInterface, ast.NSRecord:
			indexClass(m.Class, nsPath, file, symbols, names, fqnMap, nil)
		case ast.NSEnum:
			indexSimple(m.Enum.Name.Name(), SymbolEnum, nsPath, file, symbols, names, fqnMap)
		case ast.NSDelegate:
			indexSimple(m.Delegate.Name.Name(), SymbolDelegate, nsPath, file, symbols, names, fqnMap)
		}
	}
}

func classSymbolKind(k ast.TypeKind) SymbolKind {
	switch k {
	case ast.KindStruct:
		return SymbolStruct
	case ast.KindInterface:
		return SymbolInterface
	case ast.KindRecord:
		return SymbolRecord
	default:
		return SymbolClass
	}
}

func indexClass(c *ast.ClassDecl, nsPath, file string, symbols *SymbolIndex, names NameIndex, fqnMap FqnMap, classStack []string) {
	classStack = append(classStack, c.Name.Name())
	classPath := joinAll(classStack)
	classFQN := joinNS(nsPath, classPath)

	name := c.Name.Name()
	symbols.insert(name, classSymbolKind(c.TypeKind), classFQN, file)
	names.bump(name)
	fqnMap.add(name, classFQN)

	for _, m := range c.Members {
		switch m.Kind {
		case ast.MemberMethod:
			mname := m.Method.Name.Name()
			symbols.insert(mname, SymbolMethod, classFQN+"::"+mname, file)
		case ast.MemberNestedClass, ast.MemberNestedStruct, ast.MemberNestedInterface, ast.MemberNestedRecord:
			indexClass(m.NestedClass, nsPath, file, symbols, names, fqnMap, classStack)
		}
	}
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
