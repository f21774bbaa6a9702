package semantic

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/fqn"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// DependencyKeys is the per-file producer of the workspace-level
// DependencySummary (spec.md §3): every declared type is a node, and every
// base-type/member-type reference that the binding pass resolved to a
// known FQN is an edge from the declaring type to that FQN. Key sets, not
// counts, are published here — the workspace merger unions them and takes
// cardinalities, since summing would double-count a node or edge shared by
// two files (spec.md §9 "Workspace merge").
type DependencyKeys struct {
	NodeKeys []string
	EdgeKeys []string
}

// NewDependenciesPass builds semantic.dependencies, depending on binding so
// it can resolve simple type names to FQNs before forming edges.
func NewDependenciesPass() pass.Pass {
	return pass.NewFunc("semantic.dependencies", pass.Semantic, []string{"semantic.binding"}, func(cu *ast.CompilationUnit, sess *session.Session) {
		binding, hasBinding := session.GetArtifact[*BindingTable](sess)

		nodeSeen := map[string]bool{}
		edgeSeen := map[string]bool{}
		var nodes, edges []string

		addNode := func(n string) {
			if n != "" && !nodeSeen[n] {
				nodeSeen[n] = true
				nodes = append(nodes, n)
			}
		}
		addEdge := func(from, to string) {
			key := from + "->" + to
			if from == "" || to == "" || edgeSeen[key] {
				return
			}
			edgeSeen[key] = true
			edges = append(edges, key)
		}

		resolve := func(typeName string) (string, bool) {
			if !hasBinding {
				return "", false
			}
			target, ok := binding.TypesBySimple[baseTypeName(typeName)]
			return target, ok
		}

		var walkClass func(c *ast.ClassDecl)
		walkClass = func(c *ast.ClassDecl) {
			self := fqn.Class(cu, c)
			addNode(self)
			for _, bt := range c.BaseTypes {
				if target, ok := resolve(bt.Name()); ok {
					addEdge(self, target)
				}
			}
			for _, m := range c.Members {
				switch m.Kind {
				case ast.MemberField:
					if target, ok := resolve(m.Field.Type); ok {
						addEdge(self, target)
					}
				case ast.MemberProperty, ast.MemberIndexer:
					if target, ok := resolve(m.Property.Type); ok {
						addEdge(self, target)
					}
				case ast.MemberMethod, ast.MemberOperator:
					if target, ok := resolve(m.Method.ReturnType); ok {
						addEdge(self, target)
					}
					for _, p := range m.Method.Parameters {
						if target, ok := resolve(p.Type); ok {
							addEdge(self, target)
						}
					}
				case ast.MemberNestedClass, ast.MemberNestedStruct, ast.MemberNestedInterface, ast.MemberNestedRecord:
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

		session.InsertArtifact(sess, &DependencyKeys{NodeKeys: nodes, EdgeKeys: edges})
	})
}
