// Package workspace implements Workspace/Project discovery and the
// deterministic merger described in spec.md §4.11, grounded on the
// teacher's ast.Coordinator worker-group pattern (SPEC_FULL.md §4.16).
package workspace

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/config"
	"github.com/flanksource/bsharp-analyzer/span"
)

// Project is one grouping of source files sharing a root path.
type Project struct {
	Root   string
	Files  []string
	Errors []string // project-level loader errors, folded into workspace_warnings
}

// Workspace is an ordered collection of projects plus workspace-level
// include/exclude globs and any solution-level loader errors.
type Workspace struct {
	Root           string
	Projects       []Project
	SolutionErrors []string
	Globs          config.WorkspaceGlobs
}

// Parser is the injected surface-parser boundary (spec.md §1: the surface
// parser that produces the AST and span table is an external collaborator,
// not part of the core).
type Parser interface {
	Parse(source string) (*ast.CompilationUnit, *span.Table, error)
}
