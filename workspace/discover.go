package workspace

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/flanksource/bsharp-analyzer/config"
)

// SourceExtension is the source-file suffix the workspace scanner collects.
const SourceExtension = ".cs"

// Discover walks root collecting every SourceExtension file into a single
// Project and recording globs on the Workspace; Run applies them (spec.md
// §4.11 step 1-2 input). A root that
// cannot be walked produces a Workspace whose SolutionErrors records why.
func Discover(root string, globs config.WorkspaceGlobs) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Root: abs, Globs: globs}
	var files []string
	walkErr := filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			ws.SolutionErrors = append(ws.SolutionErrors, err.Error())
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) == SourceExtension {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	ws.Projects = []Project{{Root: abs, Files: files}}
	return ws, nil
}

// collectFiles gathers every project's files, sorted by absolute path and
// deduplicated (spec.md §4.11 step 1).
func collectFiles(ws *Workspace) []string {
	var files []string
	for _, p := range ws.Projects {
		files = append(files, p.Files...)
	}
	for i, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			files[i] = abs
		}
	}
	sort.Strings(files)
	return dedupeSorted(files)
}

func dedupeSorted(sorted []string) []string {
	out := sorted[:0]
	var prev string
	first := true
	for _, s := range sorted {
		if first || s != prev {
			out = append(out, s)
			prev = s
			first = false
		}
	}
	return out
}

// applyGlobs filters files by the workspace's include/exclude glob lists
// against ws.Root, a no-op when both lists are empty (spec.md §4.11 step 2).
func applyGlobs(ws *Workspace, files []string) []string {
	if len(ws.Globs.Include) == 0 && len(ws.Globs.Exclude) == 0 {
		return files
	}

	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(ws.Root, f)
		if err != nil {
			rel = f
		}
		if len(ws.Globs.Include) > 0 && !matchesAny(ws.Globs.Include, rel) {
			continue
		}
		if matchesAny(ws.Globs.Exclude, rel) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// collectWarnings unions and sorts solution/project-level loader errors
// (spec.md §4.11 step 8).
func collectWarnings(ws *Workspace) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, e := range ws.SolutionErrors {
		add(e)
	}
	for _, p := range ws.Projects {
		for _, e := range p.Errors {
			add(e)
		}
	}
	sort.Strings(out)
	return out
}
