package extloader

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/flanksource/commons/logger"
	"golang.org/x/mod/semver"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// NewLoaderPass builds the Index-phase external-metadata loader pass
// (component M, spec.md §4.9). loader does the actual metadata read;
// cache, if non-nil, is consulted and refreshed across invocations
// (SPEC_FULL.md §4.15). A session that already carries an
// ExternalAssemblyIndex is left untouched, making the pass idempotent.
func NewLoaderPass(loader Loader, cache *Cache) pass.Pass {
	return pass.NewFunc("passes.pe_loader", pass.Index, nil, func(cu *ast.CompilationUnit, sess *session.Session) {
		if session.HasArtifact[*ExternalAssemblyIndex](sess) {
			return
		}

		seen := map[string]bool{}
		var assemblies []AssemblyRecord
		types := newIlTypeIndex()

		load := func(path string) {
			canon, err := filepath.Abs(path)
			if err != nil || seen[canon] {
				return
			}
			seen[canon] = true

			if cache != nil {
				if entry, ok := cache.Lookup(canon); ok {
					assemblies = append(assemblies, AssemblyRecord{Path: canon, Name: entry.AssemblyName, TypeCount: entry.TypeCount})
					return
				}
			}

			name, list, err := loader.Load(canon)
			if err != nil {
				logger.Debugf("extloader: skipping %s: %v", canon, err)
				return
			}
			for _, t := range list {
				insertType(types, t)
			}
			assemblies = append(assemblies, AssemblyRecord{Path: canon, Name: name, TypeCount: len(list)})
			if cache != nil {
				cache.Put(canon, name, len(list))
			}
		}

		cfg := sess.Ctx.Config
		if cfg != nil {
			for _, p := range cfg.PEReferences {
				load(p)
			}
			for _, dir := range cfg.PEReferencePaths {
				matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*.dll"))
				if err != nil {
					continue
				}
				for _, m := range matches {
					load(m)
				}
			}
		}

		session.InsertArtifact(sess, &ExternalAssemblyIndex{Assemblies: assemblies})
		session.InsertArtifact(sess, types)
		session.InsertArtifact(sess, WithDefaults())
	})
}

// insertType resolves a duplicate fully-qualified name across two loaded
// assemblies by preferring the higher semantic version when both versions
// parse as valid semver, otherwise keeping the first one seen (the
// original's unconditional first-wins behaviour).
func insertType(idx *IlTypeIndex, t TypeSummary) {
	existing, ok := idx.ByFQN[t.FullName]
	if !ok {
		idx.ByFQN[t.FullName] = t
		return
	}
	if semver.IsValid(t.Version) && semver.IsValid(existing.Version) && semver.Compare(t.Version, existing.Version) > 0 {
		idx.ByFQN[t.FullName] = t
	}
}
