package session

import (
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/span"
)

// Session is the per-file mutable container every pass and rule operates
// against: a read-only Context, the file's span table, a typed artifact
// store, and the ordered diagnostic collection (spec.md §3).
type Session struct {
	Ctx   *Context
	Spans *span.Table

	artifacts   *artifactStore
	Diagnostics diagnostic.Collection
}

// New builds a Session over ctx and spans with an empty artifact store and
// diagnostic list.
func New(ctx *Context, spans *span.Table) *Session {
	return &Session{
		Ctx:       ctx,
		Spans:     spans,
		artifacts: newArtifactStore(),
	}
}

// AddDiagnostic implements diagnostic.Sink, the only way a Diagnostic is
// appended to a session (spec.md §4.12).
func (s *Session) AddDiagnostic(d diagnostic.Diagnostic) {
	if d.Location == nil {
		d.Location = &diagnostic.Location{File: s.Ctx.FilePath}
	}
	s.Diagnostics.Add(d)
}

// PassEnabled reports whether the session's config enables pass id.
func (s *Session) PassEnabled(id string) bool {
	return s.Ctx.Config.PassEnabled(id)
}

// RuleSetEnabled reports whether the session's config enables rule-set id.
func (s *Session) RuleSetEnabled(id string) bool {
	return s.Ctx.Config.RuleSetEnabled(id)
}
