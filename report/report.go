// Package report defines AnalysisReport, the fixed-schema aggregate
// produced from one Session (per-file) or the workspace merger (spec.md
// §3/§4.11).
package report

import (
	"bytes"
	"encoding/json"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/metrics"
	"github.com/flanksource/bsharp-analyzer/semantic"
	"github.com/flanksource/bsharp-analyzer/session"
)

// FormatMode selects AnalysisReport's rendering (SPEC_FULL.md §6).
type FormatMode string

const (
	FormatJSON FormatMode = "json"
	FormatTTY  FormatMode = "tty"
)

// Format renders r per mode, the ambient-output entry point named in
// SPEC_FULL.md §6. TTY rendering is delegated to a registered renderer
// (output.Formatter wires itself in via RegisterTTYRenderer) so this
// package doesn't need to import terminal-styling libraries directly.
func Format(r *AnalysisReport, mode FormatMode) (string, error) {
	switch mode {
	case FormatTTY:
		if ttyRenderer == nil {
			return "", errNoTTYRenderer
		}
		return ttyRenderer(r)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

type ttyRenderFunc func(*AnalysisReport) (string, error)

var ttyRenderer ttyRenderFunc

// RegisterTTYRenderer installs the TTY rendering implementation; called
// once from output.init so report.Format can dispatch to it without report
// importing the styling packages itself.
func RegisterTTYRenderer(fn func(*AnalysisReport) (string, error)) {
	ttyRenderer = fn
}

type formatError string

func (e formatError) Error() string { return string(e) }

const errNoTTYRenderer = formatError("report: no TTY renderer registered, import the output package")

// SchemaVersion is the fixed schema version every AnalysisReport carries
// (spec.md §4.11 step 9).
const SchemaVersion = 1

// DependencySummary is the workspace-level cardinality summary derived by
// unioning every file's DependencyKeys.
type DependencySummary struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// AnalysisReport is the stable, JSON-serializable output shape for both a
// single file and a merged workspace.
type AnalysisReport struct {
	SchemaVersion      int                     `json:"schema_version"`
	Diagnostics        []diagnostic.Diagnostic `json:"diagnostics"`
	Metrics            *metrics.AstAnalysis    `json:"metrics,omitempty"`
	Cfg                *metrics.CfgSummary     `json:"cfg,omitempty"`
	Deps               *DependencySummary      `json:"deps,omitempty"`
	WorkspaceWarnings  []string                `json:"workspace_warnings,omitempty"`
	WorkspaceErrors    []string                `json:"workspace_errors,omitempty"`
	depsNodeKeys       []string
	depsEdgeKeys       []string
}

// DepsNodeKeys exposes the per-file node-key set for workspace merging; it
// is intentionally unexported from JSON (spec.md §4.11 step 9 "omits
// per-file key sets").
func (r *AnalysisReport) DepsNodeKeys() []string { return r.depsNodeKeys }

// DepsEdgeKeys exposes the per-file edge-key set for workspace merging.
func (r *AnalysisReport) DepsEdgeKeys() []string { return r.depsEdgeKeys }

// FromSession builds a per-file AnalysisReport from everything a pipeline
// run published into sess.
func FromSession(sess *session.Session) *AnalysisReport {
	r := &AnalysisReport{
		SchemaVersion: SchemaVersion,
		Diagnostics:   append([]diagnostic.Diagnostic{}, sess.Diagnostics.Items...),
	}
	if m, ok := session.GetArtifact[metrics.AstAnalysis](sess); ok {
		r.Metrics = &m
	}
	if c, ok := session.GetArtifact[metrics.CfgSummary](sess); ok {
		r.Cfg = &c
	}
	if d, ok := session.GetArtifact[*semantic.DependencyKeys](sess); ok {
		r.depsNodeKeys = d.NodeKeys
		r.depsEdgeKeys = d.EdgeKeys
		r.Deps = &DependencySummary{Nodes: len(d.NodeKeys), Edges: len(d.EdgeKeys)}
	}
	return r
}
