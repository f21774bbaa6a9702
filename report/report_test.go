package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/metrics"
	"github.com/flanksource/bsharp-analyzer/semantic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func TestFromSessionCopiesDiagnostics(t *testing.T) {
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	sess.AddDiagnostic(diagnostic.Diagnostic{Code: diagnostic.CodeNamingClass, Severity: diagnostic.SeverityWarning, Message: "bad name"})

	r := FromSession(sess)

	require.Equal(t, SchemaVersion, r.SchemaVersion)
	require.Len(t, r.Diagnostics, 1)
	require.Equal(t, diagnostic.CodeNamingClass, r.Diagnostics[0].Code)
}

func TestFromSessionPopulatesMetricsWhenPublished(t *testing.T) {
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	session.InsertArtifact(sess, metrics.AstAnalysis{TotalClasses: 3})

	r := FromSession(sess)

	require.NotNil(t, r.Metrics)
	require.Equal(t, 3, r.Metrics.TotalClasses)
}

func TestFromSessionOmitsMetricsWhenNotPublished(t *testing.T) {
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	r := FromSession(sess)
	require.Nil(t, r.Metrics)
}

func TestFromSessionPopulatesDependencySummaryAndKeepsKeysUnexported(t *testing.T) {
	sess := session.New(session.NewContext("a.cs", "", nil), nil)
	session.InsertArtifact(sess, &semantic.DependencyKeys{
		NodeKeys: []string{"N.Widget"},
		EdgeKeys: []string{"N.Widget->N.Engine"},
	})

	r := FromSession(sess)

	require.NotNil(t, r.Deps)
	require.Equal(t, 1, r.Deps.Nodes)
	require.Equal(t, 1, r.Deps.Edges)
	require.Equal(t, []string{"N.Widget"}, r.DepsNodeKeys())
	require.Equal(t, []string{"N.Widget->N.Engine"}, r.DepsEdgeKeys())

	encoded, err := json.Marshal(r)
	require.NoError(t, err)
	require.NotContains(t, string(encoded), "N.Widget->N.Engine")
}

func TestFormatJSONProducesIndentedSchema(t *testing.T) {
	r := &AnalysisReport{SchemaVersion: SchemaVersion}
	out, err := Format(r, FormatJSON)
	require.NoError(t, err)
	require.Contains(t, out, "\"schema_version\": 1")
}

func TestFormatTTYWithoutRegisteredRendererErrors(t *testing.T) {
	ttyRenderer = nil
	_, err := Format(&AnalysisReport{}, FormatTTY)
	require.Error(t, err)
}

func TestRegisterTTYRendererIsUsedByFormat(t *testing.T) {
	defer func() { ttyRenderer = nil }()
	RegisterTTYRenderer(func(r *AnalysisReport) (string, error) {
		return "rendered", nil
	})

	out, err := Format(&AnalysisReport{}, FormatTTY)
	require.NoError(t, err)
	require.Equal(t, "rendered", out)
}
