package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/report"
)

func TestRenderJSONWritesIndentedReportToFile(t *testing.T) {
	f := NewFormatter("json")
	out := filepath.Join(t.TempDir(), "out.json")
	f.SetOutputFile(out)

	rpt := &report.AnalysisReport{SchemaVersion: report.SchemaVersion}
	require.NoError(t, f.Render(rpt))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded report.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report.SchemaVersion, decoded.SchemaVersion)
}

func TestWriteTTYPrintsNoDiagnosticsWhenEmpty(t *testing.T) {
	f := &Formatter{}
	var buf bytes.Buffer
	require.NoError(t, f.writeTTY(&buf, &report.AnalysisReport{}))
	require.Contains(t, buf.String(), "no diagnostics")
}

func TestGroupByFileBucketsUnknownLocationSeparately(t *testing.T) {
	diags := []diagnostic.Diagnostic{
		{Code: diagnostic.CodeNamingClass, Location: &diagnostic.Location{File: "a.cs"}},
		{Code: diagnostic.CodeNamingField},
	}

	grouped := groupByFile(diags)

	require.Len(t, grouped["a.cs"], 1)
	require.Len(t, grouped["<unknown>"], 1)
}

func TestRenderCompactCollapsesRepeatedCodesWithCount(t *testing.T) {
	f := &Formatter{compact: true}
	diags := []diagnostic.Diagnostic{
		{Code: diagnostic.CodeNamingClass, Location: &diagnostic.Location{File: "a.cs"}},
		{Code: diagnostic.CodeNamingClass, Location: &diagnostic.Location{File: "a.cs"}},
	}

	var buf bytes.Buffer
	f.renderCompact(&buf, diags, lipgloss.NewStyle(), lipgloss.NewStyle())

	require.Contains(t, buf.String(), "×2")
}

func TestRenderTreeMarksLastFileAndItemWithCornerBranch(t *testing.T) {
	f := &Formatter{}
	diags := []diagnostic.Diagnostic{
		{Code: diagnostic.CodeNamingClass, Message: "bad", Location: &diagnostic.Location{File: "a.cs", Line: 3}},
	}

	var buf bytes.Buffer
	f.renderTree(&buf, diags, lipgloss.NewStyle(), lipgloss.NewStyle())

	require.Contains(t, buf.String(), "└──")
	require.Contains(t, buf.String(), "line 3")
}

func TestRenderDispatchesOnFormatString(t *testing.T) {
	jsonOut := filepath.Join(t.TempDir(), "j.json")
	f := NewFormatter("json")
	f.SetOutputFile(jsonOut)
	require.NoError(t, f.Render(&report.AnalysisReport{}))

	data, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	ttyOut := filepath.Join(t.TempDir(), "t.txt")
	tf := NewFormatter("tty")
	tf.SetOutputFile(ttyOut)
	require.NoError(t, tf.Render(&report.AnalysisReport{}))

	text, err := os.ReadFile(ttyOut)
	require.NoError(t, err)
	require.Contains(t, string(text), "no diagnostics")
}
