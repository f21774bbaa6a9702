// Package output renders an AnalysisReport as JSON or as a TTY summary,
// grounded on the teacher's output.OutputManager (table/compact/JSON
// rendering split by format string).
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/report"
)

func init() {
	report.RegisterTTYRenderer(renderTTYString)
}

func renderTTYString(rpt *report.AnalysisReport) (string, error) {
	var buf bytes.Buffer
	f := &Formatter{}
	if err := f.writeTTY(&buf, rpt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Formatter renders an AnalysisReport in one of the supported formats.
type Formatter struct {
	format  string
	output  string
	compact bool
}

func NewFormatter(format string) *Formatter {
	return &Formatter{format: format}
}

func (f *Formatter) SetOutputFile(file string) {
	f.output = file
}

func (f *Formatter) SetCompact(compact bool) {
	f.compact = compact
}

// Render writes rpt to stdout or f.output, in JSON or TTY form.
func (f *Formatter) Render(rpt *report.AnalysisReport) error {
	switch f.format {
	case "json":
		return f.renderJSON(rpt)
	default:
		return f.renderTTY(rpt)
	}
}

func (f *Formatter) writer() (io.Writer, func(), error) {
	if f.output == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(f.output)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

// renderJSON encodes rpt with stable field order (report.AnalysisReport's
// json tags), matching spec.md §4.14.
func (f *Formatter) renderJSON(rpt *report.AnalysisReport) error {
	w, closeFn, err := f.writer()
	if err != nil {
		return err
	}
	defer closeFn()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rpt); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func severityColor(sev diagnostic.Severity) *color.Color {
	switch sev {
	case diagnostic.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case diagnostic.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// renderTTY prints a human-readable summary: a grouped-by-file diagnostic
// tree (compact or tree form, mirroring the teacher's outputCompact /
// outputTree split) followed by metrics/deps/workspace sections.
func (f *Formatter) renderTTY(rpt *report.AnalysisReport) error {
	w, closeFn, err := f.writer()
	if err != nil {
		return err
	}
	defer closeFn()

	return f.writeTTY(w, rpt)
}

func (f *Formatter) writeTTY(w io.Writer, rpt *report.AnalysisReport) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	if len(rpt.Diagnostics) == 0 {
		fmt.Fprintln(w, color.New(color.FgGreen).Sprint("no diagnostics"))
	} else if f.compact {
		f.renderCompact(w, rpt.Diagnostics, headerStyle, dimStyle)
	} else {
		f.renderTree(w, rpt.Diagnostics, headerStyle, dimStyle)
	}

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, headerStyle.Render("Summary"))
	if m := rpt.Metrics; m != nil {
		fmt.Fprintf(w, "  classes: %d  methods: %d  loc: %d\n", m.TotalClasses, m.TotalMethods, m.LinesOfCode)
		fmt.Fprintf(w, "  cyclomatic complexity: %d  max nesting: %d\n", m.CyclomaticComplexity, m.MaxNestingDepth)
	}
	if c := rpt.Cfg; c != nil {
		fmt.Fprintf(w, "  methods analyzed: %d  high-complexity: %d  deep-nesting: %d\n",
			c.TotalMethods, c.HighComplexityMethods, c.DeepNestingMethods)
	}
	if rpt.Deps != nil {
		fmt.Fprintf(w, "  dependency nodes: %d  edges: %d\n", rpt.Deps.Nodes, rpt.Deps.Edges)
	}
	fmt.Fprintf(w, "  diagnostics: %d\n", len(rpt.Diagnostics))

	if len(rpt.WorkspaceWarnings) > 0 {
		fmt.Fprintln(w, dimStyle.Render("Workspace warnings:"))
		for _, msg := range rpt.WorkspaceWarnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
	if len(rpt.WorkspaceErrors) > 0 {
		fmt.Fprintln(w, color.New(color.FgRed).Sprint("Workspace errors:"))
		for _, msg := range rpt.WorkspaceErrors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}

	return nil
}

func (f *Formatter) renderCompact(w io.Writer, diags []diagnostic.Diagnostic, headerStyle, dimStyle lipgloss.Style) {
	byFile := groupByFile(diags)
	files := sortedKeys(byFile)

	fmt.Fprintln(w, headerStyle.Render("Diagnostics"))
	for _, file := range files {
		items := byFile[file]
		counts := map[diagnostic.Code]int{}
		for _, d := range items {
			counts[d.Code]++
		}
		var codes []string
		for code, n := range counts {
			if n > 1 {
				codes = append(codes, fmt.Sprintf("%s×%d", code, n))
			} else {
				codes = append(codes, string(code))
			}
		}
		sort.Strings(codes)
		fmt.Fprintf(w, "  %s %s %s\n", file, dimStyle.Render(fmt.Sprintf("(%d)", len(items))), strings.Join(codes, ", "))
	}
}

func (f *Formatter) renderTree(w io.Writer, diags []diagnostic.Diagnostic, headerStyle, dimStyle lipgloss.Style) {
	byFile := groupByFile(diags)
	files := sortedKeys(byFile)

	fmt.Fprintln(w, headerStyle.Render("Diagnostics"))
	for i, file := range files {
		items := byFile[file]
		isLast := i == len(files)-1
		branch := "├──"
		if isLast {
			branch = "└──"
		}
		fmt.Fprintf(w, "%s %s (%d)\n", branch, file, len(items))

		prefix := "│   "
		if isLast {
			prefix = "    "
		}
		for j, d := range items {
			isLastItem := j == len(items)-1
			itemBranch := "├──"
			if isLastItem {
				itemBranch = "└──"
			}
			loc := ""
			if d.Location != nil {
				loc = fmt.Sprintf(" (line %d)", d.Location.Line)
			}
			fmt.Fprintf(w, "%s%s %s %s%s\n",
				prefix, itemBranch,
				severityColor(d.Severity).Sprint(string(d.Code)),
				d.Message,
				dimStyle.Render(loc))
		}
	}
}

func groupByFile(diags []diagnostic.Diagnostic) map[string][]diagnostic.Diagnostic {
	out := map[string][]diagnostic.Diagnostic{}
	for _, d := range diags {
		file := "<unknown>"
		if d.Location != nil {
			file = d.Location.File
		}
		out[file] = append(out[file], d)
	}
	return out
}

func sortedKeys(m map[string][]diagnostic.Diagnostic) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
