package workspace

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/metrics"
	"github.com/flanksource/bsharp-analyzer/report"
	"github.com/flanksource/bsharp-analyzer/semantic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func outcomeWithDeps(path string, nodes, edges []string) fileOutcome {
	sess := session.New(session.NewContext(path, "", nil), nil)
	session.InsertArtifact(sess, &semantic.DependencyKeys{NodeKeys: nodes, EdgeKeys: edges})
	return fileOutcome{path: path, report: report.FromSession(sess)}
}

func outcomeWithDiagnostics(path string, codes ...diagnostic.Code) fileOutcome {
	var diags []diagnostic.Diagnostic
	for _, c := range codes {
		diags = append(diags, diagnostic.Diagnostic{Code: c, Location: &diagnostic.Location{File: path}})
	}
	return fileOutcome{path: path, report: &report.AnalysisReport{Diagnostics: diags}}
}

var _ = Describe("combine", func() {
	It("sorts merged diagnostics by file, line, column, code regardless of input order", func() {
		a := outcomeWithDiagnostics("b.cs", diagnostic.CodeNamingClass)
		b := outcomeWithDiagnostics("a.cs", diagnostic.CodeNamingField)

		forward := combine(&Workspace{}, []fileOutcome{a, b})
		reversed := combine(&Workspace{}, []fileOutcome{b, a})

		Expect(forward.Diagnostics).To(Equal(reversed.Diagnostics))
		Expect(forward.Diagnostics[0].Location.File).To(Equal("a.cs"))
		Expect(forward.Diagnostics[1].Location.File).To(Equal("b.cs"))
	})

	It("combines metrics commutatively regardless of file processing order", func() {
		a := fileOutcome{path: "a.cs", report: &report.AnalysisReport{Metrics: &metrics.AstAnalysis{TotalClasses: 2}}}
		b := fileOutcome{path: "b.cs", report: &report.AnalysisReport{Metrics: &metrics.AstAnalysis{TotalClasses: 5}}}

		forward := combine(&Workspace{}, []fileOutcome{a, b})
		reversed := combine(&Workspace{}, []fileOutcome{b, a})

		Expect(forward.Metrics).NotTo(BeNil())
		Expect(forward.Metrics.TotalClasses).To(Equal(7))
		Expect(forward.Metrics).To(Equal(reversed.Metrics))
	})

	It("dedupes dependency node and edge keys across files", func() {
		a := outcomeWithDeps("a.cs", []string{"N.Widget"}, []string{"N.Widget->N.Engine"})
		b := outcomeWithDeps("b.cs", []string{"N.Widget"}, []string{"N.Widget->N.Engine"})

		merged := combine(&Workspace{}, []fileOutcome{a, b})

		Expect(merged.Deps.Nodes).To(Equal(1))
		Expect(merged.Deps.Edges).To(Equal(1))
	})

	It("skips file outcomes with a nil report without panicking", func() {
		failed := fileOutcome{path: "broken.cs", report: nil}
		ok := outcomeWithDiagnostics("a.cs", diagnostic.CodeNamingClass)

		merged := combine(&Workspace{}, []fileOutcome{failed, ok})

		Expect(merged.Diagnostics).To(HaveLen(1))
	})

	It("unions workspace and project warnings into the merged report", func() {
		ws := &Workspace{SolutionErrors: []string{"bad solution"}}
		merged := combine(ws, nil)

		Expect(merged.WorkspaceWarnings).To(ConsistOf("bad solution"))
	})
})
