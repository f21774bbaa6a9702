package workspace

import (
	"os"
	"runtime"
	"sort"

	flanksourceContext "github.com/flanksource/commons/context"
	"github.com/flanksource/commons/logger"
	"github.com/flanksource/clicky/task"

	"github.com/flanksource/bsharp-analyzer/config"
	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/metrics"
	"github.com/flanksource/bsharp-analyzer/pipeline"
	"github.com/flanksource/bsharp-analyzer/report"
	"github.com/flanksource/bsharp-analyzer/session"
)

// fileOutcome is one file's parse+analyze result, carrying its path so
// results can be restored to deterministic order regardless of completion
// order (spec.md §4.11 step 6).
type fileOutcome struct {
	path   string
	report *report.AnalysisReport
}

// Run executes the merger: discover files, parse and analyze each with the
// given parser/catalog/config, and combine into one AnalysisReport (spec.md
// §4.11), dispatching per-file work across a clicky task group bounded by
// cfg.MaxWorkers (SPEC_FULL.md §4.16), grounded on the teacher's
// ast.Coordinator.AnalyzeDirectory worker-group pattern.
func Run(ws *Workspace, parser Parser, cat *pipeline.Catalog, cfg *config.AnalysisConfig) *report.AnalysisReport {
	files := applyGlobs(ws, collectFiles(ws))

	workers := runtime.NumCPU()
	if cfg != nil && cfg.MaxWorkers > 0 {
		workers = cfg.MaxWorkers
	}
	slots := make(chan struct{}, workers)

	group := task.StartGroup[fileOutcome]("analyze")
	for _, f := range files {
		path := f
		group.Add(path, func(ctx flanksourceContext.Context, t *task.Task) (fileOutcome, error) {
			slots <- struct{}{}
			defer func() { <-slots }()
			return analyzeOne(path, parser, cat, cfg), nil
		})
	}

	outcome := group.WaitFor()
	if outcome.Error != nil {
		logger.Debugf("workspace: analysis group reported an error: %v", outcome.Error)
	}
	results, _ := group.GetResults()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	return combine(ws, results)
}

func analyzeOne(path string, parser Parser, cat *pipeline.Catalog, cfg *config.AnalysisConfig) fileOutcome {
	source, err := os.ReadFile(path)
	if err != nil {
		return fileOutcome{path: path}
	}
	cu, spans, err := parser.Parse(string(source))
	if err != nil {
		return fileOutcome{path: path}
	}

	ctx := session.NewContext(path, string(source), cfg)
	sess := session.New(ctx, spans)
	pipeline.RunForFile(cu, sess, cat)

	return fileOutcome{path: path, report: report.FromSession(sess)}
}

// combine folds every file's report into one workspace-level report
// following spec.md §4.11 steps 5, 7, 8, 9.
func combine(ws *Workspace, results []fileOutcome) *report.AnalysisReport {
	var diags []diagnostic.Diagnostic
	var mergedMetrics *metrics.AstAnalysis
	var mergedCfg *metrics.CfgSummary
	nodeKeys := map[string]bool{}
	edgeKeys := map[string]bool{}

	for _, r := range results {
		if r.report == nil {
			continue
		}
		diags = append(diags, r.report.Diagnostics...)

		if r.report.Metrics != nil {
			if mergedMetrics == nil {
				m := *r.report.Metrics
				mergedMetrics = &m
			} else {
				combined := mergedMetrics.Combine(*r.report.Metrics)
				mergedMetrics = &combined
			}
		}
		if r.report.Cfg != nil {
			if mergedCfg == nil {
				c := *r.report.Cfg
				mergedCfg = &c
			} else {
				combined := mergedCfg.Combine(*r.report.Cfg)
				mergedCfg = &combined
			}
		}
		for _, k := range r.report.DepsNodeKeys() {
			nodeKeys[k] = true
		}
		for _, k := range r.report.DepsEdgeKeys() {
			edgeKeys[k] = true
		}
	}

	sort.SliceStable(diags, func(i, j int) bool { return diagnostic.Less(diags[i], diags[j]) })

	return &report.AnalysisReport{
		SchemaVersion:     report.SchemaVersion,
		Diagnostics:       diags,
		Metrics:           mergedMetrics,
		Cfg:               mergedCfg,
		Deps:              &report.DependencySummary{Nodes: len(nodeKeys), Edges: len(edgeKeys)},
		WorkspaceWarnings: collectWarnings(ws),
		WorkspaceErrors:   []string{},
	}
}
