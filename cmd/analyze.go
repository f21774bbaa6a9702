package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/config"
	"github.com/flanksource/bsharp-analyzer/extloader"
	"github.com/flanksource/bsharp-analyzer/output"
	"github.com/flanksource/bsharp-analyzer/pipeline"
	"github.com/flanksource/bsharp-analyzer/span"
	"github.com/flanksource/bsharp-analyzer/workspace"
)

var (
	outputFormat string
	peReference  []string
	cacheDBPath  string
)

// SourceParser is the injected surface-parser collaborator (spec.md §1).
// The CLI ships no parser of its own; an embedder wires a real one in by
// setting this before calling Execute, mirroring extloader.NoopLoader's
// boundary for the external metadata reader.
var SourceParser workspace.Parser = noopParser{}

type noopParser struct{}

func (noopParser) Parse(string) (*ast.CompilationUnit, *span.Table, error) {
	return nil, nil, fmt.Errorf("cmd: no source parser configured, see cmd.SourceParser")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a workspace of .cs files and emit an AnalysisReport",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := GetWorkingDir()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.PEReferences = append(cfg.PEReferences, peReference...)

		ws, err := workspace.Discover(root, cfg.Workspace)
		if err != nil {
			return fmt.Errorf("failed to discover workspace: %w", err)
		}

		var cache *extloader.Cache
		if cacheDBPath != "" {
			cache, err = extloader.OpenCache(cacheDBPath)
			if err != nil {
				return fmt.Errorf("failed to open metadata cache: %w", err)
			}
		}

		cat := pipeline.NewDefaultCatalog(extloader.NoopLoader{}, cache)
		rpt := workspace.Run(ws, SourceParser, cat, cfg)

		formatter := output.NewFormatter(outputFormat)
		formatter.SetOutputFile(outputFile)
		formatter.SetCompact(compact)
		return formatter.Render(rpt)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format: table or json")
	analyzeCmd.Flags().StringSliceVar(&peReference, "pe-reference", nil, "external metadata file to load (repeatable)")
	analyzeCmd.Flags().StringVar(&cacheDBPath, "cache-db", "", "path to the cross-invocation external-metadata cache (disabled if empty)")
	rootCmd.AddCommand(analyzeCmd)
}
