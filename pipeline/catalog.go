package pipeline

import (
	"github.com/flanksource/bsharp-analyzer/extloader"
	"github.com/flanksource/bsharp-analyzer/index"
	"github.com/flanksource/bsharp-analyzer/metrics"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/rule"
	"github.com/flanksource/bsharp-analyzer/semantic"
)

// NewDefaultCatalog builds the Catalog every file in a workspace run
// shares: every pass and rule-set the analyzer ships with, registered once.
// cache may be nil to disable the cross-invocation external-metadata cache.
func NewDefaultCatalog(loader extloader.Loader, cache *extloader.Cache) *Catalog {
	reg := pass.NewRegistry()

	reg.Register(index.NewIndexingPass())
	reg.Register(extloader.NewLoaderPass(loader, cache))
	reg.Register(metrics.NewMetricsPass())
	reg.Register(metrics.NewControlFlowPass())
	for _, p := range semantic.Chain() {
		reg.Register(p)
	}

	reg.RegisterRuleSet(rule.NamingRuleSet)
	reg.RegisterRuleSet(rule.MemberRuleSet)

	return &Catalog{
		Registry:  reg,
		LocalSets: []*rule.Set{rule.NamingRuleSet},
		Semantic:  []*rule.Set{rule.MemberRuleSet},
	}
}
