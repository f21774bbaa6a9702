package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAstAnalysisCombineSumsCountsAndMaxesNesting(t *testing.T) {
	a := AstAnalysis{TotalClasses: 2, CyclomaticComplexity: 3, MaxNestingDepth: 2, LinesOfCode: 10}
	b := AstAnalysis{TotalClasses: 1, CyclomaticComplexity: 5, MaxNestingDepth: 4, LinesOfCode: 7}

	out := a.Combine(b)

	require.Equal(t, 3, out.TotalClasses)
	require.Equal(t, 8, out.CyclomaticComplexity)
	require.Equal(t, 4, out.MaxNestingDepth)
	require.Equal(t, 17, out.LinesOfCode)
}

func TestAstAnalysisCombineIsCommutative(t *testing.T) {
	a := AstAnalysis{TotalMethods: 3, MaxNestingDepth: 5}
	b := AstAnalysis{TotalMethods: 2, MaxNestingDepth: 1}

	require.Equal(t, a.Combine(b), b.Combine(a))
}

func TestCfgSummaryCombineSumsAllFields(t *testing.T) {
	a := CfgSummary{TotalMethods: 4, HighComplexityMethods: 1, DeepNestingMethods: 0}
	b := CfgSummary{TotalMethods: 2, HighComplexityMethods: 1, DeepNestingMethods: 1}

	out := a.Combine(b)

	require.Equal(t, 6, out.TotalMethods)
	require.Equal(t, 2, out.HighComplexityMethods)
	require.Equal(t, 1, out.DeepNestingMethods)
}
