package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassEnabledDefaultsTrueWhenAbsent(t *testing.T) {
	cfg := Default()
	require.True(t, cfg.PassEnabled("passes.indexing"))
}

func TestPassEnabledHonorsExplicitFalse(t *testing.T) {
	cfg := Default()
	cfg.EnablePasses["passes.indexing"] = false
	require.False(t, cfg.PassEnabled("passes.indexing"))
}

func TestPassEnabledOnNilConfigDefaultsTrue(t *testing.T) {
	var cfg *AnalysisConfig
	require.True(t, cfg.PassEnabled("anything"))
}

func TestRuleSetEnabledHonorsExplicitFalse(t *testing.T) {
	cfg := Default()
	cfg.EnableRuleSets["naming"] = false
	require.False(t, cfg.RuleSetEnabled("naming"))
	require.True(t, cfg.RuleSetEnabled("members"))
}
