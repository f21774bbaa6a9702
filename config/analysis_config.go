// Package config loads and represents AnalysisConfig: the only channel
// through which the analyzer core is configured (spec.md §5 — "the core
// never reads environment variables nor mutates process globals").
package config

// WorkspaceGlobs holds the include/exclude glob lists applied against a
// workspace root by the workspace merger (spec.md §4.11 step 2).
type WorkspaceGlobs struct {
	Include []string `yaml:"include" toml:"include"`
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// AnalysisConfig is the core's full configuration surface (spec.md §6).
type AnalysisConfig struct {
	// EnablePasses toggles individual passes by id; absent entries default
	// to enabled. A disabled pass is skipped entirely by the registry.
	EnablePasses map[string]bool `yaml:"enable_passes" toml:"enable_passes" mapstructure:"enable_passes"`

	// EnableRuleSets toggles individual rule-sets by id; same default-enabled semantics.
	EnableRuleSets map[string]bool `yaml:"enable_rulesets" toml:"enable_rulesets" mapstructure:"enable_rulesets"`

	Workspace WorkspaceGlobs `yaml:"workspace" toml:"workspace" mapstructure:"workspace"`

	// PEReferences are individual metadata file paths to load.
	PEReferences []string `yaml:"pe_references" toml:"pe_references" mapstructure:"pe_references"`
	// PEReferencePaths are directories scanned for metadata files.
	PEReferencePaths []string `yaml:"pe_reference_paths" toml:"pe_reference_paths" mapstructure:"pe_reference_paths"`

	// RuleConditions holds optional CEL boolean expressions keyed by rule id,
	// evaluated once per session to gate a rule beyond the plain enable map
	// (SPEC_FULL.md §4.13). A rule id absent here has no extra condition.
	RuleConditions map[string]string `yaml:"rule_conditions" toml:"rule_conditions" mapstructure:"rule_conditions"`

	// MaxWorkers bounds workspace-level parallelism; <= 0 means runtime.NumCPU().
	MaxWorkers int `yaml:"max_workers" toml:"max_workers" mapstructure:"max_workers"`
}

// PassEnabled reports whether pass id is enabled, defaulting to true when
// the config has no explicit entry (spec.md §4.3).
func (c *AnalysisConfig) PassEnabled(id string) bool {
	if c == nil {
		return true
	}
	enabled, ok := c.EnablePasses[id]
	if !ok {
		return true
	}
	return enabled
}

// RuleSetEnabled reports whether rule-set id is enabled, same default-true semantics.
func (c *AnalysisConfig) RuleSetEnabled(id string) bool {
	if c == nil {
		return true
	}
	enabled, ok := c.EnableRuleSets[id]
	if !ok {
		return true
	}
	return enabled
}

// Default returns a zero-value config with every pass/rule-set enabled and no globs.
func Default() *AnalysisConfig {
	return &AnalysisConfig{
		EnablePasses:   map[string]bool{},
		EnableRuleSets: map[string]bool{},
		RuleConditions: map[string]string{},
	}
}
