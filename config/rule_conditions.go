package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// ruleConditionsFile is the on-disk shape of a standalone rule-conditions
// file, kept separate from the main config so rule authors can version CEL
// expressions independently of pass/rule-set toggles.
type ruleConditionsFile struct {
	Conditions map[string]string `toml:"conditions"`
}

// LoadRuleConditionsTOML reads a standalone TOML file of `[conditions]`
// entries (rule id -> CEL expression) and merges them into cfg.RuleConditions,
// existing entries in cfg taking precedence.
func LoadRuleConditionsTOML(cfg *AnalysisConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var parsed ruleConditionsFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	if cfg.RuleConditions == nil {
		cfg.RuleConditions = map[string]string{}
	}
	for id, expr := range parsed.Conditions {
		if _, exists := cfg.RuleConditions[id]; !exists {
			cfg.RuleConditions[id] = expr
		}
	}
	return nil
}
