package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRuleConditionsTOMLMergesIntoConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conditions.toml")
	contents := "[conditions]\n\"naming.class_pascal_case\" = \"severity == 'warning'\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg := Default()
	require.NoError(t, LoadRuleConditionsTOML(cfg, path))

	require.Equal(t, "severity == 'warning'", cfg.RuleConditions["naming.class_pascal_case"])
}

func TestLoadRuleConditionsTOMLExistingEntriesTakePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conditions.toml")
	contents := "[conditions]\n\"naming.class_pascal_case\" = \"from_file\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg := Default()
	cfg.RuleConditions["naming.class_pascal_case"] = "from_cfg"
	require.NoError(t, LoadRuleConditionsTOML(cfg, path))

	require.Equal(t, "from_cfg", cfg.RuleConditions["naming.class_pascal_case"])
}

func TestLoadRuleConditionsTOMLMissingFileReturnsError(t *testing.T) {
	cfg := Default()
	err := LoadRuleConditionsTOML(cfg, filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
