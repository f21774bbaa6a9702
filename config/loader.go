package config

import (
	"os"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/viper"
)

// ConfigFileName is the default config file the loader searches for,
// mirroring the teacher's arch-unit.yaml convention.
const ConfigFileName = "bsharp-analysis.yaml"

// Loader searches upward from a root directory (stopping at a git root) for
// ConfigFileName, merges it over built-in defaults via spf13/viper (which
// understands both YAML and TOML by extension), and returns an AnalysisConfig.
type Loader struct {
	rootDir string
}

// NewLoader returns a loader rooted at rootDir.
func NewLoader(rootDir string) *Loader {
	return &Loader{rootDir: rootDir}
}

// Load is the ambient config entry point named in SPEC_FULL.md §6.
func Load(rootDir string) (*AnalysisConfig, error) {
	return NewLoader(rootDir).Load()
}

// Load resolves and parses the nearest config file, falling back to Default()
// when none is found.
func (l *Loader) Load() (*AnalysisConfig, error) {
	path, err := l.findConfigFile(l.rootDir, ConfigFileName)
	if err != nil {
		logger.Debugf("no config file found under %s, using defaults", l.rootDir)
		return Default(), nil
	}

	// Rule and pass ids contain dots ("passes.indexing"), so viper's default
	// "." key delimiter would split them into nested maps.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.EnablePasses == nil {
		cfg.EnablePasses = map[string]bool{}
	}
	if cfg.EnableRuleSets == nil {
		cfg.EnableRuleSets = map[string]bool{}
	}
	if cfg.RuleConditions == nil {
		cfg.RuleConditions = map[string]string{}
	}
	logger.Debugf("loaded analysis config from %s", path)
	return cfg, nil
}

// findGitRoot walks up from startDir looking for a .git directory, returning
// "" when none is found.
func findGitRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findConfigFile searches dir and its ancestors (never past the git root) for fileName.
func (l *Loader) findConfigFile(startDir, fileName string) (string, error) {
	gitRoot := findGitRoot(startDir)
	dir := startDir
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if dir == gitRoot {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
