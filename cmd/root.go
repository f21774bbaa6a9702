package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flanksource/commons/logger"
)

var (
	cfgFile     string
	outputFile  string
	compact     bool
	workingDir  string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "bsharp-analyzer",
	Short: "Static analyzer for B# source trees",
	Long: `bsharp-analyzer runs the AST indexing, local-rule, semantic-rule and
reporting pipeline over a workspace of .cs source files and emits a
schema-versioned AnalysisReport.`,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			printVersion()
			return
		}
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search upward from --cwd for bsharp-analysis.yaml)")
	rootCmd.PersistentFlags().StringVar(&workingDir, "cwd", "", "working directory for analysis (default: current directory)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "show version information")

	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (optional, uses stdout if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&compact, "compact", "c", false, "compact diagnostic output showing per-file counts only")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Infof("using config file: %s", viper.ConfigFileUsed())
		}
	}
	viper.AutomaticEnv()
}

// GetWorkingDir returns the working directory to use for analysis,
// respecting --cwd if provided.
func GetWorkingDir() (string, error) {
	if workingDir == "" {
		return os.Getwd()
	}

	absPath, err := filepath.Abs(workingDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("working directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("working directory is not a directory: %s", absPath)
	}
	return absPath, nil
}
