package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"snipscan/internal/config"
)

var (
	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "snipscan",
	Short: "Heuristic quality analysis for code snippets",
	Long: `snipscan produces best-effort quality signals for a source-code snippet:
a quality score, issues, complexity metrics, detected architectural
patterns, formatting advice, and debugging risk insights.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			// Missing config is fine; fall back to defaults.
			cfg = config.Default()
		}
		setupLogging(cfg)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "snipscan.yaml", "path to config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging configures logrus from config. Output always goes to
// stderr so the MCP stdio transport and report output stay clean.
func setupLogging(cfg *config.Config) {
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
