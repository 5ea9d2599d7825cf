// dsprep prepares and audits JSONL justification datasets.
//
// Usage:
//
//	dsprep split [--input all.jsonl] [--outdir .] [--train 0.8 --dev 0.1 --test 0.1] [--seed 42]
//	dsprep stats <file.jsonl>... [--dir splits/] [--format text|markdown|json]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsprep/internal/config"
	"dsprep/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel   string
	logFormat  string
	configPath string
}

// cfg is the effective configuration; PersistentPreRunE loads it before
// any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dsprep",
	Short: "Split and audit labeled JSONL justification datasets",
	Long: "dsprep partitions a labeled JSONL dataset into stratified train/dev/test\n" +
		"files and reports label, length and duplicate statistics.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: initRoot,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")
	f.StringVar(&rootFlags.configPath, "config", "", "Path to config file (YAML/JSON); flags override it")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.Version = version
}

func initRoot(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())

	cfg = config.Default()
	if rootFlags.configPath != "" {
		c, err := config.LoadFromPath(rootFlags.configPath)
		if err != nil {
			return err
		}
		cfg = c
		logging.New("config").Debug("config loaded", "path", rootFlags.configPath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
