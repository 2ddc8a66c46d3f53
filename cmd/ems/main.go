// Package main is the entry point for the ems CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "ems - an employee record manager",
	Long: `ems keeps a list of employee records in a single YAML file.

Run without a subcommand to start the interactive menu, or use the
subcommands below for one-shot changes. Every change rewrites the whole
employees file.

The file defaults to employees.yaml in the current directory. Override it
with --file, EMS_DATA_FILE, or data_file in .emsconfig.yaml.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
}

var (
	flagFile     string
	flagLogLevel string
	flagNoColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "employees file (default employees.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("ems version {{.Version}}\n")
}
