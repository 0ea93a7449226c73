// Package main provides the CLI entry point for tombi, a lossless TOML
// toolkit: formatting, linting against JSON Schema, and (shape-only in
// this build) a Language Server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tombi-toml/tombi/log"
	"github.com/tombi-toml/tombi/profiler"
	"github.com/tombi-toml/tombi/version"
)

// app holds every flag shared across subcommands.
type app struct {
	configPath string
	offline    bool
	diagFormat string

	log  *log.Config
	prof profiler.Profiler
}

func main() {
	a := &app{
		log:  log.NewConfig(),
		prof: profiler.New(),
	}

	rootCmd := &cobra.Command{
		Use:     "tombi",
		Short:   "A lossless TOML toolkit",
		Long:    `tombi formats and lints TOML documents, optionally against a JSON Schema.`,
		Version: version.Version,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.prof.Stop()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to the tombi configuration file (default: tombi.toml or pyproject.toml in the working directory)")
	flags.BoolVar(&a.offline, "offline", false, "never fetch http(s):// schemas, only file:// and local paths")
	flags.StringVar(&a.diagFormat, "format", "pretty", "diagnostic rendering, one of: pretty, compact")

	a.log.RegisterFlags(flags)
	profFlags := pflag.NewFlagSet("profiler", pflag.ContinueOnError)
	a.prof.RegisterFlags(profFlags)
	profFlags.VisitAll(func(f *pflag.Flag) { f.Hidden = true })
	flags.AddFlagSet(profFlags)

	if err := a.log.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(a.newFormatCmd())
	rootCmd.AddCommand(a.newLintCmd())
	rootCmd.AddCommand(a.newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
