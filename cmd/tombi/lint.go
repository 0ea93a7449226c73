package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/lsp"
)

func (a *app) newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [flags] <file.toml> [file2.toml ...]",
		Short: "Check TOML documents for syntax and schema errors",
		Long: `lint reports syntax errors, elaboration conflicts (duplicate keys, table
redefinitions), and — when a JSON Schema resolves for the document — schema
validation diagnostics.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runLint(args)
		},
	}

	return cmd
}

func (a *app) runLint(paths []string) error {
	cfg := a.loadConfig()
	store := lsp.NewDocumentStore(cfg, nil, a.schemaStore())

	ctx := context.Background()

	hasErrors := false

	for _, p := range paths {
		src, err := readInput(p)
		if err != nil {
			return fmt.Errorf("lint: %w", err)
		}

		uri := "file://" + p
		store.Open(uri, src, 1)

		diags, ok := lsp.Diagnostics(ctx, store, uri)
		if !ok {
			return fmt.Errorf("lint: %s: could not parse document", p)
		}

		printDiagnostics(os.Stdout, p, src, diags, a.diagFormat == "pretty")

		for _, d := range diags {
			if d.Severity == lsp.SeverityError {
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return fmt.Errorf("lint: one or more documents have errors")
	}

	return nil
}
