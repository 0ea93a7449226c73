package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/lsp"
)

func (a *app) newFormatCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "format [flags] <file.toml> [file2.toml ...]",
		Short: "Format TOML documents",
		Long: `format reparses and reserializes each document, reordering table keys and
array values when the resolved JSON Schema declares a preference. Pass "-" to
read from stdin and write the result to stdout.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runFormat(args, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report files that would be reformatted, without writing")

	return cmd
}

func (a *app) runFormat(paths []string, check bool) error {
	cfg := a.loadConfig()
	store := lsp.NewDocumentStore(cfg, nil, a.schemaStore())
	opts := formatOptions(cfg)

	ctx := context.Background()

	dirty := false

	for _, p := range paths {
		src, err := readInput(p)
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}

		uri := "file://" + p
		store.Open(uri, src, 1)

		out, ok := lsp.Format(ctx, store, uri, opts)
		if !ok {
			return fmt.Errorf("format: %s: could not parse document", p)
		}

		if p == "-" {
			_, err := os.Stdout.WriteString(out)
			return err
		}

		if out == string(src) {
			continue
		}

		dirty = true

		if check {
			fmt.Fprintf(os.Stdout, "%s would be reformatted\n", p)
			continue
		}

		if err := os.WriteFile(p, []byte(out), 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("format: %s: %w", p, err)
		}
	}

	if check && dirty {
		return fmt.Errorf("format: one or more files are not formatted")
	}

	return nil
}

func readInput(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(p) //nolint:gosec
}
