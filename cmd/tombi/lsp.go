package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/log"
	"github.com/tombi-toml/tombi/lsp"
)

func (a *app) newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a Language Server (not wired to a transport in this build)",
		Long: `lsp assembles package lsp's Server — every textDocument/* operation
(Hover, Definition, TypeDefinition, DocumentSymbols, FoldingRanges,
Completion, Diagnostics, Format, CodeActions, DocumentLinks) bundled as
methods over a lsp.DocumentStore, tracing each call through a
log.Publisher the way an embedded server mirrors activity to both stderr
and a window/logMessage subscriber. Wrapping Server in a JSON-RPC
transport (e.g. go.lsp.dev/jsonrpc2) reading/writing stdio or a TCP
socket is left to the embedder; this build does not include one.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runLSP()
		},
	}
}

// runLSP assembles the Publisher/Server/trace-subscriber plumbing an
// embedding transport would drive, then reports that this build stops
// short of that transport. Assembling and exercising the pipeline here
// keeps it a live part of the CLI rather than dead weight package lsp
// carries alone.
func (a *app) runLSP() error {
	pub := log.NewPublisher()
	defer pub.Close()

	sub := pub.Subscribe()
	defer sub.Close()

	forwarded := make(chan struct{})

	go func() {
		defer close(forwarded)

		for range sub.C() {
			// An embedding transport forwards each entry here as a
			// window/logMessage notification; this build has none.
		}
	}()

	handler, err := a.log.NewHandler(io.MultiWriter(os.Stderr, pub))
	if err != nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}

	logger := slog.New(handler)
	logger.Info("assembling language server", "offline", a.offline)

	store := lsp.NewDocumentStore(a.loadConfig(), nil, a.schemaStore())
	server := lsp.NewServer(store, pub)

	// No transport is feeding the server requests yet; trace one no-op
	// call so the publisher fan-out above is visibly exercised rather
	// than wired and never driven.
	server.DocumentSymbols("untitled://lsp-startup-probe")

	pub.Close()
	<-forwarded

	return fmt.Errorf("lsp: not wired to a transport in this build")
}
