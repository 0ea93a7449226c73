package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tombi-toml/tombi/lsp"
	"github.com/tombi-toml/tombi/text"
)

// printDiagnostics renders diags found in path (whose source is src) to
// w, one line per diagnostic as "path:line:col: level: [source] message" — or, in
// "pretty" mode, an additional source-span caret line underneath,
// adapted from how the teacher's CLI prints wrapped sentinel errors to
// stderr, extended here to positional diagnostics.
func printDiagnostics(w io.Writer, path string, src []byte, diags []lsp.Diagnostic, pretty bool) {
	index := text.NewIndex(src)
	lines := strings.Split(string(src), "\n")

	for _, d := range diags {
		rng := index.Range(d.Span)

		level := "error"
		if d.Severity == lsp.SeverityWarning {
			level = "warning"
		}

		fmt.Fprintf(w, "%s:%d:%d: %s: [%s] %s\n",
			path, rng.Start.Line+1, rng.Start.Column+1, level, d.Source, d.Message)

		if pretty {
			printCaret(w, lines, rng)
		}
	}
}

func printCaret(w io.Writer, lines []string, rng text.Range) {
	lineNo := int(rng.Start.Line)
	if lineNo < 0 || lineNo >= len(lines) {
		return
	}

	line := lines[lineNo]

	fmt.Fprintf(w, "  %s\n", line)

	width := int(rng.End.Column) - int(rng.Start.Column)
	if rng.End.Line != rng.Start.Line || width <= 0 {
		width = 1
	}

	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(rng.Start.Column)), strings.Repeat("^", width))
}
