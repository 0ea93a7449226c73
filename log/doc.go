// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON] and [FormatLogfmt]) and
// the four standard slog severity levels, parsed from strings with
// [GetLevel] and [GetFormat]. Use [CreateHandler] to build a handler
// directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Publisher] fans out log output to multiple subscribers. The Language
// Server uses this to mirror diagnostics-adjacent trace output to both
// stderr and whatever LSP trace channel an embedding transport subscribes:
//
//	pub := log.NewPublisher()
//	handler := log.CreateHandler(pub, slog.LevelInfo, log.FormatJSON)
//	logger := slog.New(handler)
//
//	sub := pub.Subscribe()
//	go func() {
//	    for entry := range sub.C() {
//	        // Forward entry as a window/logMessage notification.
//	    }
//	}()
//
// Combine it with [io.MultiWriter] to write to multiple locations:
//
//	pub := log.NewPublisher()
//	w := io.MultiWriter(logFile, pub)
//	handler := log.CreateHandler(w, slog.LevelInfo, log.FormatJSON)
//	logger := slog.New(handler)
package log
