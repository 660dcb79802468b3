// Package cli implements the conmx command-line interface.
//
// This package provides commands for editing DMX universes, building and
// rendering node patches, an interactive fader console and the HTTP API
// server. The CLI is built using cobra and logs via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - universe show: Apply channel writes and print a channel table
//   - patch: Build a node patch and render it as SVG, DOT, Graphviz SVG, PDF or PNG
//   - console: Interactive fader console for one universe
//   - serve: Serve the JSON API, optionally following config file changes
//
// # Configuration
//
// Every command reads the TOML configuration first (see internal/config).
// --config selects the file and --node-ip overrides network.node_ip.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/conmx/conmx/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, with short
// "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a command step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg followed by the elapsed time in milliseconds precision,
// e.g. "Rendered patch as svg (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

// withLogger attaches l to ctx for the command run.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
