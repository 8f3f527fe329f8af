package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"slices"

	"github.com/coreos/go-systemd/v22/journal"
)

// fanout sends each record to every sink that accepts its level.
type fanout []slog.Handler

// newFanout joins sinks. A single sink is returned as is.
func newFanout(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return fanout(sinks)
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(f, func(h slog.Handler) bool {
		return h.Enabled(ctx, level)
	})
}

// Handle delivers to every sink even if one fails and reports all failures.
func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}

// sinks says which outputs a process logs to.
type sinks struct {
	stdout  bool
	journal bool
}

// chooseSinks picks outputs for the environment. When stdout is already
// piped into a reachable journal only the native journal sink is kept.
func chooseSinks(stdoutUsable, journalUp, stdoutIsJournal bool) sinks {
	if journalUp && stdoutIsJournal {
		return sinks{journal: true}
	}
	return sinks{stdout: stdoutUsable, journal: journalUp}
}

// detectSinks probes the running process.
func detectSinks() sinks {
	stdoutIsJournal, err := journal.StdoutIsJournalStream()
	if err != nil {
		stdoutIsJournal = false
	}
	return chooseSinks(isStdoutAvailable(), IsJournalAvailable(), stdoutIsJournal)
}

// isStdoutAvailable checks if stdout is connected to a terminal, pipe, socket, or file.
func isStdoutAvailable() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	mode := fi.Mode()
	return (mode&os.ModeCharDevice) != 0 || (mode&os.ModeNamedPipe) != 0 || (mode&os.ModeSocket) != 0 || mode.IsRegular()
}
