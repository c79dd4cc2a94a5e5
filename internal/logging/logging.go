// Package logging provides the installer's log stream: every record is
// rendered as a "[LEVEL] message" line, appended to the run log file, and
// forwarded to the front end's sink.
package logging

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LineSink receives each formatted log line. Front ends supply one backed by
// a console print or a TUI widget update.
type LineSink func(line string)

// Setup returns a logger whose records are appended to the file at logPath
// and forwarded to sink. The file is opened lazily on first write so logging
// works before the install root exists; once created it is only ever
// appended to. A nil sink is allowed.
func Setup(logPath string, sink LineSink) *slog.Logger {
	return slog.New(&LineHandler{
		mu:   &sync.Mutex{},
		path: logPath,
		sink: sink,
	})
}

// LineHandler is a slog.Handler that writes plain "[LEVEL] message" lines.
type LineHandler struct {
	mu   *sync.Mutex
	path string
	file *os.File
	sink LineSink
}

func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	line := "[" + levelName(r.Level) + "] " + r.Message

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		// The run log lives inside the install root, which may not exist
		// yet. Retry on every record until the open succeeds.
		f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			h.file = f
		}
	}
	if h.file != nil {
		h.file.WriteString(line + "\n")
	}

	if h.sink != nil {
		h.sink(line)
	}
	return nil
}

func (h *LineHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *LineHandler) WithGroup(string) slog.Handler      { return h }

func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	default:
		return "INFO"
	}
}

// NopHandler discards all records. Used in tests.
type NopHandler struct{}

func (NopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NopHandler) WithGroup(string) slog.Handler           { return h }
