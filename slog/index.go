package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingEntryWriter implements dashdoc.EntryWriter.
var _ dashdoc.EntryWriter = (*LoggingEntryWriter)(nil)

// LoggingEntryWriter wraps an EntryWriter with debug logging.
type LoggingEntryWriter struct {
	next   dashdoc.EntryWriter
	logger *slog.Logger
}

// NewLoggingEntryWriter creates a new LoggingEntryWriter.
func NewLoggingEntryWriter(next dashdoc.EntryWriter, logger *slog.Logger) *LoggingEntryWriter {
	return &LoggingEntryWriter{next: next, logger: logger}
}

// InsertEntry delegates to the wrapped writer and logs the entry at debug level.
func (w *LoggingEntryWriter) InsertEntry(ctx context.Context, entry *dashdoc.Entry) (err error) {
	defer func() {
		w.logger.DebugContext(ctx, "insert entry",
			"name", entry.Name,
			"kind", string(entry.Kind),
			"path", entry.Path,
			"err", err,
		)
	}()
	return w.next.InsertEntry(ctx, entry)
}
