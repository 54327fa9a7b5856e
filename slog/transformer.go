// Package slog provides logging decorators for dashdoc services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingTransformer implements dashdoc.Transformer.
var _ dashdoc.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer with logging.
type LoggingTransformer struct {
	next   dashdoc.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next dashdoc.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, logger: logger}
}

// Transform delegates to the wrapped transformer and logs the page, the
// number of extracted entries and the duration.
func (t *LoggingTransformer) Transform(page *dashdoc.SourcePage, r io.Reader) (result *dashdoc.TransformResult, err error) {
	defer func(begin time.Time) {
		entries := 0
		if result != nil {
			entries = len(result.Entries)
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		t.logger.Log(context.Background(), level, "transform page",
			"path", page.RelPath(),
			"kind", page.Kind().String(),
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Transform(page, r)
}
