package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
)

// Ensure LoggingMirror implements dashdoc.Mirror.
var _ dashdoc.Mirror = (*LoggingMirror)(nil)

// LoggingMirror wraps a Mirror with logging.
type LoggingMirror struct {
	next   dashdoc.Mirror
	logger *slog.Logger
}

// NewLoggingMirror creates a new LoggingMirror.
func NewLoggingMirror(next dashdoc.Mirror, logger *slog.Logger) *LoggingMirror {
	return &LoggingMirror{next: next, logger: logger}
}

// Mirror logs every root as it completes and a summary once all are done.
func (m *LoggingMirror) Mirror(ctx context.Context, urls []string, progress dashdoc.MirrorProgressFunc) (result *dashdoc.MirrorResult, err error) {
	logged := func(p dashdoc.MirrorProgress) {
		switch p.Status {
		case dashdoc.MirrorSkipped:
			m.logger.InfoContext(ctx, "mirror skipped", "url", p.URL, "dir", p.Dir)
		case dashdoc.MirrorFailed:
			m.logger.ErrorContext(ctx, "mirror failed", "url", p.URL, "err", p.Error)
		default:
			m.logger.InfoContext(ctx, "mirror fetched", "url", p.URL, "dir", p.Dir)
		}
		if progress != nil {
			progress(p)
		}
	}

	defer func(begin time.Time) {
		var fetched, skipped, failed int
		if result != nil {
			fetched, skipped, failed = result.Fetched, result.Skipped, result.Failed
		}
		m.logger.InfoContext(ctx, "mirror",
			"urls", len(urls),
			"fetched", fetched,
			"skipped", skipped,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Mirror(ctx, urls, logged)
}
