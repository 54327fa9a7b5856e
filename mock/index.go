package mock

import (
	"context"

	"github.com/fwojciec/dashdoc"
)

// Compile-time interface verification.
var (
	_ dashdoc.EntryWriter  = (*EntryWriter)(nil)
	_ dashdoc.IndexService = (*IndexService)(nil)
)

// EntryWriter is a mock implementation of dashdoc.EntryWriter.
type EntryWriter struct {
	InsertEntryFn func(ctx context.Context, entry *dashdoc.Entry) error
}

func (w *EntryWriter) InsertEntry(ctx context.Context, entry *dashdoc.Entry) error {
	return w.InsertEntryFn(ctx, entry)
}

// IndexService is a mock implementation of dashdoc.IndexService.
type IndexService struct {
	InsertEntryFn  func(ctx context.Context, entry *dashdoc.Entry) error
	FindEntriesFn  func(ctx context.Context, filter dashdoc.EntryFilter) ([]*dashdoc.Entry, error)
	CountEntriesFn func(ctx context.Context) (int, error)
}

func (s *IndexService) InsertEntry(ctx context.Context, entry *dashdoc.Entry) error {
	return s.InsertEntryFn(ctx, entry)
}

func (s *IndexService) FindEntries(ctx context.Context, filter dashdoc.EntryFilter) ([]*dashdoc.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	return s.CountEntriesFn(ctx)
}
