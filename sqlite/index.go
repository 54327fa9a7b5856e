package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/dashdoc"
)

// Compile-time interface verification.
var _ dashdoc.IndexService = (*IndexService)(nil)

// IndexService implements dashdoc.IndexService using SQLite.
type IndexService struct {
	db Conn
}

// NewIndexService creates a new IndexService. Pass a Tx to batch writes
// into a single commit.
func NewIndexService(db Conn) *IndexService {
	return &IndexService{db: db}
}

// InsertEntry stores an entry, ignoring it if the same
// (name, type, path) triple is already present.
func (s *IndexService) InsertEntry(ctx context.Context, entry *dashdoc.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO searchIndex (name, type, path)
		VALUES (?, ?, ?)
	`, entry.Name, string(entry.Kind), entry.Path)

	return err
}

// FindEntries retrieves entries matching the filter in insertion order.
func (s *IndexService) FindEntries(ctx context.Context, filter dashdoc.EntryFilter) ([]*dashdoc.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, type, path FROM searchIndex WHERE 1=1")

	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Kind != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Kind))
	}

	query.WriteString(" ORDER BY id")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*dashdoc.Entry
	for rows.Next() {
		var entry dashdoc.Entry
		var kind string
		if err := rows.Scan(&entry.Name, &kind, &entry.Path); err != nil {
			return nil, err
		}
		entry.Kind = dashdoc.Kind(kind)
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// CountEntries returns the number of stored entries.
func (s *IndexService) CountEntries(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM searchIndex").Scan(&n)
	return n, err
}
