package dashdoc

import "context"

// Kind identifies the type of a search index entry.
// Values match the entry types understood by Dash.
type Kind string

// Supported entry kinds.
const (
	KindGuide    Kind = "Guide"
	KindEnum     Kind = "Enum"
	KindValue    Kind = "Value"
	KindFunction Kind = "Function"
	KindType     Kind = "Type"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindGuide, KindEnum, KindValue, KindFunction, KindType:
		return true
	}
	return false
}

// Entry represents one searchable symbol in the docset index.
//
// Extractors emit entries whose Path is the raw href or anchor found in the
// page. ResolveEntry turns that into the stored form "dir/file.html#anchor".
type Entry struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if !e.Kind.Valid() {
		return Errorf(EINVALID, "entry kind %q not supported", e.Kind)
	}
	if e.Path == "" {
		return Errorf(EINVALID, "entry path required")
	}
	return nil
}

// EntryWriter writes resolved entries to the search index.
type EntryWriter interface {
	// InsertEntry stores the entry. Inserting an entry whose
	// (name, kind, path) triple already exists is a no-op.
	InsertEntry(ctx context.Context, entry *Entry) error
}

// IndexService represents a service for managing the search index.
type IndexService interface {
	EntryWriter

	// FindEntries retrieves entries matching the filter.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// CountEntries returns the number of stored entries.
	CountEntries(ctx context.Context) (int, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Name *string `json:"name"`
	Kind *Kind   `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
