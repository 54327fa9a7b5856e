package dashdoc

import (
	"io"
	"path"
	"strings"
)

// PageKind classifies a file of the mirrored tree.
type PageKind int

// Page kinds. Module index pages carry the navigation menu that lists every
// symbol of the module; content pages are everything else written in HTML.
const (
	PageAsset PageKind = iota
	PageContent
	PageModuleIndex
)

// String returns a human-readable name for the page kind.
func (k PageKind) String() string {
	switch k {
	case PageModuleIndex:
		return "module-index"
	case PageContent:
		return "content"
	default:
		return "asset"
	}
}

// ModuleIndexFilename is the filename of module index pages.
const ModuleIndexFilename = "index.html"

// SourcePage identifies a single file under the mirrored root.
type SourcePage struct {
	// Dir is the directory relative to the source root, using forward slashes.
	// The root itself is ".".
	Dir string

	// Filename is the base name of the file.
	Filename string
}

// RelPath returns the page path relative to the source root.
func (p *SourcePage) RelPath() string {
	return path.Join(p.Dir, p.Filename)
}

// Kind classifies the page by its filename.
func (p *SourcePage) Kind() PageKind {
	return ClassifyPage(p.Filename)
}

// ClassifyPage returns the page kind for a filename.
func ClassifyPage(filename string) PageKind {
	if !strings.HasSuffix(filename, ".html") {
		return PageAsset
	}
	if filename == ModuleIndexFilename {
		return PageModuleIndex
	}
	return PageContent
}

// TransformResult holds the rewritten page and the entries extracted from it.
type TransformResult struct {
	// HTML is the rewritten page with navigation removed.
	HTML string

	// Entries are the raw entries found in the page, before ResolveEntry.
	Entries []Entry
}

// Transformer rewrites HTML pages and extracts index entries from them.
type Transformer interface {
	// Transform parses the page read from r and returns the rewritten HTML
	// along with the raw entries. Returns ENOTHTML for asset pages.
	Transform(page *SourcePage, r io.Reader) (*TransformResult, error)
}
