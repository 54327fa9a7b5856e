package dashdoc

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ResolveEntry normalizes a raw entry emitted for page into its stored form.
//
// Whitespace runs in the name collapse to a single space. Every occurrence of
// the page's own filename is removed from the path so that same-page hrefs
// reduce to a bare fragment. The remaining path must then be a single
// fragment; anything pointing at another page or containing a second "#" is
// dropped and ResolveEntry returns nil with no error.
//
// A name that still contains a newline indicates a parsing bug upstream and
// is reported as EINTERNAL. Entries with an empty name are dropped.
func ResolveEntry(page *SourcePage, raw Entry) (*Entry, error) {
	name := strings.TrimSpace(whitespaceRe.ReplaceAllString(raw.Name, " "))
	if strings.Contains(name, "\n") {
		return nil, Errorf(EINTERNAL, "entry name %q in %s contains a newline", name, page.RelPath())
	}

	if name == "" {
		return nil, nil
	}

	fragment := strings.ReplaceAll(raw.Path, page.Filename, "")
	fragment = strings.TrimPrefix(fragment, "#")
	if strings.ContainsAny(fragment, "#/") {
		return nil, nil
	}

	entry := &Entry{
		Name: name,
		Kind: raw.Kind,
		Path: page.RelPath() + "#" + fragment,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}
