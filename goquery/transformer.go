// Package goquery implements page transformation and index extraction for
// mirrored documentation pages using goquery.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

var _ dashdoc.Transformer = (*Transformer)(nil)

// pageExtractor extracts raw index entries from one kind of page.
type pageExtractor interface {
	Extract(doc *goquery.Document) ([]dashdoc.Entry, error)
}

// contentExtractor handles generic content pages: legacy module listings
// and section links.
type contentExtractor struct{}

func (contentExtractor) Extract(doc *goquery.Document) ([]dashdoc.Entry, error) {
	entries, err := ExtractLegacyModule(doc)
	if err != nil {
		return nil, err
	}
	return append(entries, ExtractGuideLinks(doc)...), nil
}

// moduleIndexExtractor handles module index pages, which additionally carry
// the navigation menu listing every symbol of the module.
type moduleIndexExtractor struct{}

func (moduleIndexExtractor) Extract(doc *goquery.Document) ([]dashdoc.Entry, error) {
	entries, err := contentExtractor{}.Extract(doc)
	if err != nil {
		return nil, err
	}
	return append(entries, ExtractModuleMenu(doc)...), nil
}

var extractors = map[dashdoc.PageKind]pageExtractor{
	dashdoc.PageContent:     contentExtractor{},
	dashdoc.PageModuleIndex: moduleIndexExtractor{},
}

// Transformer rewrites mirrored HTML pages for the docset.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform parses the page, extracts its entries, strips the navigation
// and renders the result. Entries are extracted before the navigation is
// removed since the module menu lives in the side navigation.
func (t *Transformer) Transform(page *dashdoc.SourcePage, r io.Reader) (*dashdoc.TransformResult, error) {
	extractor, ok := extractors[page.Kind()]
	if !ok {
		return nil, dashdoc.Errorf(dashdoc.ENOTHTML, "%s is not an HTML page", page.RelPath())
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "failed to parse %s: %v", page.RelPath(), err)
	}

	entries, err := extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	StripNavigation(doc)

	out, err := doc.Html()
	if err != nil {
		return nil, dashdoc.Errorf(dashdoc.EINTERNAL, "failed to render %s: %v", page.RelPath(), err)
	}

	return &dashdoc.TransformResult{HTML: out, Entries: entries}, nil
}
