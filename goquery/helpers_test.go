package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// parse parses an HTML fixture into a document.
func parse(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// render returns the serialized document.
func render(t *testing.T, doc *gq.Document) string {
	t.Helper()
	out, err := doc.Html()
	require.NoError(t, err)
	return out
}
