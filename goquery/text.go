package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// strippedStrings returns the trimmed, non-empty text nodes under sel in
// document order.
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

// joinedText joins the stripped strings of sel with sep.
func joinedText(sel *goquery.Selection, sep string) string {
	return strings.Join(strippedStrings(sel), sep)
}

// findHeading returns the first element matching selector whose trimmed
// text equals title.
func findHeading(doc *goquery.Document, selector, title string) *goquery.Selection {
	return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == title
	}).First()
}
