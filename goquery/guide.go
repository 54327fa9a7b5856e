package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

// numericLabelRe matches outline numbers such as "1.", "2.2.1 " or "10.3.".
// Bare integers are not outline numbers.
var numericLabelRe = regexp.MustCompile(`^(\d+\.)+\d*\s*$`)

// ExtractGuideLinks returns a Guide entry for every section link in doc.
// Links whose label is only an outline number are skipped.
func ExtractGuideLinks(doc *goquery.Document) []dashdoc.Entry {
	var entries []dashdoc.Entry
	doc.Find("div.section-link").Each(func(_ int, s *goquery.Selection) {
		a := s.Find("a").First()
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}

		label := strings.TrimSpace(a.Text())
		if label == "" || numericLabelRe.MatchString(label) {
			return
		}

		entries = append(entries, dashdoc.Entry{
			Name: label,
			Kind: dashdoc.KindGuide,
			Path: href,
		})
	})
	return entries
}
