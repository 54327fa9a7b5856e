package goquery

import "github.com/PuerkitoBio/goquery"

// Selectors for the navigation chrome removed from every page.
var navigationSelectors = []string{
	"#site-nav",
	"#resize-nav",
	"nav.wy-nav-side",
}

const (
	contentWrapSelector = ".wy-nav-content-wrap"
	contentClass        = "docset-content"
	styleID             = "docset-style"
)

// styleOverride closes the gap left by the removed side navigation.
const styleOverride = `<style id="` + styleID + `">.wy-nav-content-wrap.` + contentClass + `{margin-left:0 !important}</style>`

// StripNavigation removes site navigation, the resize handle and the side
// navigation from doc. Missing elements are ignored. When the content
// wrapper is present it is marked so that the injected style zeroes its left
// margin. Applying StripNavigation more than once has no further effect.
func StripNavigation(doc *goquery.Document) {
	for _, selector := range navigationSelectors {
		doc.Find(selector).Remove()
	}

	wrap := doc.Find(contentWrapSelector)
	if wrap.Length() == 0 {
		return
	}
	wrap.AddClass(contentClass)

	if doc.Find("style#"+styleID).Length() > 0 {
		return
	}
	doc.Find("head").First().AppendHtml(styleOverride)
}
