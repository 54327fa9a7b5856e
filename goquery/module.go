package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

// outlinePrefixRe matches a leading outline number such as "2.1. ".
var outlinePrefixRe = regexp.MustCompile(`^(\d+\.)+\s*`)

// DashAnchorPrefix starts the name of every marker inserted by ExtractModuleMenu.
const DashAnchorPrefix = "//apple_ref/cpp/"

// ExtractModuleMenu returns one entry per internal link of the vertical
// navigation menu of a module index page.
//
// Names ending in "()" are functions and lose the suffix, names ending in
// "_t" are types, everything else is a guide section. For links with a
// single fragment whose target exists in doc, a Dash anchor marker naming the
// kind and the full link text is inserted right before the target.
func ExtractModuleMenu(doc *goquery.Document) []dashdoc.Entry {
	var targets map[string]*goquery.Selection
	var entries []dashdoc.Entry

	doc.Find(".wy-menu-vertical a.reference.internal").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := joinedText(a, " ")
		name, kind := classifyMenuLink(outlinePrefixRe.ReplaceAllString(text, ""))

		if strings.Count(href, "#") == 1 {
			if targets == nil {
				targets = anchorTargets(doc)
			}
			_, fragment, _ := strings.Cut(href, "#")
			if target, ok := targets[fragment]; ok && target.Parent().Length() > 0 {
				target.BeforeHtml(dashAnchorHTML)
				target.Prev().SetAttr("name", dashAnchorName(kind, text))
			}
		}

		entries = append(entries, dashdoc.Entry{Name: name, Kind: kind, Path: href})
	})

	return entries
}

func classifyMenuLink(name string) (string, dashdoc.Kind) {
	switch {
	case strings.HasSuffix(name, "()"):
		return strings.TrimSuffix(name, "()"), dashdoc.KindFunction
	case strings.HasSuffix(name, "_t"):
		return name, dashdoc.KindType
	default:
		return name, dashdoc.KindGuide
	}
}

// anchorTargets indexes elements by their id and name attributes.
// The first element in document order wins.
func anchorTargets(doc *goquery.Document) map[string]*goquery.Selection {
	targets := make(map[string]*goquery.Selection)
	doc.Find("[id], [name]").Each(func(_ int, s *goquery.Selection) {
		for _, key := range []string{"id", "name"} {
			if v, ok := s.Attr(key); ok && v != "" {
				if _, seen := targets[v]; !seen {
					targets[v] = s
				}
			}
		}
	})
	return targets
}

// dashAnchorHTML is the empty marker read by the viewer's table of contents.
const dashAnchorHTML = `<a class="dashAnchor"></a>`

func dashAnchorName(kind dashdoc.Kind, text string) string {
	return DashAnchorPrefix + string(kind) + "/" + url.PathEscape(text)
}
