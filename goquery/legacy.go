package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashdoc"
)

// ExtractLegacyModule returns the enums, enum values, functions and typedefs
// documented on a legacy API module page. Pages without the module marker
// yield no entries. Each section is optional; a section that is present but
// does not have the expected structure is reported as EINVALID.
func ExtractLegacyModule(doc *goquery.Document) ([]dashdoc.Entry, error) {
	if doc.Find("div.cppModule").Length() == 0 {
		return nil, nil
	}

	var entries []dashdoc.Entry

	enums, err := extractEnumerations(doc)
	if err != nil {
		return nil, err
	}
	entries = append(entries, enums...)

	functions, err := extractMembers(doc, "Functions", dashdoc.KindFunction, ".member_name", ".member_name_long_type")
	if err != nil {
		return nil, err
	}
	entries = append(entries, functions...)

	typedefs, err := extractMembers(doc, "Typedefs", dashdoc.KindType, ".member_name")
	if err != nil {
		return nil, err
	}
	entries = append(entries, typedefs...)

	return entries, nil
}

// extractEnumerations emits an Enum for each definition term under the
// "Enumerations" heading and a Value for each of its members. Members share
// the anchor of their enum.
func extractEnumerations(doc *goquery.Document) ([]dashdoc.Entry, error) {
	section := findHeading(doc, ".sectiontitle", "Enumerations")
	if section.Length() == 0 {
		return nil, nil
	}

	dl := section.Parent().Find("dl").First()
	if dl.Length() == 0 {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "enumerations section has no definition list")
	}

	var entries []dashdoc.Entry
	var err error
	dl.ChildrenFiltered("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		anchor, ok := dt.Find("a").First().Attr("name")
		if !ok {
			err = dashdoc.Errorf(dashdoc.EINVALID, "enumeration %q has no anchor", joinedText(dt, " "))
			return false
		}

		fields := strings.Fields(strings.ReplaceAll(joinedText(dt, " "), "enum ", ""))
		if len(fields) == 0 {
			err = dashdoc.Errorf(dashdoc.EINVALID, "enumeration at %q has no name", anchor)
			return false
		}
		entries = append(entries, dashdoc.Entry{Name: fields[0], Kind: dashdoc.KindEnum, Path: anchor})

		dt.NextAllFiltered("dd").First().Find(".enum-member-name-def").Each(func(_ int, member *goquery.Selection) {
			name, _, _ := strings.Cut(joinedText(member, ""), "=")
			entries = append(entries, dashdoc.Entry{Name: strings.TrimSpace(name), Kind: dashdoc.KindValue, Path: anchor})
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// extractMembers emits an entry of kind for every member link listed in the
// member list that follows the fake section title named title.
func extractMembers(doc *goquery.Document, title string, kind dashdoc.Kind, selectors ...string) ([]dashdoc.Entry, error) {
	section := findHeading(doc, ".fake_sectiontitle", title)
	if section.Length() == 0 {
		return nil, nil
	}

	members := section.NextAllFiltered(".members").First()
	if members.Length() == 0 {
		return nil, dashdoc.Errorf(dashdoc.EINVALID, "%s section has no member list", strings.ToLower(title))
	}

	var entries []dashdoc.Entry
	var err error
	for _, selector := range selectors {
		members.Find(selector).EachWithBreak(func(_ int, item *goquery.Selection) bool {
			a := item.Find("a").First()
			href, ok := a.Attr("href")
			if !ok {
				err = dashdoc.Errorf(dashdoc.EINVALID, "%s member %q has no link", strings.ToLower(title), strings.TrimSpace(item.Text()))
				return false
			}
			entries = append(entries, dashdoc.Entry{Name: a.Text(), Kind: kind, Path: href})
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}
