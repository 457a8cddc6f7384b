package template

import "github.com/gucio321/iconport/pkg/svgdoc"

// Role names a metadata placeholder of the template.
type Role string

const (
	RoleIconName Role = "icon-name"
	RoleContext  Role = "context"
)

// FindPlaceholder locates the text element for role: by id first, then by
// inkscape:label. Within each convention <text> elements win over others.
// It returns nil when the template has no such placeholder.
func FindPlaceholder(doc *svgdoc.Document, role Role) *svgdoc.Element {
	for _, attr := range []string{"id", "inkscape:label"} {
		var text, other *svgdoc.Element
		svgdoc.Walk(doc.Root(), func(e *svgdoc.Element) bool {
			if text != nil {
				return false
			}

			if e.SelectAttrValue(attr, "") != string(role) {
				return true
			}

			if svgdoc.LocalName(e) == "text" {
				text = e
			} else if other == nil {
				other = e
			}

			return true
		})

		if text != nil {
			return text
		}

		if other != nil {
			return other
		}
	}

	return nil
}

// SetText replaces the visible text of a placeholder. The first <tspan>
// receives value and further tspans are emptied; without tspans the
// element's own text is set.
func SetText(e *svgdoc.Element, value string) {
	var tspans []*svgdoc.Element
	for _, c := range e.ChildElements() {
		if svgdoc.LocalName(c) == "tspan" {
			tspans = append(tspans, c)
		}
	}

	if len(tspans) == 0 {
		e.SetText(value)
		return
	}

	tspans[0].SetText(value)
	for _, t := range tspans[1:] {
		t.SetText("")
	}
}
