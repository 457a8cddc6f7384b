package svgdoc

import (
	"regexp"
	"strconv"
	"strings"
)

// Tags that hold no artwork of their own.
const (
	TagDefs     = "defs"
	TagMetadata = "metadata"
)

var (
	lengthPattern  = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	displayPattern = regexp.MustCompile(`((?:^|;)\s*display\s*:\s*)[^;]*`)
	hasDisplay     = regexp.MustCompile(`(?:^|;)\s*display\s*:`)
)

// LocalName returns e's tag without namespace prefix.
func LocalName(e *Element) string {
	return e.Tag
}

// ID returns e's id attribute or "".
func ID(e *Element) string {
	return e.SelectAttrValue("id", "")
}

// Walk visits e and all its descendant elements in document order.
// Returning false from fn skips the children of the visited element.
func Walk(e *Element, fn func(*Element) bool) {
	if !fn(e) {
		return
	}

	for _, c := range e.ChildElements() {
		Walk(c, fn)
	}
}

// FindByID returns the first element under (and including) root with the given id.
func FindByID(root *Element, id string) *Element {
	var found *Element
	Walk(root, func(e *Element) bool {
		if found != nil {
			return false
		}

		if ID(e) == id {
			found = e
			return false
		}

		return true
	})

	return found
}

// Drawables returns root's direct children that carry artwork,
// that is everything except <defs> and <metadata>.
func Drawables(root *Element) []*Element {
	var result []*Element
	for _, c := range root.ChildElements() {
		switch LocalName(c) {
		case TagDefs, TagMetadata:
			continue
		}

		result = append(result, c)
	}

	return result
}

// Child returns the first direct child of e with the given local name.
func Child(e *Element, tag string) *Element {
	for _, c := range e.ChildElements() {
		if LocalName(c) == tag {
			return c
		}
	}

	return nil
}

// ParseLength reads the leading number of an SVG length ("16", "16px", "1e1").
func ParseLength(s string) (float64, bool) {
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Hide marks e as non-rendering: display:none goes both to its style
// and to a presentation attribute, so it survives tools that drop either.
func Hide(e *Element) {
	style := e.SelectAttrValue("style", "")
	if hasDisplay.MatchString(style) {
		style = displayPattern.ReplaceAllString(style, "${1}none")
	} else {
		if style != "" && !strings.HasSuffix(style, ";") {
			style += ";"
		}

		style += "display:none;"
	}

	e.CreateAttr("style", style)
	e.CreateAttr("display", "none")
}

// Hidden reports whether e has been marked by Hide (or equivalent).
func Hidden(e *Element) bool {
	return e.SelectAttrValue("display", "") == "none"
}
