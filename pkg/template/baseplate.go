package template

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/svgdoc"
)

// LargestRectID names a fallback baseplate whose rect has no id.
const LargestRectID = "largest_rect"

// baseplatePattern is the naming convention that tells a baseplate
// from decorative rects: rect<width>x<height>.
var baseplatePattern = regexp.MustCompile(`^rect\d+x\d+$`)

// Baseplate is a template rectangle that receives imported artwork.
type Baseplate struct {
	ID string
	placement.Rect
	// Element is the rect inside the document the baseplate was found in.
	Element *svgdoc.Element
}

func (b Baseplate) Area() float64 {
	return b.Width * b.Height
}

// FindBaseplates returns the conventional baseplates of doc ordered by area
// (ties by id), plus notes about every rect it had to ignore or found ambiguous.
func FindBaseplates(doc *svgdoc.Document) (result []Baseplate, notes []string) {
	seen := make(map[string]bool)
	svgdoc.Walk(doc.Root(), func(e *svgdoc.Element) bool {
		if svgdoc.LocalName(e) != "rect" {
			return true
		}

		id := svgdoc.ID(e)
		if !baseplatePattern.MatchString(id) {
			return true
		}

		if seen[id] {
			notes = append(notes, fmt.Sprintf("duplicate baseplate id %q ignored", id))
			return true
		}

		rect, missing := rectOf(e)
		if missing != "" {
			notes = append(notes, fmt.Sprintf("baseplate %q skipped: %s", id, missing))
			return true
		}

		seen[id] = true
		result = append(result, Baseplate{ID: id, Rect: rect, Element: e})

		return true
	})

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Area() != result[j].Area() {
			return result[i].Area() < result[j].Area()
		}

		return result[i].ID < result[j].ID
	})

	for i := 1; i < len(result); i++ {
		prev, cur := result[i-1], result[i]
		if prev.Width == cur.Width && prev.Height == cur.Height {
			notes = append(notes, fmt.Sprintf("baseplates %q and %q have the same size %gx%g", prev.ID, cur.ID, cur.Width, cur.Height))
		}
	}

	return result, notes
}

// LargestRect returns the largest rect of doc having numeric width and height
// (x and y default to 0). It is the fallback for templates without
// conventionally named baseplates.
func LargestRect(doc *svgdoc.Document) (Baseplate, bool) {
	var (
		best  Baseplate
		found bool
	)

	svgdoc.Walk(doc.Root(), func(e *svgdoc.Element) bool {
		if svgdoc.LocalName(e) != "rect" {
			return true
		}

		w, okW := svgdoc.ParseLength(e.SelectAttrValue("width", ""))
		h, okH := svgdoc.ParseLength(e.SelectAttrValue("height", ""))
		if !okW || !okH {
			return true
		}

		x, _ := svgdoc.ParseLength(e.SelectAttrValue("x", ""))
		y, _ := svgdoc.ParseLength(e.SelectAttrValue("y", ""))
		if found && w*h <= best.Area() {
			return true
		}

		id := svgdoc.ID(e)
		if id == "" {
			id = LargestRectID
		}

		best = Baseplate{ID: id, Rect: placement.Rect{X: x, Y: y, Width: w, Height: h}, Element: e}
		found = true

		return true
	})

	return best, found
}

// Select narrows baseplates down: to targetID when it names one of them
// (an unknown target leaves the set untouched and is reported), then to the
// single largest one unless replicate is set.
func Select(baseplates []Baseplate, targetID string, replicate bool) (result []Baseplate, notes []string) {
	result = baseplates
	if targetID != "" {
		var picked []Baseplate
		for _, b := range baseplates {
			if b.ID == targetID {
				picked = append(picked, b)
			}
		}

		if len(picked) == 0 {
			notes = append(notes, fmt.Sprintf("target baseplate %q not found, using all %d baseplates", targetID, len(baseplates)))
		} else {
			result = picked
		}
	}

	if !replicate && len(result) > 1 {
		largest := result[0]
		for _, b := range result[1:] {
			if b.Area() > largest.Area() {
				largest = b
			}
		}

		result = []Baseplate{largest}
	}

	return result, notes
}

func rectOf(e *svgdoc.Element) (placement.Rect, string) {
	var v [4]float64
	for i, attr := range []string{"x", "y", "width", "height"} {
		raw := e.SelectAttr(attr)
		if raw == nil {
			return placement.Rect{}, "missing " + attr
		}

		f, ok := svgdoc.ParseLength(raw.Value)
		if !ok {
			return placement.Rect{}, fmt.Sprintf("%s %q is not numeric", attr, raw.Value)
		}

		v[i] = f
	}

	if v[2] <= 0 || v[3] <= 0 {
		return placement.Rect{}, "empty size"
	}

	return placement.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, ""
}
