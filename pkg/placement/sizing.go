package placement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gucio321/iconport/pkg/svgdoc"
)

// SizingKind tells how much a source document says about its own size.
type SizingKind int

const (
	// Unsized documents have neither a viewBox nor width/height.
	Unsized SizingKind = iota
	// ImplicitSized documents have width/height but no viewBox.
	ImplicitSized
	// Sized documents have a usable viewBox.
	Sized
)

func (k SizingKind) String() string {
	switch k {
	case Unsized:
		return "unsized"
	case ImplicitSized:
		return "implicit"
	case Sized:
		return "viewBox"
	}

	return "SizingKind(" + strconv.Itoa(int(k)) + ")"
}

// ViewBox is the (minX, minY, width, height) window of a source SVG.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

func (v ViewBox) Center() Point[SourcePos] {
	return Pt(SourcePos(v.MinX+v.Width/2), SourcePos(v.MinY+v.Height/2))
}

// Sizing is the tagged variant Sized(viewBox) | ImplicitSized(width, height) | Unsized.
// For ImplicitSized the box is (0, 0, width, height).
type Sizing struct {
	Kind SizingKind
	box  ViewBox
}

func SizedBy(vb ViewBox) Sizing {
	return Sizing{Kind: Sized, box: vb}
}

func ImplicitlySized(width, height float64) Sizing {
	return Sizing{Kind: ImplicitSized, box: ViewBox{Width: width, Height: height}}
}

func NoSizing() Sizing {
	return Sizing{Kind: Unsized}
}

// Box returns the effective viewBox; false for Unsized.
func (s Sizing) Box() (ViewBox, bool) {
	if s.Kind == Unsized {
		return ViewBox{}, false
	}

	return s.box, true
}

var viewBoxSeparator = regexp.MustCompile(`[,\s]+`)

// ParseViewBox parses a viewBox attribute value. Width and height must be positive.
func ParseViewBox(s string) (ViewBox, bool) {
	parts := viewBoxSeparator.Split(strings.Trim(s, " \t\r\n,"), -1)
	if len(parts) != 4 {
		return ViewBox{}, false
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return ViewBox{}, false
		}

		v[i] = f
	}

	if v[2] <= 0 || v[3] <= 0 {
		return ViewBox{}, false
	}

	return ViewBox{v[0], v[1], v[2], v[3]}, true
}

// SizingOf inspects an SVG root element.
func SizingOf(root *svgdoc.Element) Sizing {
	if vb, ok := ParseViewBox(root.SelectAttrValue("viewBox", "")); ok {
		return SizedBy(vb)
	}

	w, okW := svgdoc.ParseLength(root.SelectAttrValue("width", ""))
	h, okH := svgdoc.ParseLength(root.SelectAttrValue("height", ""))
	if okW && okH && w > 0 && h > 0 {
		return ImplicitlySized(w, h)
	}

	return NoSizing()
}
