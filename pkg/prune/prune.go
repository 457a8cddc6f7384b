// Package prune removes artwork lying entirely outside an icon's canvas.
//
// Geometry comes from a BoundsProvider; pruning never guesses. Elements the
// provider says nothing about, elements without id and elements that touch
// the (margin-expanded) canvas even partially are kept.
package prune

import (
	"context"
	"fmt"

	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/svgdoc"
)

// DefaultMargin is how far (in user units) the viewBox is grown before testing.
const DefaultMargin = 2.0

// Box is an axis-aligned bounding box.
type Box struct {
	X, Y, Width, Height float64
}

func BoxOf(vb placement.ViewBox) Box {
	return Box{vb.MinX, vb.MinY, vb.Width, vb.Height}
}

// Degenerate boxes say nothing about where an element is.
func (b Box) Degenerate() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Expand grows b by margin on all four sides.
func (b Box) Expand(margin float64) Box {
	return Box{b.X - margin, b.Y - margin, b.Width + 2*margin, b.Height + 2*margin}
}

// Intersects treats boxes as closed: touching edges intersect.
func (b Box) Intersects(o Box) bool {
	return !(b.X+b.Width < o.X || b.X > o.X+o.Width || b.Y+b.Height < o.Y || b.Y > o.Y+o.Height)
}

// BoundsProvider reports bounding boxes (in the document's user units)
// keyed by element id. One call covers the whole document.
type BoundsProvider interface {
	BoundsFor(ctx context.Context, doc *svgdoc.Document) (map[string]Box, error)
}

// Decision is the verdict for one identified element.
type Decision struct {
	ID     string
	Box    Box
	Known  bool
	Remove bool

	// element is what gets removed; ids are not guaranteed unique
	element *svgdoc.Element
}

// Report summarizes a pruning pass.
type Report struct {
	Decisions []Decision
	// Unidentified counts artwork elements that could not be judged for lack of an id.
	Unidentified int
}

// Removed lists the ids of removed elements in document order.
func (r Report) Removed() []string {
	var result []string
	for _, d := range r.Decisions {
		if d.Remove {
			result = append(result, d.ID)
		}
	}

	return result
}

// Decide judges every artwork element of doc against area without touching doc.
func Decide(doc *svgdoc.Document, bounds map[string]Box, area Box) Report {
	var r Report
	for _, top := range svgdoc.Drawables(doc.Root()) {
		svgdoc.Walk(top, func(e *svgdoc.Element) bool {
			id := svgdoc.ID(e)
			if id == "" {
				r.Unidentified++
				return true
			}

			box, known := bounds[id]
			d := Decision{ID: id, Box: box, Known: known, element: e}
			d.Remove = known && !box.Degenerate() && !box.Intersects(area)
			r.Decisions = append(r.Decisions, d)

			// nothing below a removed element needs a verdict
			return !d.Remove
		})
	}

	return r
}

// Prune removes from doc every element lying fully outside vb grown by margin.
// When the provider fails, doc is left untouched and the error
// (wrapping ErrOracleUnavailable) is returned.
func Prune(ctx context.Context, doc *svgdoc.Document, vb placement.ViewBox, margin float64, provider BoundsProvider) (Report, error) {
	if provider == nil {
		return Report{}, fmt.Errorf("%w: no provider configured", ErrOracleUnavailable)
	}

	bounds, err := provider.BoundsFor(ctx, doc)
	if err != nil {
		return Report{}, wrapUnavailable(err)
	}

	r := Decide(doc, bounds, BoxOf(vb).Expand(margin))
	root := doc.Root()
	for _, d := range r.Decisions {
		e := d.element
		if !d.Remove || e == nil || e == root || e.Parent() == nil {
			continue
		}

		e.Parent().RemoveChild(e)
	}

	return r, nil
}
