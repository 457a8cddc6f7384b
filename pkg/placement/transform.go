// Package placement computes where a source icon lands on a template baseplate.
//
// Every baseplate gets its own uniform scale plus translation that fits the
// source viewBox inside the baseplate, keeps the aspect ratio and centers the
// result. The transform is applied once, to the import group, so the output
// stays inspectable (see ParseTransform).
package placement

import (
	"fmt"
	"math"
)

// Rect is a target canvas (a baseplate) in template units.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Origin() Point[CanvasPos] {
	return Pt(CanvasPos(r.X), CanvasPos(r.Y))
}

func (r Rect) Center() Point[CanvasPos] {
	return Pt(CanvasPos(r.X+r.Width/2), CanvasPos(r.Y+r.Height/2))
}

// Affine maps source units onto the canvas: p' = Scale*p + Translate.
// Degraded marks the unsized-source fallback (scale 1, pure translation).
type Affine struct {
	Scale     float64
	Translate Point[CanvasPos]
	Degraded  bool
}

// Identity is the transform of an empty transform attribute.
var Identity = Affine{Scale: 1}

// Compute returns the transform that fits sizing into target.
func Compute(sizing Sizing, target Rect) Affine {
	switch sizing.Kind {
	case Sized, ImplicitSized:
		vb := sizing.box
		s := math.Min(target.Width/vb.Width, target.Height/vb.Height)
		// 1.0: center what is left after scaling
		extra := Pt(CanvasPos((target.Width-vb.Width*s)/2), CanvasPos((target.Height-vb.Height*s)/2))
		// 1.1: move viewBox origin onto the baseplate origin
		origin := Pt(CanvasPos(-vb.MinX*s), CanvasPos(-vb.MinY*s))

		return Affine{
			Scale:     s,
			Translate: target.Origin().Add(extra).Add(origin),
		}
	case Unsized:
		return Affine{
			Scale:     1,
			Translate: target.Origin(),
			Degraded:  true,
		}
	}

	panic(fmt.Sprintf("placement: unknown sizing kind %v", sizing.Kind))
}

// Apply maps a source point onto the canvas.
func (a Affine) Apply(p Point[SourcePos]) Point[CanvasPos] {
	return Redefine[CanvasPos](p).Mul(CanvasPos(a.Scale)).Add(a.Translate)
}

// Then returns the transform doing a first, b next (SVG list order "b a").
func (a Affine) Then(b Affine) Affine {
	return Affine{
		Scale:     a.Scale * b.Scale,
		Translate: a.Translate.Mul(CanvasPos(b.Scale)).Add(b.Translate),
		Degraded:  a.Degraded && b.Degraded,
	}
}

// String renders a as an SVG transform attribute value.
func (a Affine) String() string {
	ops := []op{{Name: "translate", Args: []float64{float64(a.Translate.X), float64(a.Translate.Y)}}}
	if !a.Degraded {
		ops = append(ops, op{Name: "scale", Args: []float64{a.Scale}})
	}

	return opList(ops).String()
}
