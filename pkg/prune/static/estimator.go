// Package static estimates element bounding boxes without external tools.
//
// Boxes enclose every point the drawing instructions of an element go
// through, curves being sampled. Elements that produce no drawing
// instructions (text, use, image, ...) get no box and are therefore never
// pruned.
package static

import (
	"context"
	"math"

	"github.com/beevik/etree"
	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/prune"
	"github.com/gucio321/iconport/pkg/svgdoc"
)

var _ prune.BoundsProvider = Estimator{}

// Estimator implements prune.BoundsProvider on top of rustyoz/svg.
type Estimator struct{}

func (Estimator) BoundsFor(ctx context.Context, doc *svgdoc.Document) (map[string]prune.Box, error) {
	result := make(map[string]prune.Box)
	var err error
	for _, top := range svgdoc.Drawables(doc.Root()) {
		svgdoc.Walk(top, func(e *svgdoc.Element) bool {
			if err = ctx.Err(); err != nil {
				return false
			}

			id := svgdoc.ID(e)
			if id == "" {
				return true
			}

			if box, ok := measure(e, doc.Root()); ok {
				result[id] = box
			}

			return true
		})

		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// isolate puts a copy of e into an otherwise empty document, keeping the
// transforms of its ancestors below root.
func isolate(e, root *svgdoc.Element) *svgdoc.Document {
	var chain []*svgdoc.Element
	for p := e.Parent(); p != nil && p != root; p = p.Parent() {
		chain = append(chain, p)
	}

	wrapper := etree.NewElement("svg")
	wrapper.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	parent := wrapper
	for i := len(chain) - 1; i >= 0; i-- {
		t := chain[i].SelectAttrValue("transform", "")
		if t == "" {
			continue
		}

		g := parent.CreateElement("g")
		g.CreateAttr("transform", t)
		parent = g
	}

	parent.AddChild(svgdoc.Clone(e))

	return svgdoc.New(wrapper)
}

func measure(e, root *svgdoc.Element) (box prune.Box, ok bool) {
	id := svgdoc.ID(e)
	defer func() {
		if r := recover(); r != nil {
			glg.Debugf("static bounds: cannot measure %s: %v", id, r)
			box, ok = prune.Box{}, false
		}
	}()

	data, err := isolate(e, root).Bytes()
	if err != nil {
		return prune.Box{}, false
	}

	// 1.0: unmarshal xml
	parsed, err := svg.ParseSvg(string(data), id, 1)
	if err != nil {
		glg.Debugf("static bounds: cannot parse %s: %v", id, err)
		return prune.Box{}, false
	}

	// 2.0: collect every point the instructions visit
	ext, err := collect(parsed.ParseDrawingInstructions())
	if err != nil {
		glg.Debugf("static bounds: %s: %v", id, err)
		return prune.Box{}, false
	}

	// N.N: return
	return ext.box()
}

// collect reads draw until it is closed, even after an error, so the
// producer never blocks. The first error wins.
func collect(draw <-chan *svg.DrawingInstruction, errs <-chan error) (extent, error) {
	var (
		ext    extent
		cur    point
		failed error
	)

reading:
	for {
		select {
		case cmd, open := <-draw:
			if !open {
				break reading
			}

			if cmd == nil || failed != nil {
				continue
			}

			switch cmd.Kind {
			case svg.MoveInstruction, svg.LineInstruction:
				cur = placement.Pt(placement.SourcePos(cmd.M[0]), placement.SourcePos(cmd.M[1]))
				ext.add(cmd.M[0], cmd.M[1])
			case svg.CurveInstruction:
				c := cmd.CurvePoints
				end := placement.Pt(placement.SourcePos(c.T[0]), placement.SourcePos(c.T[1]))
				for _, p := range sampleCurve(curveSteps,
					cur,
					placement.Pt(placement.SourcePos(c.C1[0]), placement.SourcePos(c.C1[1])),
					placement.Pt(placement.SourcePos(c.C2[0]), placement.SourcePos(c.C2[1])),
					end,
				) {
					ext.add(float64(p.X), float64(p.Y))
				}

				cur = end
			case svg.CircleInstruction:
				r := 0.0
				if cmd.Radius != nil {
					r = *cmd.Radius
				}

				ext.add(cmd.M[0]-r, cmd.M[1]-r)
				ext.add(cmd.M[0]+r, cmd.M[1]+r)
			case svg.CloseInstruction, svg.PaintInstruction:
			}
		case err, open := <-errs:
			if !open {
				errs = nil
				continue
			}

			if err != nil && failed == nil {
				failed = err
			}
		}
	}

	// errors still buffered when draw closed
	for errs != nil {
		select {
		case err, open := <-errs:
			if !open {
				errs = nil
				continue
			}

			if err != nil && failed == nil {
				failed = err
			}
		default:
			errs = nil
		}
	}

	return ext, failed
}

type extent struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func (e *extent) add(x, y float64) {
	if !e.any {
		e.minX, e.maxX, e.minY, e.maxY = x, x, y, y
		e.any = true

		return
	}

	e.minX, e.maxX = math.Min(e.minX, x), math.Max(e.maxX, x)
	e.minY, e.maxY = math.Min(e.minY, y), math.Max(e.maxY, y)
}

func (e extent) box() (prune.Box, bool) {
	if !e.any {
		return prune.Box{}, false
	}

	return prune.Box{X: e.minX, Y: e.minY, Width: e.maxX - e.minX, Height: e.maxY - e.minY}, true
}
