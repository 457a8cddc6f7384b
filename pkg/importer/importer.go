// Package importer merges a source icon into a copy of a master template.
package importer

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/svgdoc"
	"github.com/gucio321/iconport/pkg/template"
)

// GroupPrefix starts the id of every import group; the baseplate id follows.
const GroupPrefix = "ImportedIcon-"

// Placement is one (baseplate, transform) combination.
type Placement struct {
	Baseplate template.Baseplate
	Transform placement.Affine
}

// Plan computes a placement for every baseplate independently.
func Plan(sizing placement.Sizing, baseplates []template.Baseplate) []Placement {
	result := make([]Placement, len(baseplates))
	for i, b := range baseplates {
		result[i] = Placement{
			Baseplate: b,
			Transform: placement.Compute(sizing, b.Rect),
		}
	}

	return result
}

// Metadata is written into the template placeholders.
type Metadata struct {
	IconName string
	Category string
}

// Options tune Import.
type Options struct {
	// PreserveTemplateDefs copies the template's <defs> instead of the source's.
	PreserveTemplateDefs bool
}

// Import builds the merged document. Neither src nor tpl is modified;
// placements must refer to baseplates found in tpl.
func Import(src, tpl *svgdoc.Document, placements []Placement, meta Metadata, opts Options) (*svgdoc.Document, error) {
	if len(placements) == 0 {
		return nil, ErrNoBaseplate
	}

	tplRoot := tpl.Root()

	// 1.0: new root carrying the template's root attributes
	root := etree.NewElement(tplRoot.Tag)
	root.Space = tplRoot.Space
	for _, a := range tplRoot.Attr {
		root.CreateAttr(a.FullKey(), a.Value)
	}

	// 1.1: prefixes the source artwork relies on (xlink, inkscape, ...)
	for _, a := range src.Root().Attr {
		if a.Space == "xmlns" && root.SelectAttr(a.FullKey()) == nil {
			root.CreateAttr(a.FullKey(), a.Value)
		}
	}

	// 2.0: template metadata
	if m := svgdoc.Child(tplRoot, svgdoc.TagMetadata); m != nil {
		root.AddChild(svgdoc.Clone(m))
	}

	// 3.0: defs, source unless told otherwise
	defsFrom := src.Root()
	if opts.PreserveTemplateDefs {
		defsFrom = tplRoot
	}

	if defs := svgdoc.Child(defsFrom, svgdoc.TagDefs); defs != nil {
		root.AddChild(svgdoc.Clone(defs))
	} else {
		root.CreateElement(svgdoc.TagDefs).Space = root.Space
	}

	// 4.0: baseplates stay as hidden guides
	for _, p := range placements {
		rect := svgdoc.Clone(p.Baseplate.Element)
		svgdoc.Hide(rect)
		root.AddChild(rect)
	}

	// 5.0: placeholders
	for _, ph := range []struct {
		role  template.Role
		value string
	}{
		{template.RoleContext, meta.Category},
		{template.RoleIconName, meta.IconName},
	} {
		e := template.FindPlaceholder(tpl, ph.role)
		if e == nil {
			continue
		}

		e = svgdoc.Clone(e)
		template.SetText(e, ph.value)
		svgdoc.Hide(e)
		root.AddChild(e)
	}

	// 6.0: one transformed group per baseplate
	drawables := svgdoc.Drawables(src.Root())
	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		id := GroupPrefix + p.Baseplate.ID
		if seen[id] {
			return nil, fmt.Errorf("baseplate %q placed twice", p.Baseplate.ID)
		}

		seen[id] = true

		g := root.CreateElement("g")
		g.Space = root.Space
		g.CreateAttr("id", id)
		g.CreateAttr("transform", p.Transform.String())
		for _, d := range drawables {
			g.AddChild(svgdoc.Clone(d))
		}
	}

	// N.N: return
	return svgdoc.New(root), nil
}
