package svgdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const inkscapeSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" width="24" height="24" viewBox="0 0 24 24" sodipodi:docname="icon.svg">
  <sodipodi:namedview id="base" inkscape:zoom="8"/>
  <defs id="defs1"><linearGradient id="g1"/></defs>
  <g id="layer1" inkscape:label="Layer 1" inkscape:groupmode="layer">
    <path id="p1" d="M0 0L24 24" data-custom="kept"/>
  </g>
</svg>`

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unclosed tag", `<svg><g></svg>`},
		{"empty", ``},
		{"only a comment", `<!-- nothing -->`},
		{"second root", `<svg></svg><g/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}

			if !errors.Is(err, ErrParse) {
				t.Errorf("errors.Is(%v, ErrParse) = false", err)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %T is not a *ParseError", err)
			}
		})
	}
}

func TestRoundTripPreservesUnknownAttributes(t *testing.T) {
	doc, err := Parse([]byte(inkscapeSVG))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	for _, want := range []string{
		`xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`,
		`sodipodi:docname="icon.svg"`,
		`inkscape:label="Layer 1"`,
		`data-custom="kept"`,
		`<sodipodi:namedview`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("serialized output lacks %q", want)
		}
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse() error = %v", err)
	}

	out2, err := again.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	if !bytes.Equal(out, out2) {
		t.Errorf("serialization is not stable:\n%s\n---\n%s", out, out2)
	}
}

func TestBytesAddsDeclarationOnce(t *testing.T) {
	doc, err := Parse([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	if !strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output does not start with xml declaration: %s", out)
	}

	if n := strings.Count(string(out), "<?xml"); n != 1 {
		t.Errorf("found %d declarations, want 1", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc, err := Parse([]byte(inkscapeSVG))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	layer := FindByID(doc.Root(), "layer1")
	if layer == nil {
		t.Fatal("layer1 not found")
	}

	c := Clone(layer)
	c.CreateAttr("id", "changed")
	FindByID(c, "p1").CreateAttr("d", "M1 1")

	if ID(layer) != "layer1" {
		t.Errorf("original id changed to %q", ID(layer))
	}

	if d := FindByID(doc.Root(), "p1").SelectAttrValue("d", ""); d != "M0 0L24 24" {
		t.Errorf("original path data changed to %q", d)
	}

	if c.Parent() != nil {
		t.Error("clone still has a parent")
	}
}

func TestDocumentCopyIsIndependent(t *testing.T) {
	doc, err := Parse([]byte(inkscapeSVG))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cp := doc.Copy()
	cp.Root().RemoveChild(FindByID(cp.Root(), "layer1"))

	if FindByID(doc.Root(), "layer1") == nil {
		t.Error("removing from the copy affected the original")
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"16", 16, true},
		{"16px", 16, true},
		{" 2.5mm", 2.5, true},
		{"-3", -3, true},
		{"1e1", 10, true},
		{".5", 0.5, true},
		{"", 0, false},
		{"auto", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLength(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseLength(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHide(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{"no style", "", "display:none;"},
		{"style without semicolon", "fill:red", "fill:red;display:none;"},
		{"style with semicolon", "fill:red;", "fill:red;display:none;"},
		{"existing display", "display:inline;fill:red", "display:none;fill:red"},
		{"display in the middle", "fill:red; display : block;stroke:none", "fill:red; display : none;stroke:none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(`<svg><rect id="r"/></svg>`))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			r := FindByID(doc.Root(), "r")
			if tt.style != "" {
				r.CreateAttr("style", tt.style)
			}

			Hide(r)

			if got := r.SelectAttrValue("style", ""); got != tt.want {
				t.Errorf("style = %q, want %q", got, tt.want)
			}

			if !Hidden(r) {
				t.Error("Hidden() = false after Hide()")
			}
		})
	}
}

func TestDrawables(t *testing.T) {
	doc, err := Parse([]byte(`<svg><metadata/><defs/><path id="a"/><g id="b"/></svg>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := Drawables(doc.Root())
	if len(got) != 2 || ID(got[0]) != "a" || ID(got[1]) != "b" {
		t.Errorf("Drawables() = %v, want [a b]", got)
	}
}
