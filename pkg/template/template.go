// Package template analyzes a master icon template: the baseplate rectangles
// artwork is fitted into and the icon-name/context placeholders.
package template

import (
	"fmt"
	"os"

	"github.com/gucio321/iconport/pkg/svgdoc"
)

// Template is a parsed master template. It is never modified;
// every icon works on its own copy obtained from Document.
type Template struct {
	path string
	doc  *svgdoc.Document
}

// Load reads and parses the template at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	doc, err := svgdoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	return &Template{path: path, doc: doc}, nil
}

// New wraps an already parsed document. The template keeps its own copy.
func New(doc *svgdoc.Document) *Template {
	return &Template{doc: doc.Copy()}
}

func (t *Template) Path() string {
	return t.path
}

// Document returns a fresh deep copy of the template.
func (t *Template) Document() *svgdoc.Document {
	return t.doc.Copy()
}
