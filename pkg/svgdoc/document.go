// Package svgdoc holds an SVG file as a structural XML tree.
// Unlike typed SVG decoders it keeps every attribute, namespace declaration
// and unknown element, so a document survives parse/serialize untouched.
package svgdoc

import (
	"fmt"

	"github.com/beevik/etree"
)

// Element is a single node of the tree.
type Element = etree.Element

// Document owns a tree of Elements. Elements are never shared between documents.
type Document struct {
	doc *etree.Document
}

// Parse parses data into a Document.
func Parse(data []byte) (*Document, error) {
	// 0.0: initialize
	doc := etree.NewDocument()

	// 1.0: unmarshal xml
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}

	// 1.1: there must be something to work with
	if doc.Root() == nil {
		return nil, &ParseError{Err: errNoRoot}
	}

	if len(doc.ChildElements()) > 1 {
		return nil, &ParseError{Err: errManyRoots}
	}

	// N.N: return
	return &Document{doc: doc}, nil
}

// New creates a document whose root is root.
// root must not be attached to any other tree.
func New(root *Element) *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)

	return &Document{doc: doc}
}

// Root returns the root (normally <svg>) element.
func (d *Document) Root() *Element {
	return d.doc.Root()
}

// Copy returns an independent deep copy of d.
func (d *Document) Copy() *Document {
	return &Document{doc: d.doc.Copy()}
}

// Bytes serializes d. Only whitespace between elements is reformatted;
// output for equal trees is byte-identical.
func (d *Document) Bytes() ([]byte, error) {
	out := d.doc.Copy()
	if !hasDeclaration(out) {
		out.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
	}

	out.Indent(2)

	data, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing svg: %w", err)
	}

	return data, nil
}

func hasDeclaration(doc *etree.Document) bool {
	for _, t := range doc.Child {
		if p, ok := t.(*etree.ProcInst); ok && p.Target == "xml" {
			return true
		}
	}

	return false
}

// Clone returns a deep, parentless copy of e that may be attached anywhere.
func Clone(e *Element) *Element {
	return e.Copy()
}
