// Package svg implements a small, mutable SVG element tree which can be
// serialized into a deterministic textual document.
//
// It only covers what is needed for generating avatars: generic elements
// with ordered attributes, a root document carrying the view box and a
// path data builder. Attribute values are escaped on output but never validated.
package svg

import (
	"bytes"
	"io"

	"github.com/beevik/etree"
)

// indentSpaces is the indentation of each nesting level in the serialized output.
const indentSpaces = 2

// Element is a generic SVG node. The attributes are kept in insertion order,
// which makes the serialized form stable across runs.
type Element struct {
	node *etree.Element
}

// NewElement creates an element with the provided tag name.
func NewElement(name string) *Element {
	return &Element{node: etree.NewElement(name)}
}

// NewGroup creates a <g> element.
func NewGroup() *Element {
	return NewElement("g")
}

// NewPath creates a <path> element.
func NewPath() *Element {
	return NewElement("path")
}

// Name returns the tag name of the element.
func (e *Element) Name() string {
	return e.node.Tag
}

// Set assigns an attribute value. An existing attribute with the same name
// is overwritten in place, otherwise the attribute is appended.
func (e *Element) Set(name, value string) *Element {
	e.node.CreateAttr(name, value)
	return e
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (string, bool) {
	attr := e.node.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// Remove deletes the named attribute, if present.
func (e *Element) Remove(name string) *Element {
	e.node.RemoveAttr(name)
	return e
}

// Append adds the child nodes at the end of the element's children list.
// A child which already belongs to another element is moved.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		e.node.AddChild(child.node)
	}
	return e
}

// Children returns the direct descendants of the element.
func (e *Element) Children() []*Element {
	nodes := e.node.ChildElements()
	children := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		children = append(children, &Element{node: n})
	}
	return children
}

// WriteTo serializes the element and its descendants into w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	doc := etree.NewDocument()
	doc.SetRoot(e.node.Copy())

	return write(doc, w)
}

// String returns the serialized element.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.WriteTo(&buf)

	return buf.String()
}

// write indents doc in place and writes it into w. Callers pass a copy,
// so the whitespace nodes never leak into the tree exposed to users.
func write(doc *etree.Document, w io.Writer) (int64, error) {
	doc.Indent(indentSpaces)
	return doc.WriteTo(w)
}
