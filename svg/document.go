package svg

import (
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the SVG XML namespace written on every document.
const Namespace = "http://www.w3.org/2000/svg"

// Document is the root <svg> element.
type Document struct {
	*Element
	doc *etree.Document
}

// NewDocument creates an empty document with the SVG namespace set.
func NewDocument() *Document {
	doc := etree.NewDocument()
	root := &Element{node: doc.CreateElement("svg")}

	return &Document{
		Element: root.Set("xmlns", Namespace),
		doc:     doc,
	}
}

// SetViewBox sets the viewBox attribute of the document.
func (d *Document) SetViewBox(minX, minY, width, height float64) *Document {
	d.Set("viewBox", strings.Join([]string{
		formatNumber(minX),
		formatNumber(minY),
		formatNumber(width),
		formatNumber(height),
	}, " "))

	return d
}

// WriteTo serializes the whole document into w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return write(d.doc.Copy(), w)
}

// String returns the serialized document.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)

	return buf.Bytes()
}

// Save writes the document to the file at path, creating or truncating it.
// The error returned by the file system is passed through unchanged.
func (d *Document) Save(path string) error {
	doc := d.doc.Copy()
	doc.Indent(indentSpaces)

	return doc.WriteToFile(path)
}
