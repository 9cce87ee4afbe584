package svgavatar

import (
	"fmt"
	"io"

	"github.com/esimov/svgavatar/svg"
)

var (
	_ fmt.Stringer = (*Avatar)(nil)
	_ io.WriterTo  = (*Avatar)(nil)
)

// Avatar is the vector image generated from an identifier by Builder.
type Avatar struct {
	document *svg.Document
	digest   [DigestSize]byte
	rings    Rings
	dividers []float64
	colors   []HSL
	stroke   string
}

// Save writes the SVG avatar to the file at path. The file is created or
// truncated; errors returned by the file system are passed through unchanged.
func (a *Avatar) Save(path string) error {
	return a.document.Save(path)
}

// WriteTo writes the SVG document into w.
func (a *Avatar) WriteTo(w io.Writer) (int64, error) {
	return a.document.WriteTo(w)
}

// String returns the SVG document.
func (a *Avatar) String() string {
	return a.document.String()
}

// Bytes returns the SVG document.
func (a *Avatar) Bytes() []byte {
	return a.document.Bytes()
}

// Document gives direct access to the underlying SVG document.
// Changes made through it are reflected by Save, WriteTo, String and Bytes,
// but not by the values derived from the identifier (Colors, IconVG).
func (a *Avatar) Document() *svg.Document {
	return a.document
}

// Digest returns the SHA-256 digest of the identifier.
func (a *Avatar) Digest() [DigestSize]byte {
	return a.digest
}

// Rings returns the number of rings the avatar has been built with.
func (a *Avatar) Rings() Rings {
	return a.rings
}

// StrokeColor returns the configured stroke color.
func (a *Avatar) StrokeColor() string {
	return a.stroke
}

// Colors returns the fill colors of the slices, ring by ring from the
// outermost one, each ring starting with the top sector and going clockwise.
func (a *Avatar) Colors() []HSL {
	return append([]HSL(nil), a.colors...)
}
