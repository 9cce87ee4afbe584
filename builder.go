package svgavatar

import (
	"crypto/sha256"
	"encoding"
	"hash"
	"io"

	"github.com/esimov/svgavatar/svg"
)

// DefaultStrokeColor is the stroke color of the slices when none is configured.
const DefaultStrokeColor = "black"

// The view box spans slightly beyond the unit circle so the stroke
// of the outermost ring is not clipped.
const (
	viewBoxMin  = -1.1
	viewBoxSize = 2.3
)

// strokeWidth is the width of the slice outlines in user units.
const strokeWidth = "0.01"

var _ io.Writer = (*Builder)(nil)

// Builder is used to configure and construct a new Avatar.
//
// Identifiers are additive: every call to Identifier, IdentifierBytes or
// Write appends to the data hashed so far instead of replacing it.
// A Builder is consumed by Build; using it afterwards panics. Call Clone
// before Build to derive several avatars from a common identifier prefix.
//
// The zero value is ready to use and behaves like NewBuilder.
type Builder struct {
	hasher hash.Hash
	rings  Rings
	stroke string
	built  bool
}

// NewBuilder returns a builder with DefaultRings and DefaultStrokeColor.
func NewBuilder() *Builder {
	return &Builder{
		hasher: sha256.New(),
		rings:  DefaultRings,
		stroke: DefaultStrokeColor,
	}
}

// Identifier appends the identifier segment id.
func (b *Builder) Identifier(id string) *Builder {
	io.WriteString(b.mustHasher(), id)
	return b
}

// IdentifierBytes appends the byte identifier segment data.
func (b *Builder) IdentifierBytes(data []byte) *Builder {
	b.mustHasher().Write(data)
	return b
}

// Write implements io.Writer, so identifiers can be streamed into the builder.
// It never returns an error.
func (b *Builder) Write(p []byte) (int, error) {
	return b.mustHasher().Write(p)
}

// Rings sets the number of rings of the avatar. Unsupported values are
// replaced with DefaultRings.
func (b *Builder) Rings(rings Rings) *Builder {
	b.mustHasher()
	if !rings.Valid() {
		rings = DefaultRings
	}
	b.rings = rings
	return b
}

// StrokeColor sets the stroke color of the path elements. The value is
// written verbatim into the stroke attribute and is not validated; see
// https://www.w3.org/TR/SVG2/painting.html#SpecifyingPaint for valid values.
func (b *Builder) StrokeColor(color string) *Builder {
	b.mustHasher()
	b.stroke = color
	return b
}

// Clone returns an independent copy of the builder, including the identifier
// data appended so far.
func (b *Builder) Clone() *Builder {
	state, err := b.mustHasher().(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		panic("svgavatar: cannot clone hash state: " + err.Error())
	}
	hasher := sha256.New()
	if err := hasher.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		panic("svgavatar: cannot clone hash state: " + err.Error())
	}

	return &Builder{
		hasher: hasher,
		rings:  b.rings,
		stroke: b.stroke,
	}
}

// Build finalizes the identifier digest and assembles the avatar.
// The builder cannot be used anymore once Build returns.
func (b *Builder) Build() *Avatar {
	var digest [DigestSize]byte
	copy(digest[:], b.mustHasher().Sum(nil))
	b.hasher = nil
	b.built = true

	t := newTheme(digest, b.stroke)
	dividers := b.rings.Dividers()

	g := svg.NewGroup()
	colors := make([]HSL, 0, len(dividers)*sectorCount)
	for ring, divider := range dividers {
		for idx := range sectors {
			c := sectorColor(t, ring, idx)
			g.Append(createPath(sectors[idx], divider, c, t.strokeColor()))
			colors = append(colors, c)
		}
	}

	doc := svg.NewDocument().SetViewBox(viewBoxMin, viewBoxMin, viewBoxSize, viewBoxSize)
	doc.Append(g)

	return &Avatar{
		document: doc,
		digest:   digest,
		rings:    b.rings,
		dividers: dividers,
		colors:   colors,
		stroke:   b.stroke,
	}
}

// createPath draws the pie slice of a sector scaled by the ring divider.
func createPath(s sector, divider float64, fill HSL, stroke string) *svg.Element {
	lx, ly, ax, ay := s.scaled(divider)

	data := svg.NewData().
		MoveTo(0, 0).
		LineTo(lx, ly).
		EllipticalArcTo(divider, divider, 0, false, true, ax, ay).
		Close()

	return svg.NewPath().
		Set("fill", fill.String()).
		Set("stroke", stroke).
		Set("stroke-width", strokeWidth).
		Set("d", data.String())
}

// mustHasher returns the running digest, setting up the defaults of a zero
// Builder on first use. It panics once the builder has been consumed.
func (b *Builder) mustHasher() hash.Hash {
	if b.built {
		panic("svgavatar: builder used after Build")
	}
	if b.hasher == nil {
		*b = *NewBuilder()
	}
	return b.hasher
}
