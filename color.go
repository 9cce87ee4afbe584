package svgavatar

import (
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var _ color.Color = HSL{}

// HSL is a color expressed as hue (degrees), saturation and lightness (percentages).
// The hue is not reduced modulo 360, renderers are expected to wrap it.
type HSL struct {
	H, S, L float32
}

// String returns the CSS notation of the color, e.g. "hsl(210, 46.666668%, 90%)".
func (c HSL) String() string {
	return "hsl(" + formatFloat(c.H) + ", " + formatFloat(c.S) + "%, " + formatFloat(c.L) + "%)"
}

// RGBA implements the color.Color interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	h := math.Mod(float64(c.H), 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, float64(c.S)/100, float64(c.L)/100).Clamped().RGBA()
}

// sectorColor composes the fill color of a sector. The seed byte is laid out
// as hhhhssll: four bits of hue, two bits of saturation and two of lightness.
//
// Every product is explicitly converted, which forbids fused multiply-add
// and keeps the output identical on every architecture.
func sectorColor(t *theme, ring, sector int) HSL {
	seed := t.seed(ring, sector)

	h := float32(seed>>4) / 0x0f
	s := float32((seed>>2)&0x03) / 0x03
	l := float32(seed&0x03) / 0x03

	return HSL{
		H: float32(360*t.globalHue()) + float32(120*t.ringHue(ring)) + float32(30*h),
		S: 20 + float32(80*s),
		L: 40 + float32(50*l),
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
