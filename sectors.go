package svgavatar

import "math"

// sectorCount is the number of pie slices making up a ring.
const sectorCount = 8

const frac1Sqrt2 = 1 / math.Sqrt2

// sector holds the unit direction of the line endpoint and of the arc endpoint
// of a 45° pie slice. The arc endpoint of a sector is the line endpoint of the
// next one, so the eight slices tile the whole circle.
type sector struct {
	lineX, lineY float64
	arcX, arcY   float64
}

// sectors starts at the top (-90°) and goes clockwise in the SVG coordinate system.
var sectors = [sectorCount]sector{
	{0, -1, frac1Sqrt2, -frac1Sqrt2},
	{frac1Sqrt2, -frac1Sqrt2, 1, 0},
	{1, 0, frac1Sqrt2, frac1Sqrt2},
	{frac1Sqrt2, frac1Sqrt2, 0, 1},
	{0, 1, -frac1Sqrt2, frac1Sqrt2},
	{-frac1Sqrt2, frac1Sqrt2, -1, 0},
	{-1, 0, -frac1Sqrt2, -frac1Sqrt2},
	{-frac1Sqrt2, -frac1Sqrt2, 0, -1},
}

// scaled returns the line and arc endpoints multiplied by the ring divider.
func (s sector) scaled(divider float64) (lx, ly, ax, ay float64) {
	return s.lineX * divider, s.lineY * divider, s.arcX * divider, s.arcY * divider
}
