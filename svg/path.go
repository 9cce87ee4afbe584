package svg

import (
	"strconv"
	"strings"
)

// Command is a single path data instruction, e.g. M, L, A or z.
type Command struct {
	Op   byte
	Args []float64
}

// Data accumulates path commands for the "d" attribute of a <path> element.
type Data []Command

// NewData returns an empty path data.
func NewData() Data {
	return Data{}
}

// MoveTo starts a new sub-path at (x, y).
func (d Data) MoveTo(x, y float64) Data {
	return append(d, Command{Op: 'M', Args: []float64{x, y}})
}

// LineTo draws a straight line to (x, y).
func (d Data) LineTo(x, y float64) Data {
	return append(d, Command{Op: 'L', Args: []float64{x, y}})
}

// EllipticalArcTo draws an elliptical arc with the radii rx and ry to (x, y).
func (d Data) EllipticalArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) Data {
	return append(d, Command{
		Op:   'A',
		Args: []float64{rx, ry, rotation, flag(largeArc), flag(sweep), x, y},
	})
}

// Close closes the current sub-path.
func (d Data) Close() Data {
	return append(d, Command{Op: 'z'})
}

// String formats the path data, e.g. "M0,0 L0,-1 A1,1,0,0,1,0.7,-0.7 z".
func (d Data) String() string {
	var sb strings.Builder
	for i, cmd := range d {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.Op)
		for j, arg := range cmd.Args {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatNumber(arg))
		}
	}
	return sb.String()
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// formatNumber returns the shortest decimal representation of v.
// Negative zero is written as 0.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
