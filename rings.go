package svgavatar

import (
	"fmt"
	"strconv"
	"strings"
)

// Rings controls the number of concentric rings an avatar is made of.
type Rings uint8

// The supported ring counts.
const (
	One Rings = iota + 1
	Two
	Three
	Four
)

// DefaultRings is used when the builder is not configured otherwise.
const DefaultRings = Four

// The radius scale factor of each ring, from the outermost ring inwards.
var (
	oneDivider    = []float64{1.0}
	twoDividers   = []float64{1.0, 0.65}
	threeDividers = []float64{1.0, 0.77, 0.50}
	fourDividers  = []float64{1.0, 0.77, 0.55, 0.30}
)

var ringNames = map[Rings]string{
	One:   "One",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
}

// Valid reports whether r is one of One, Two, Three or Four.
func (r Rings) Valid() bool {
	return r >= One && r <= Four
}

// Dividers returns the radius scale factors used for the rings.
// The first value is always 1.0 and the values are strictly decreasing.
// Values outside of the supported range fall back to the DefaultRings table.
func (r Rings) Dividers() []float64 {
	var d []float64

	switch r {
	case One:
		d = oneDivider
	case Two:
		d = twoDividers
	case Three:
		d = threeDividers
	default:
		d = fourDividers
	}
	return append([]float64(nil), d...)
}

// String implements fmt.Stringer.
func (r Rings) String() string {
	if name, ok := ringNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rings(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Rings) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid ring count: %d", uint8(r))
	}
	return []byte(strings.ToLower(r.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rings) UnmarshalText(text []byte) error {
	v, err := ParseRings(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// ParseRings converts a ring count given either as a number ("1".."4")
// or as a case insensitive name ("one".."four").
func ParseRings(s string) (Rings, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= int(One) && n <= int(Four) {
			return Rings(n), nil
		}
		return 0, fmt.Errorf("ring count out of range [1, 4]: %d", n)
	}
	for r, name := range ringNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown ring count: %q", s)
}
