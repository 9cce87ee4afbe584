package svgavatar

import "math"

// DigestSize is the size in bytes of the identifier digest.
const DigestSize = 32

// windowSize is the number of digest bytes folded into a ring hue bias.
const windowSize = 8

// theme contains the values derived once per build from the identifier digest.
type theme struct {
	digest [DigestSize]byte
	stroke string

	// global and rings are hue biases normalized to [0, 1].
	global float32
	rings  [DigestSize - windowSize + 1]float32
}

func newTheme(digest [DigestSize]byte, stroke string) *theme {
	t := &theme{
		digest: digest,
		stroke: stroke,
		global: float32(xorFold(digest[:])) / math.MaxUint8,
	}
	// The windows overlap: window i and i+1 share seven bytes.
	for i := range t.rings {
		t.rings[i] = float32(xorFold(digest[i:i+windowSize])) / math.MaxUint8
	}
	return t
}

// seed returns the raw digest byte used as the color seed of a sector.
func (t *theme) seed(ring, sector int) byte {
	return t.digest[ring*sectorCount+sector]
}

func (t *theme) globalHue() float32 {
	return t.global
}

func (t *theme) ringHue(ring int) float32 {
	return t.rings[ring]
}

func (t *theme) strokeColor() string {
	return t.stroke
}

func xorFold(b []byte) byte {
	var acc byte
	for _, v := range b {
		acc ^= v
	}
	return acc
}
