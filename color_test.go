package svgavatar

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Bounds(t *testing.T) {
	var digest [DigestSize]byte
	for seed := 0; seed < 256; seed++ {
		digest[0] = byte(seed)
		c := sectorColor(newTheme(digest, DefaultStrokeColor), 0, 0)

		if c.S < 20 || c.S > 100 {
			t.Errorf("saturation out of range for seed %#x: %v", seed, c.S)
		}
		if c.L < 40 || c.L > 90 {
			t.Errorf("lightness out of range for seed %#x: %v", seed, c.L)
		}
	}
}

func TestColor_Extremes(t *testing.T) {
	var digest [DigestSize]byte
	digest[1] = 0xff // sector 1 of ring 0
	th := newTheme(digest, DefaultStrokeColor)

	// global = 0xff/255, ring[0] = 0xff/255, h = s = l = 1
	assert.Equal(t, HSL{H: 510, S: 100, L: 90}, sectorColor(th, 0, 1))

	digest = [DigestSize]byte{}
	assert.Equal(t, HSL{H: 0, S: 20, L: 40}, sectorColor(newTheme(digest, "black"), 0, 0))
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "hsl(510, 100%, 90%)", HSL{510, 100, 90}.String())
	assert.Equal(t, "hsl(12.5, 46.666668%, 56.666668%)", HSL{12.5, 20 + 80.0/3, 40 + 50.0/3}.String())
}

func TestColor_RGBA(t *testing.T) {
	testCases := []struct {
		name string
		hsl  HSL
		want color.RGBA
	}{
		{name: "red", hsl: HSL{0, 100, 50}, want: color.RGBA{0xff, 0, 0, 0xff}},
		{name: "wrapped red", hsl: HSL{360, 100, 50}, want: color.RGBA{0xff, 0, 0, 0xff}},
		{name: "green", hsl: HSL{480, 100, 50}, want: color.RGBA{0, 0xff, 0, 0xff}},
		{name: "white", hsl: HSL{200, 100, 100}, want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := color.RGBAModel.Convert(tc.hsl).(color.RGBA)
			assert.Equal(t, tc.want, got)
		})
	}
}
