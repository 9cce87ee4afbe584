package svgavatar

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/image/math/f32"
)

// IconVG encodes the avatar in the IconVG format.
//
// The graphic is produced from the derived geometry and colors, so changes
// made through Document are not included. IconVG has no stroke operation,
// the slices are only filled.
func (a *Avatar) IconVG() ([]byte, error) {
	var enc iconvg.Encoder

	enc.Reset(iconvg.Metadata{
		ViewBox: iconvg.Rectangle{
			Min: f32.Vec2{viewBoxMin, viewBoxMin},
			Max: f32.Vec2{viewBoxMin + viewBoxSize, viewBoxMin + viewBoxSize},
		},
		Palette: iconvg.DefaultPalette,
	})
	enc.HighResolutionCoordinates = true

	for i, c := range a.colors {
		divider := a.dividers[i/sectorCount]
		lx, ly, ax, ay := sectors[i%sectorCount].scaled(divider)
		r := float32(divider)

		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		enc.SetCReg(0, false, iconvg.RGBAColor(rgba))
		enc.StartPath(0, 0, 0)
		enc.AbsLineTo(float32(lx), float32(ly))
		enc.AbsArcTo(r, r, 0, false, true, float32(ax), float32(ay))
		enc.ClosePathEndPath()
	}

	data, err := enc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("unable to encode the IconVG avatar: %w", err)
	}
	return data, nil
}
