// Package render converts binary cell data into pixels for the GUI.
package render

import (
	"image"
	"image/color"

	"term-life/pkg/core"
)

// Palette holds the packed RGBA bytes painted for live and dead cells.
type Palette struct {
	live, dead [4]byte
}

// NewPalette packs the two display colours.
func NewPalette(live, dead color.Color) Palette {
	return Palette{live: pack(live), dead: pack(dead)}
}

func pack(c color.Color) [4]byte {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return [4]byte{rgba.R, rgba.G, rgba.B, rgba.A}
}

// fill writes one RGBA pixel per cell into buf. Only state 1 is live.
func (p Palette) fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := &p.dead
		if c == 1 {
			px = &p.live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// Bounds returns the screen rectangle covered by a grid drawn at scale.
func Bounds(size core.Size, scale int) image.Rectangle {
	return image.Rect(0, 0, size.W*scale, size.H*scale)
}
