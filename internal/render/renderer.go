//go:build ebiten

package render

import (
	"image"

	"term-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a generation into one image and draws it scaled.
type GridPainter struct {
	size    core.Size
	scale   int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, scale int, palette Palette) *GridPainter {
	return &GridPainter{
		size:    size,
		scale:   scale,
		palette: palette,
		img:     ebiten.NewImage(size.W, size.H),
		buf:     make([]byte, 4*size.W*size.H),
	}
}

// Bounds returns the screen area the grid occupies.
func (gp *GridPainter) Bounds() image.Rectangle { return Bounds(gp.size, gp.scale) }

// Blit paints cells into dst. Buffers of the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.size.W*gp.size.H {
		return
	}
	gp.palette.fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}
