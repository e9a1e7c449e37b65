//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status bar under the simulation view.
type HUD struct {
	panel *ebiten.Image
}

// NewHUD allocates a status bar of the given pixel size.
func NewHUD(width, height int) *HUD {
	panel := ebiten.NewImage(max(width, 1), max(height, 1))
	panel.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	return &HUD{panel: panel}
}

// Draw paints the status bar with its top edge at y.
func (h *HUD) Draw(dst *ebiten.Image, y int, s Status) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	dst.DrawImage(h.panel, op)

	face := basicfont.Face7x13
	text.Draw(dst, s.String(), face, 4, y+face.Ascent+1, color.White)
}
