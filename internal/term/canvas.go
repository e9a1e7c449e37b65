package term

import "github.com/gdamore/tcell/v2"

// cellWidth is the number of terminal columns used per grid cell so cells
// render roughly square.
const cellWidth = 2

// Canvas paints binary cell data as coloured blocks.
type Canvas struct {
	On  tcell.Color
	Off tcell.Color
}

// NewCanvas returns a canvas painting live cells white on black.
func NewCanvas() Canvas {
	return Canvas{On: tcell.ColorWhite, Off: tcell.ColorBlack}
}

// Paint draws a row-major w*h grid at the top-left of the screen, clipping
// anything outside the window.
func (c Canvas) Paint(s tcell.Screen, cells []uint8, w, h int) {
	if len(cells) != w*h {
		return
	}
	on := tcell.StyleDefault.Background(c.On).Foreground(c.On)
	off := tcell.StyleDefault.Background(c.Off).Foreground(c.Off)
	cols, rows := s.Size()
	for y := 0; y < h && y < rows; y++ {
		for x := 0; x < w && x*cellWidth < cols; x++ {
			style := off
			if cells[y*w+x] == 1 {
				style = on
			}
			for i := 0; i < cellWidth; i++ {
				s.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}
}
