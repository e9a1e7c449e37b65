// Package term drives a Game of Life run inside a terminal using tcell.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrCancelled is returned when the user backs out of a prompt.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoChoices is returned when a prompt has nothing to offer.
	ErrNoChoices = errors.New("no choices available")
)

// Open creates and initialises the terminal screen. Callers must Fini it.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return s, nil
}

// Fits reports whether a w*h grid fits the screen at two columns per cell.
func Fits(s tcell.Screen, w, h int) bool {
	cols, rows := s.Size()
	return w*cellWidth <= cols && h <= rows
}

// Resize asks the terminal to grow so a w*h grid fits.
func Resize(s tcell.Screen, w, h int) {
	s.SetSize(w*cellWidth, h)
	s.Sync()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	cols, rows := s.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range text {
		if x >= cols {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	}
	return false
}
