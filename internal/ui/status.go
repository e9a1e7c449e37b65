// Package ui draws the GUI status bar.
package ui

import "fmt"

// Status is the information shown in the status bar.
type Status struct {
	Title      string
	Generation int
	Paused     bool
}

func (s Status) String() string {
	line := fmt.Sprintf("%s  gen %d", s.Title, s.Generation)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}
