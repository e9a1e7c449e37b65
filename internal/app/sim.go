package app

import "term-life/pkg/core"

// StatusHeight is the height in pixels of the status bar below the grid.
const StatusHeight = 16

// Simulation is the state the GUI drives and paints.
type Simulation interface {
	core.Sim
	Generation() int
	Restore()
}
