package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"term-life/pkg/core"
)

// Simulation is the state the runner drives and paints.
type Simulation interface {
	core.Sim
	Generation() int
	Restore()
}

// Runner renders a simulation, waits the frame interval, then steps it.
type Runner struct {
	screen tcell.Screen
	sim    Simulation
	title  string
	speed  time.Duration
	canvas Canvas
	paused bool
	seed   func() int64
}

// NewRunner constructs a Runner. A zero speed steps as fast as possible.
func NewRunner(s tcell.Screen, sim Simulation, title string, speed time.Duration) *Runner {
	return &Runner{
		screen: s,
		sim:    sim,
		title:  title,
		speed:  speed,
		canvas: NewCanvas(),
		seed:   func() int64 { return time.Now().UnixNano() },
	}
}

// Run loops until the user quits or ctx is done. Quitting returns nil.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(r.screen, events, done)

	var tick <-chan time.Time
	for {
		if tick == nil && !r.paused {
			tick = time.After(r.speed)
		}
		r.draw()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			tick = nil
			r.sim.Step()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.handle(ev) {
				return nil
			}
			if r.paused {
				tick = nil
			}
		}
	}
}

// handle applies an input event and reports whether the run should end.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			r.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				r.paused = !r.paused
			case 'n':
				if r.paused {
					r.sim.Step()
				}
			case 'r':
				r.sim.Restore()
			case 's':
				r.sim.Reset(r.seed())
			}
		}
	}
	return false
}

func (r *Runner) draw() {
	size := r.sim.Size()
	r.screen.Clear()
	r.canvas.Paint(r.screen, r.sim.Cells(), size.W, size.H)

	if _, rows := r.screen.Size(); size.H < rows {
		status := fmt.Sprintf("%s  gen %d", r.title, r.sim.Generation())
		if r.paused {
			status += "  [paused]"
		}
		status += "  space:pause n:step r:restore s:soup q:quit"
		drawText(r.screen, 0, size.H, tcell.StyleDefault, status)
	}
	r.screen.Show()
}

func pollEvents(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
