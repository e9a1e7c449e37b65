//go:build ebiten

package app

import (
	"image/color"
	"time"

	"term-life/internal/core"
	"term-life/internal/render"
	"term-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     Simulation
	title   string
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game stepping sim once per speed interval.
func New(sim Simulation, title string, scale int, speed time.Duration) *Game {
	palette := render.NewPalette(color.White, color.Black)
	painter := render.NewGridPainter(sim.Size(), scale, palette)
	return &Game{
		sim:     sim,
		title:   title,
		painter: painter,
		hud:     ui.NewHUD(painter.Bounds().Dx(), StatusHeight),
		pacer:   core.NewFixedStep(speed),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Restore()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Reset(time.Now().UnixNano())
	}

	step := g.pacer.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells())
	g.hud.Draw(screen, g.painter.Bounds().Max.Y, ui.Status{
		Title:      g.title,
		Generation: g.sim.Generation(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.painter.Bounds()
	return b.Dx(), b.Dy() + StatusHeight
}
