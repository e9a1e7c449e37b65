//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"term-life/internal/app"
	"term-life/internal/render"
	"term-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cat, skipped, err := cfg.Catalog()
	for _, fe := range skipped {
		log.Printf("%s is an invalid game file: %v", fe.Path, fe.Err)
	}
	if err != nil {
		log.Fatal(err)
	}

	id := cfg.Game
	if id == "" {
		id = cat.List()[0].ID
	}
	game, err := cat.Select(id)
	if err != nil {
		log.Fatal(err)
	}
	game = cfg.Apply(game)

	sim := life.New(game.Name, game.Grid())
	g := app.New(sim, game.String(), cfg.Scale, game.Speed())
	bounds := render.Bounds(sim.Size(), cfg.Scale)

	ebiten.SetWindowTitle("term-life — " + game.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy()+app.StatusHeight)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
