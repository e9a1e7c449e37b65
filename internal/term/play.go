package term

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/config"
	"term-life/pkg/sims/life"
)

// Options tune a Play session.
type Options struct {
	// GameID skips the menu when set.
	GameID string
	// Adjust, when set, rewrites the chosen game before it runs.
	Adjust func(config.Game) config.Game
}

// Play picks a game, offers to grow the terminal when the grid does not fit
// and runs it until the user quits or ctx is done.
func Play(ctx context.Context, s tcell.Screen, sel Selector, opts Options) error {
	var (
		game config.Game
		err  error
	)
	if opts.GameID != "" {
		game, err = sel.Select(opts.GameID)
	} else {
		game, err = SelectGame(s, sel)
	}
	if err != nil {
		return err
	}
	if opts.Adjust != nil {
		game = opts.Adjust(game)
	}

	if !Fits(s, game.Width, game.Height) {
		yes, err := Confirm(s, "Game size is larger than window size. Do you want to change your window size:")
		if err != nil {
			return err
		}
		if yes {
			Resize(s, game.Width, game.Height)
		}
	}

	sim := life.New(game.Name, game.Grid())
	err = NewRunner(s, sim, game.String(), game.Speed()).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
