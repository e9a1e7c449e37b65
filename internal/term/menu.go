package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/config"
)

// PageSize is the number of entries a prompt shows at once.
const PageSize = 10

const moreChoices = "(Move up or down for more choices)"

// Selector lists games and resolves a chosen entry.
type Selector interface {
	List() []config.Summary
	Select(id string) (config.Game, error)
}

// SelectGame shows the game menu and returns the chosen game.
func SelectGame(s tcell.Screen, sel Selector) (config.Game, error) {
	list := sel.List()
	items := make([]string, len(list))
	for i, sum := range list {
		items[i] = sum.String()
	}
	idx, err := Choose(s, "Select a game:", items)
	if err != nil {
		return config.Game{}, err
	}
	return sel.Select(list[idx].ID)
}

// Confirm asks a Yes/No question and reports whether Yes was picked.
func Confirm(s tcell.Screen, question string) (bool, error) {
	idx, err := Choose(s, question, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// Choose shows a paged list and blocks until an entry is picked with Enter.
// Escape or Ctrl-C return ErrCancelled.
func Choose(s tcell.Screen, title string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoChoices
	}
	cur := 0
	last := len(items) - 1
	for {
		drawMenu(s, title, items, cur)

		switch ev := s.PollEvent().(type) {
		case nil:
			return -1, ErrCancelled
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				return -1, ErrCancelled
			}
			switch ev.Key() {
			case tcell.KeyEnter:
				return cur, nil
			case tcell.KeyUp:
				cur--
			case tcell.KeyDown:
				cur++
			case tcell.KeyPgUp:
				cur -= PageSize
			case tcell.KeyPgDn:
				cur += PageSize
			case tcell.KeyHome:
				cur = 0
			case tcell.KeyEnd:
				cur = last
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'k':
					cur--
				case 'j':
					cur++
				}
			}
			cur = max(0, min(cur, last))
		}
	}
}

func drawMenu(s tcell.Screen, title string, items []string, cur int) {
	s.Clear()
	drawText(s, 0, 0, tcell.StyleDefault.Bold(true), title)

	start := (cur / PageSize) * PageSize
	end := min(start+PageSize, len(items))
	for i := start; i < end; i++ {
		style := tcell.StyleDefault
		prefix := "  "
		if i == cur {
			style = style.Reverse(true)
			prefix = "> "
		}
		drawText(s, 0, 1+i-start, style, fmt.Sprintf("%s%s", prefix, items[i]))
	}
	if len(items) > PageSize {
		drawText(s, 0, 1+PageSize, tcell.StyleDefault.Dim(true), moreChoices)
	}
	s.Show()
}
