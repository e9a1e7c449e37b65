package config

import "fmt"

// Summary describes a catalog entry without its cell data.
type Summary struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// String matches Game.String so menus can list summaries directly.
func (s Summary) String() string {
	return fmt.Sprintf("%s (%d x %d)", s.Name, s.Width, s.Height)
}

// Catalog is an ordered set of games addressable by id.
type Catalog struct {
	ids   []string
	games map[string]Game
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{games: map[string]Game{}}
}

// Add inserts or replaces a game. New ids keep insertion order.
func (c *Catalog) Add(id string, g Game) {
	if _, ok := c.games[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.games[id] = g
}

// Len returns the number of games.
func (c *Catalog) Len() int { return len(c.ids) }

// List returns the summaries in catalog order.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.ids))
	for _, id := range c.ids {
		g := c.games[id]
		out = append(out, Summary{ID: id, Name: g.Name, Width: g.Width, Height: g.Height})
	}
	return out
}

// Select returns the game stored under id.
func (c *Catalog) Select(id string) (Game, error) {
	g, ok := c.games[id]
	if !ok {
		return Game{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return g, nil
}
