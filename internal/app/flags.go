package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"term-life/internal/config"
	"term-life/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Data    string
	Game    string
	Speed   int
	Soup    string
	Seed    int64
	Density float64
	Scale   int
	TPS     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Data: "data", Speed: -1, Seed: 42, Density: core.DefaultDensity, Scale: 4, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Data, "data", c.Data, "directory holding *.json game files")
	fs.StringVar(&c.Game, "game", c.Game, "game id to run without showing the menu")
	fs.IntVar(&c.Speed, "speed", c.Speed, "frame interval in ms (-1 uses the game file)")
	fs.StringVar(&c.Soup, "soup", c.Soup, "add a generated soup of size WxH to the menu")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated soups")
	fs.Float64Var(&c.Density, "density", c.Density, "fill probability for generated soups")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI)")
}

// SoupID is the catalog id of the generated soup.
const SoupID = "soup"

// Catalog loads the data directory and appends the generated soup when
// requested. Invalid files are returned in skipped.
func (c *Config) Catalog() (cat *config.Catalog, skipped []*config.FileError, err error) {
	cat, skipped, err = config.LoadDir(c.Data)
	if c.Soup == "" {
		return cat, skipped, err
	}
	if err != nil && !errors.Is(err, config.ErrNoDataDir) && !errors.Is(err, config.ErrNoGames) {
		return nil, skipped, err
	}
	w, h, sizeErr := ParseSize(c.Soup)
	if sizeErr != nil {
		return nil, skipped, sizeErr
	}
	if err := config.CheckSize(w, h); err != nil {
		return nil, skipped, fmt.Errorf("soup %q: %w", c.Soup, err)
	}
	if c.Density < 0 || c.Density > 1 {
		return nil, skipped, fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	if cat == nil {
		cat = config.NewCatalog()
	}
	cat.Add(SoupID, config.Soup(w, h, c.Seed, c.Density, config.DefaultSpeedMS))
	return cat, skipped, nil
}

// Apply overrides the game's frame interval when -speed was given.
func (c *Config) Apply(g config.Game) config.Game {
	if c.Speed >= 0 {
		g.SpeedMS = c.Speed
	}
	return g
}

// ParseSize parses a "WxH" dimension pair.
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: expected WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: invalid width", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: invalid height", s)
	}
	return w, h, nil
}
