// Package config loads Game of Life starting patterns from JSON files and
// exposes them as a selectable catalog.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"term-life/pkg/core"
	"term-life/pkg/sims/life"
)

const (
	// DefaultSpeedMS is the frame interval used when a file omits speed_ms.
	DefaultSpeedMS = 100
	// MaxCells caps width*height so a bad file cannot exhaust memory.
	MaxCells = 1 << 22
)

var (
	// ErrNoDataDir is returned when the data directory does not exist.
	ErrNoDataDir = errors.New("game data directory not found")
	// ErrNoGames is returned when a directory holds no valid game file.
	ErrNoGames = errors.New("no valid game files found")
	// ErrInvalidGame marks a game whose fields fail validation.
	ErrInvalidGame = errors.New("invalid game")
	// ErrUnknownGame is returned when selecting an id the catalog lacks.
	ErrUnknownGame = errors.New("unknown game")
)

// Game is a named starting pattern. Data holds the cells in row-major order.
type Game struct {
	Name    string `json:"name"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Data    []int  `json:"data"`
	SpeedMS int    `json:"speed_ms"`
}

// String formats the game the way the selection menu lists it.
func (g Game) String() string {
	return fmt.Sprintf("%s (%d x %d)", g.Name, g.Width, g.Height)
}

// Validate rejects games that cannot back a grid.
func (g Game) Validate() error {
	if err := CheckSize(g.Width, g.Height); err != nil {
		return err
	}
	if g.SpeedMS < 0 {
		return fmt.Errorf("%w: speed_ms %d must not be negative", ErrInvalidGame, g.SpeedMS)
	}
	return nil
}

// CheckSize rejects grid dimensions that are not positive or whose cell
// count exceeds MaxCells.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidGame, w, h)
	}
	if w > math.MaxInt/h || w*h > MaxCells {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d cells", ErrInvalidGame, w, h, MaxCells)
	}
	return nil
}

// FileError reports a game file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// Grid converts the flattened data into the starting grid.
func (g Game) Grid() life.Grid {
	return life.FromCells(g.Width, g.Height, g.Data)
}

// Speed returns the pause between generations.
func (g Game) Speed() time.Duration {
	return time.Duration(g.SpeedMS) * time.Millisecond
}

// Load decodes and validates a single game file. Keys match case-insensitively.
func Load(path string) (Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return Game{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var raw struct {
		Game
		SpeedMS *int `json:"speed_ms"`
	}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return Game{}, &FileError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	g := raw.Game
	g.SpeedMS = DefaultSpeedMS
	if raw.SpeedMS != nil {
		g.SpeedMS = *raw.SpeedMS
	}
	if g.Name == "" {
		g.Name = gameID(path)
	}
	if err := g.Validate(); err != nil {
		return Game{}, &FileError{Path: path, Err: err}
	}
	return g, nil
}

// LoadDir loads every *.json file in dir in name order. Files that fail to
// load are reported in skipped and never abort the scan.
func LoadDir(dir string) (cat *Catalog, skipped []*FileError, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNoDataDir, dir)
		}
		return nil, nil, err
	}

	cat = NewCatalog()
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g, loadErr := Load(path)
		var fe *FileError
		if errors.As(loadErr, &fe) {
			skipped = append(skipped, fe)
			continue
		}
		cat.Add(gameID(path), g)
	}
	if cat.Len() == 0 {
		return nil, skipped, fmt.Errorf("%w in %s", ErrNoGames, dir)
	}
	return cat, skipped, nil
}

// Soup builds a generated game filled with a seeded noise soup. Callers
// check the dimensions with CheckSize first.
func Soup(w, h int, seed int64, density float64, speedMS int) Game {
	cells := make([]uint8, w*h)
	core.NewNoise(seed).FillBinary(cells, w, h, density)
	data := make([]int, len(cells))
	for i, c := range cells {
		data[i] = int(c)
	}
	return Game{
		Name:    fmt.Sprintf("Soup #%d", seed),
		Width:   w,
		Height:  h,
		Data:    data,
		SpeedMS: speedMS,
	}
}

func gameID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
