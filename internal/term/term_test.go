package term

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"term-life/internal/config"
	"term-life/pkg/core"
	"term-life/pkg/sims/life"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func key(s tcell.SimulationScreen, k tcell.Key) {
	s.InjectKey(k, 0, tcell.ModNone)
}

func runeKey(s tcell.SimulationScreen, r rune) {
	s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
}

func background(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := s.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func blinker() life.Grid {
	return life.FromCells(5, 5, []int{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	})
}

func ints(g life.Grid) []int {
	out := make([]int, 0, len(g.Cells()))
	for _, c := range g.Cells() {
		out = append(out, int(c))
	}
	return out
}

func testCatalog() *config.Catalog {
	cat := config.NewCatalog()
	cat.Add("a", config.Game{Name: "Alpha", Width: 3, Height: 3})
	cat.Add("b", config.Game{Name: "Beta", Width: 4, Height: 2})
	cat.Add("c", config.Game{Name: "Gamma", Width: 5, Height: 5})
	return cat
}

func TestChooseNavigatesAndClamps(t *testing.T) {
	s := newScreen(t, 40, 20)
	key(s, tcell.KeyUp)
	key(s, tcell.KeyDown)
	key(s, tcell.KeyDown)
	key(s, tcell.KeyDown)
	key(s, tcell.KeyEnter)

	idx, err := Choose(s, "Pick:", []string{"one", "two", "three"})
	if err != nil {
		t.Fatal(err)
	}
	if idx != 2 {
		t.Fatalf("idx = %d, expected 2", idx)
	}
}

func TestChoosePagesAndCancels(t *testing.T) {
	s := newScreen(t, 40, 20)
	items := make([]string, 25)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	key(s, tcell.KeyPgDn)
	key(s, tcell.KeyEnter)
	idx, err := Choose(s, "Pick:", items)
	if err != nil || idx != PageSize {
		t.Fatalf("Choose = %d, %v; expected %d", idx, err, PageSize)
	}

	key(s, tcell.KeyEnd)
	key(s, tcell.KeyEscape)
	if _, err := Choose(s, "Pick:", items); !errors.Is(err, ErrCancelled) {
		t.Fatalf("err = %v, expected ErrCancelled", err)
	}

	if _, err := Choose(s, "Pick:", nil); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("err = %v, expected ErrNoChoices", err)
	}
}

func TestSelectGameReturnsChosenEntry(t *testing.T) {
	s := newScreen(t, 40, 20)
	key(s, tcell.KeyDown)
	key(s, tcell.KeyEnter)

	g, err := SelectGame(s, testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "Beta" {
		t.Fatalf("selected %q, expected Beta", g.Name)
	}
}

func TestConfirm(t *testing.T) {
	s := newScreen(t, 40, 20)
	key(s, tcell.KeyEnter)
	yes, err := Confirm(s, "Resize?")
	if err != nil || !yes {
		t.Fatalf("Confirm = %v, %v; expected yes", yes, err)
	}
	key(s, tcell.KeyDown)
	key(s, tcell.KeyEnter)
	if yes, _ := Confirm(s, "Resize?"); yes {
		t.Fatal("expected no")
	}
}

func TestCanvasPaintsTwoColumnsPerCell(t *testing.T) {
	s := newScreen(t, 10, 4)
	cells := []uint8{
		1, 0,
		0, 1,
	}
	NewCanvas().Paint(s, cells, 2, 2)
	s.Show()

	for _, tc := range []struct {
		x, y int
		want tcell.Color
	}{
		{0, 0, tcell.ColorWhite},
		{1, 0, tcell.ColorWhite},
		{2, 0, tcell.ColorBlack},
		{3, 0, tcell.ColorBlack},
		{0, 1, tcell.ColorBlack},
		{3, 1, tcell.ColorWhite},
	} {
		if got := background(t, s, tc.x, tc.y); got != tc.want {
			t.Errorf("cell (%d,%d) background = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCanvasClipsToScreen(t *testing.T) {
	s := newScreen(t, 3, 1)
	cells := make([]uint8, 4*3)
	for i := range cells {
		cells[i] = 1
	}
	NewCanvas().Paint(s, cells, 4, 3)
	s.Show()
	if got := background(t, s, 2, 0); got != tcell.ColorWhite {
		t.Fatalf("clipped edge background = %v", got)
	}
}

func TestFits(t *testing.T) {
	s := newScreen(t, 10, 5)
	if !Fits(s, 5, 5) {
		t.Fatal("5x5 grid should fit a 10x5 screen")
	}
	if Fits(s, 6, 5) || Fits(s, 5, 6) {
		t.Fatal("oversized grid reported as fitting")
	}
}

func TestRunnerStepsWhilePaused(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := life.New("blinker", blinker())
	r := NewRunner(s, sim, "Blinker (5 x 5)", time.Hour)

	runeKey(s, ' ')
	runeKey(s, 'n')
	runeKey(s, 'n')
	runeKey(s, 'n')
	runeKey(s, 'q')
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 3 {
		t.Fatalf("generation = %d, expected 3", sim.Generation())
	}
	if background(t, s, 2*2, 1) != tcell.ColorWhite {
		t.Fatal("vertical blinker not painted after an odd step count")
	}
}

func TestRunnerIgnoresStepKeyWhileRunning(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := life.New("blinker", blinker())
	r := NewRunner(s, sim, "Blinker", time.Hour)

	runeKey(s, 'n')
	runeKey(s, 'q')
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation = %d, expected no manual step while running", sim.Generation())
	}
}

func TestRunnerReseedsSoup(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := life.New("blinker", blinker())
	r := NewRunner(s, sim, "Blinker", time.Hour)
	r.seed = func() int64 { return 9 }

	runeKey(s, ' ')
	runeKey(s, 'n')
	runeKey(s, 's')
	runeKey(s, 'q')
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := make([]uint8, 5*5)
	core.NewNoise(9).FillBinary(want, 5, 5, core.DefaultDensity)
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("board = %v, expected soup %v", sim.Cells(), want)
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation = %d, expected 0 after re-seeding", sim.Generation())
	}
}

func TestRunnerRestoreAndPause(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := life.New("blinker", blinker())
	r := NewRunner(s, sim, "Blinker", time.Hour)

	runeKey(s, ' ')
	runeKey(s, 'n')
	runeKey(s, 'r')
	key(s, tcell.KeyEscape)
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 0 || !sim.Grid().Equal(blinker()) {
		t.Fatal("restore did not reinstate the starting pattern")
	}
	if !r.paused {
		t.Fatal("space should pause the runner")
	}
}

func TestRunnerStopsOnContext(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := life.New("blinker", blinker())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewRunner(s, sim, "Blinker", 0).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, expected deadline exceeded", err)
	}
	if sim.Generation() == 0 {
		t.Fatal("zero speed should keep stepping")
	}
}

func TestPlayRunsChosenGame(t *testing.T) {
	s := newScreen(t, 20, 10)
	cat := config.NewCatalog()
	cat.Add("blinker", config.Game{Name: "Blinker", Width: 5, Height: 5, Data: ints(blinker()), SpeedMS: 60000})

	runeKey(s, 'q')
	err := Play(context.Background(), s, cat, Options{GameID: "blinker"})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPlayOffersResize(t *testing.T) {
	s := newScreen(t, 6, 3)
	cat := config.NewCatalog()
	cat.Add("big", config.Game{Name: "Big", Width: 8, Height: 4, SpeedMS: 60000})

	key(s, tcell.KeyEnter) // pick the only game
	key(s, tcell.KeyEnter) // answer Yes
	runeKey(s, 'q')
	adjusted := false
	err := Play(context.Background(), s, cat, Options{Adjust: func(g config.Game) config.Game {
		adjusted = true
		return g
	}})
	if err != nil {
		t.Fatal(err)
	}
	if !adjusted {
		t.Fatal("Adjust was not applied")
	}
	if cols, rows := s.Size(); cols != 16 || rows != 4 {
		t.Fatalf("screen = %dx%d, expected 16x4", cols, rows)
	}
}

func TestPlayUnknownGame(t *testing.T) {
	s := newScreen(t, 20, 10)
	err := Play(context.Background(), s, testCatalog(), Options{GameID: "nope"})
	if !errors.Is(err, config.ErrUnknownGame) {
		t.Fatalf("err = %v, expected ErrUnknownGame", err)
	}
}
