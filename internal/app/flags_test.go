package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"term-life/internal/config"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-data", "patterns", "-game", "glider", "-speed", "0", "-soup", "40x20"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Data != "patterns" || cfg.Game != "glider" || cfg.Speed != 0 || cfg.Soup != "40x20" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("64X32")
	if err != nil || w != 64 || h != 32 {
		t.Fatalf("ParseSize = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"", "64", "0x5", "5x-1", "ax3"} {
		if _, _, err := ParseSize(bad); err == nil {
			t.Errorf("ParseSize(%q) accepted", bad)
		}
	}
}

func TestCatalogAddsSoupWithoutDataDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Data = filepath.Join(t.TempDir(), "missing")
	cfg.Soup = "8x4"

	cat, _, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	g, err := cat.Select(SoupID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 8 || g.Height != 4 {
		t.Fatalf("soup is %dx%d", g.Width, g.Height)
	}
}

func TestCatalogRejectsOversizedSoup(t *testing.T) {
	cfg := NewConfig()
	cfg.Data = filepath.Join(t.TempDir(), "missing")
	cfg.Soup = "100000x100000"
	if _, _, err := cfg.Catalog(); !errors.Is(err, config.ErrInvalidGame) {
		t.Fatalf("err = %v, expected ErrInvalidGame", err)
	}
}

func TestCatalogWithoutSoupReportsMissingDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Data = filepath.Join(t.TempDir(), "missing")
	if _, _, err := cfg.Catalog(); !errors.Is(err, config.ErrNoDataDir) {
		t.Fatalf("err = %v, expected ErrNoDataDir", err)
	}
}

func TestCatalogKeepsFileGames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dot.json"), []byte(`{"name":"Dot","width":1,"height":1,"data":[1]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Data = dir
	cfg.Soup = "4x4"
	cat, _, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 2 {
		t.Fatalf("len = %d, expected file game plus soup", cat.Len())
	}
}

func TestApplySpeedOverride(t *testing.T) {
	cfg := NewConfig()
	g := config.Game{SpeedMS: 250}
	if got := cfg.Apply(g).SpeedMS; got != 250 {
		t.Fatalf("default -speed changed interval to %d", got)
	}
	cfg.Speed = 0
	if got := cfg.Apply(g).SpeedMS; got != 0 {
		t.Fatalf("override = %d, expected 0", got)
	}
}
