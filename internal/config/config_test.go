package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"gofi/internal/menu"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if !cfg.Insensitive {
		t.Error("expected case-insensitive matching by default")
	}
	method, err := cfg.MatchMethod()
	if err != nil {
		t.Fatalf("MatchMethod: %v", err)
	}
	if method != menu.MatchContains {
		t.Errorf("MatchMethod = %v, want contains", method)
	}
	order, err := cfg.Order()
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if order != menu.SortAlphabetical {
		t.Errorf("Order = %v, want alphabetical", order)
	}
	if cfg.Width != "50%" || cfg.Height != "40%" {
		t.Errorf("window size defaults = %s x %s", cfg.Width, cfg.Height)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg := Default()
	cfg.Layer = "bogus"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown layer must fail validation")
	}

	cfg = Default()
	cfg.Location = "nowhere"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown location must fail validation")
	}

	cfg = Default()
	cfg.LineWrap = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown line wrap must fail validation")
	}
}

func TestLoadFileAndFlagOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	content := "prompt = \"apps\"\nmatching = \"fuzzy\"\nfuzzy_min_score = 0.25\nlines = 12\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("matching", "contains", "")
	flags.Int("lines", 0, "")
	flags.Bool("hide-search", false, "")
	if err := flags.Parse([]string{"--matching=multi-contains", "--hide-search"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// File value survives when no flag overrides it.
	if cfg.Prompt != "apps" {
		t.Errorf("Prompt = %q, want apps", cfg.Prompt)
	}
	if cfg.Lines != 12 {
		t.Errorf("Lines = %d, want 12", cfg.Lines)
	}
	if cfg.FuzzyMinScore != 0.25 {
		t.Errorf("FuzzyMinScore = %v, want 0.25", cfg.FuzzyMinScore)
	}
	// Explicit flags override the file.
	if cfg.Matching != "multi-contains" {
		t.Errorf("Matching = %q, want multi-contains", cfg.Matching)
	}
	if !cfg.HideSearch {
		t.Error("HideSearch not applied from flags")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent"), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestPromptDefaultsToMode(t *testing.T) {
	cfg := Default()
	cfg.Show = "drun"
	if got := cfg.PromptText(); got != "drun" {
		t.Errorf("PromptText = %q, want drun", got)
	}
	cfg.Prompt = "launch"
	if got := cfg.PromptText(); got != "launch" {
		t.Errorf("PromptText = %q, want launch", got)
	}
}

func TestParseAnchors(t *testing.T) {
	anchors, err := ParseAnchors("top, left")
	if err != nil {
		t.Fatalf("ParseAnchors: %v", err)
	}
	if len(anchors) != 2 || anchors[0] != AnchorTop || anchors[1] != AnchorLeft {
		t.Errorf("ParseAnchors = %v", anchors)
	}
	if _, err := ParseAnchors("middle"); err == nil {
		t.Error("expected error for unknown anchor")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("GOFI_TEST_DIR", "/opt/data")
	if got := ExpandPath("$GOFI_TEST_DIR/files"); got != "/opt/data/files" {
		t.Errorf("ExpandPath = %q", got)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/notes"); got != filepath.Join(home, "notes") {
		t.Errorf("ExpandPath(~/notes) = %q", got)
	}
}

func TestCachePath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	path, err := CachePath("drun")
	if err != nil {
		t.Fatalf("CachePath: %v", err)
	}
	if path != "/tmp/xdg-cache/gofi/drun_cache" {
		t.Errorf("CachePath = %q", path)
	}
}

func TestTerminalPrefersConfigured(t *testing.T) {
	cfg := Default()
	cfg.Term = "footerm -e"
	if got := cfg.Terminal(); got != "footerm -e" {
		t.Errorf("Terminal = %q", got)
	}
}
