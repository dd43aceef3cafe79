package providers

import (
	"os"
	"path/filepath"
	"testing"

	"gofi/internal/config"
	"gofi/internal/menu"
)

func writeDesktopFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDrunScan(t *testing.T) {
	tmp := t.TempDir()
	appsDir := filepath.Join(tmp, ".applications")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeDesktopFile(t, appsDir, "shell.desktop", `[Desktop Entry]
Name=Shell Tool
Icon=utilities-terminal
Exec=/bin/sh -c run

[Desktop Action extra]
Name=Extra Shell
Exec=/bin/sh -c extra
`)
	writeDesktopFile(t, appsDir, "hidden.desktop", `[Desktop Entry]
Name=Hidden Tool
Exec=/bin/sh
NoDisplay=true
`)
	writeDesktopFile(t, appsDir, "gone.desktop", `[Desktop Entry]
Name=Gone Tool
Exec=/nonexistent/binary-that-is-not-there
`)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", tmp)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("LC_ALL", "C")

	p := NewDrun(config.Default(), nil)
	items := p.Elements(nil).Items

	var shell *menu.Item
	for i := range items {
		switch items[i].Label {
		case "Hidden Tool":
			t.Error("NoDisplay entry was listed")
		case "Gone Tool":
			t.Error("entry with missing executable was listed")
		case "Shell Tool":
			shell = &items[i]
		}
	}
	if shell == nil {
		t.Fatal("expected entry not found")
	}
	if shell.Action != "/bin/sh -c run" {
		t.Errorf("Action = %q", shell.Action)
	}
	if shell.Icon != "utilities-terminal" {
		t.Errorf("Icon = %q", shell.Icon)
	}
	if len(shell.SubElements) != 1 || shell.SubElements[0].Label != "Extra Shell" {
		t.Errorf("SubElements = %+v", shell.SubElements)
	}
}

func TestDrunNoActions(t *testing.T) {
	tmp := t.TempDir()
	appsDir := filepath.Join(tmp, ".applications")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeDesktopFile(t, appsDir, "shell.desktop", `[Desktop Entry]
Name=Shell Tool
Exec=/bin/sh

[Desktop Action extra]
Name=Extra Shell
Exec=/bin/sh -c extra
`)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", tmp)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg := config.Default()
	cfg.NoActions = true
	items := NewDrun(cfg, nil).Elements(nil).Items
	for _, it := range items {
		if it.Label == "Shell Tool" && len(it.SubElements) != 0 {
			t.Errorf("sub-actions present despite no_actions: %+v", it.SubElements)
		}
	}
}
