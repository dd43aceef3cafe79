package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches")

	c := New()
	c.Bump("firefox")
	c.Bump("firefox")
	c.Bump("files --new-window")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.Get("firefox"); got != 2 {
		t.Errorf("Get(firefox) = %d, want 2", got)
	}
	if got := loaded.Get("files --new-window"); got != 1 {
		t.Errorf("Get(files --new-window) = %d, want 1", got)
	}
	if got := loaded.Get("unknown"); got != 0 {
		t.Errorf("Get(unknown) = %d, want 0", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches")
	content := "\"good\"=3\n" +
		"no quotes here\n" +
		"\"bad count\"=abc\n" +
		"\n" +
		"\"also good\"=1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if got := c.Get("good"); got != 3 {
		t.Errorf("Get(good) = %d, want 3", got)
	}
	if got := c.Get("also good"); got != 1 {
		t.Errorf("Get(also good) = %d, want 1", got)
	}
}
