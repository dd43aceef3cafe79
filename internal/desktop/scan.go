package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"gofi/internal/logging"
)

// entryPattern matches the file names the scan considers, case folded.
var entryPattern = glob.MustCompile("*.desktop")

// scanDirs lists every directory that may hold .desktop files.
func scanDirs() []string {
	dirs := []string{
		"/usr/share/applications",
		"/usr/local/share/applications",
		"/var/lib/flatpak/exports/share/applications",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local/share/applications"))
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, ".applications"))
	}
	if xdgDirs := os.Getenv("XDG_DATA_DIRS"); xdgDirs != "" {
		for _, dir := range strings.Split(xdgDirs, ":") {
			if dir != "" {
				dirs = append(dirs, filepath.Join(dir, ".applications"))
			}
		}
	}
	return dirs
}

// Scan parses all application entries from the known locations. Directories
// are walked in parallel; individual unparseable files are skipped.
func Scan() []Entry {
	start := time.Now()
	locales := LocaleVariants()

	var mu sync.Mutex
	var entries []Entry
	var g errgroup.Group

	for _, dir := range scanDirs() {
		dir := dir
		g.Go(func() error {
			files, err := os.ReadDir(dir)
			if err != nil {
				return nil
			}
			for _, f := range files {
				if f.IsDir() || !entryPattern.Match(strings.ToLower(f.Name())) {
					continue
				}
				entry, err := ParseEntry(filepath.Join(dir, f.Name()), locales)
				if err != nil {
					continue
				}
				mu.Lock()
				entries = append(entries, *entry)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	logging.Trace("desktop.scan", map[string]interface{}{
		"count":   len(entries),
		"elapsed": time.Since(start).Milliseconds(),
	})
	return entries
}

// IsExecutable reports whether path is a regular file with any execute bit.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
