// Package cache persists per-entry launch counts so frequently chosen
// entries rank higher on the next run. The on-disk format is one
// `"key"=<count>` pair per line; unreadable lines are skipped so a
// truncated file never blocks startup.
package cache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Cache maps entry keys to launch counts.
type Cache struct {
	counts map[string]int64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{counts: make(map[string]int64)}
}

// Load reads launch counts from path. A missing file yields an empty
// cache; malformed lines are ignored.
func Load(path string) (*Cache, error) {
	c := New()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, count, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		c.counts[key] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseLine(line string) (string, int64, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, `"`) {
		return "", 0, false
	}
	end := strings.LastIndex(line, `"=`)
	if end <= 0 {
		return "", 0, false
	}
	key := line[1:end]
	count, err := strconv.ParseInt(line[end+2:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return key, count, true
}

// Get returns the launch count for key, zero when unseen.
func (c *Cache) Get(key string) int64 {
	return c.counts[key]
}

// Bump increments the launch count for key.
func (c *Cache) Bump(key string) {
	c.counts[key]++
}

// Len reports the number of tracked keys.
func (c *Cache) Len() int {
	return len(c.counts)
}

// Save writes the cache to path, creating parent directories as needed.
// Keys are written in sorted order so the file diffs cleanly.
func (c *Cache) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	keys := make([]string, 0, len(c.counts))
	for k := range c.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := bufio.NewWriter(f)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "\"%s\"=%d\n", k, c.counts[k]); err != nil {
			return err
		}
	}
	return w.Flush()
}
