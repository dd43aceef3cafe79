package providers

import (
	"os"
	"path/filepath"

	"gofi/internal/cache"
	"gofi/internal/config"
	"gofi/internal/desktop"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
)

// Run lists every executable on PATH.
type Run struct {
	items     []menu.Item
	cache     *cache.Cache
	cachePath string
	order     menu.SortOrder
}

func NewRun(cfg *config.Config) *Run {
	path, err := config.CachePath("run")
	if err != nil {
		logging.Error(err)
	}
	c, err := cache.Load(path)
	if err != nil {
		logging.Error(err)
		c = cache.New()
	}
	order, err := cfg.Order()
	if err != nil {
		logging.Error(err)
	}
	return &Run{cache: c, cachePath: path, order: order}
}

func (p *Run) Elements(query *string) menu.ProviderData {
	if query != nil {
		return menu.ProviderData{}
	}
	if p.items == nil {
		p.items = p.load()
	}
	return menu.ProviderData{Items: menu.CloneItems(p.items)}
}

func (p *Run) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

func (p *Run) Cache() *cache.Cache { return p.cache }

func (p *Run) CachePath() string { return p.cachePath }

func (p *Run) load() []menu.Item {
	var items []menu.Item
	seen := make(map[string]bool)

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if !desktop.IsExecutable(full) {
				continue
			}
			// First hit on PATH wins, mirroring shell lookup.
			if seen[e.Name()] {
				continue
			}
			seen[e.Name()] = true
			items = append(items, menu.NewItem(e.Name(), "", full, nil, "",
				float64(p.cache.Get(e.Name())), nil))
		}
	}

	menu.ApplySort(items, p.order)
	events.Provider.InitialScan("run", len(items), 0)
	return items
}
