// Package providers implements the item sources behind each mode.
package providers

import (
	"os/exec"
	"strings"

	"gofi/internal/cache"
	"gofi/internal/config"
	"gofi/internal/desktop"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
)

const defaultAppIcon = "application-x-executable"

// Drun lists installed applications from their .desktop entries.
type Drun struct {
	items     []menu.Item
	cache     *cache.Cache
	cachePath string
	noActions bool
	order     menu.SortOrder
	terminal  string
	data      any
}

// NewDrun constructs the provider and reads the launch cache. The desktop
// scan itself is deferred to the first Elements call so it can run on a
// worker.
func NewDrun(cfg *config.Config, data any) *Drun {
	path, err := config.CachePath("drun")
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
	return &Drun{
		cache:     c,
		cachePath: path,
		noActions: cfg.NoActions,
		order:     order,
		terminal:  cfg.Terminal(),
		data:      data,
	}
}

func (p *Drun) Elements(query *string) menu.ProviderData {
	if query != nil {
		return menu.ProviderData{}
	}
	if p.items == nil {
		p.items = p.load()
	}
	return menu.ProviderData{Items: menu.CloneItems(p.items)}
}

func (p *Drun) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

// Cache exposes the launch cache for the confirmation path.
func (p *Drun) Cache() *cache.Cache { return p.cache }

// CachePath is where the launch cache is persisted.
func (p *Drun) CachePath() string { return p.cachePath }

func (p *Drun) load() []menu.Item {
	var items []menu.Item
	seen := make(map[string]bool)

	for _, entry := range desktop.Scan() {
		if entry.Hidden || entry.NoDisplay || entry.Name == "" {
			continue
		}
		if !commandExists(entry.Exec) {
			logging.Trace("drun.skip", map[string]interface{}{"name": entry.Name})
			continue
		}

		icon := entry.Icon
		if icon == "" {
			icon = defaultAppIcon
		}
		action := p.wrapTerminal(entry.Terminal, entry.Exec, entry.Name)

		var subs []menu.Item
		if !p.noActions {
			for _, a := range entry.Actions {
				if a.Name == "" {
					continue
				}
				subIcon := a.Icon
				if subIcon == "" {
					subIcon = icon
				}
				subAction := p.wrapTerminal(entry.Terminal, a.Exec, a.Name)
				subs = append(subs, menu.NewItem(a.Name, subIcon, subAction, nil, entry.WorkingDir, 0, p.data))
			}
		}

		item := menu.NewItem(entry.Name, icon, action, subs, entry.WorkingDir,
			float64(p.cache.Get(entry.Name)), p.data)
		if seen[item.Action] {
			continue
		}
		seen[item.Action] = true
		items = append(items, item)
	}

	menu.ApplySort(items, p.order)
	events.Provider.InitialScan("drun", len(items), 0)
	return items
}

// wrapTerminal prefixes terminal applications with the configured terminal
// launcher. Without one the entry keeps no action.
func (p *Drun) wrapTerminal(inTerminal bool, action, name string) string {
	if !inTerminal || action == "" {
		return action
	}
	if p.terminal == "" {
		logging.Errorf("no terminal configured for terminal app %s", name)
		return ""
	}
	return p.terminal + " " + action
}

// commandExists checks the first token of an exec line against PATH and the
// filesystem.
func commandExists(action string) bool {
	first, _, _ := strings.Cut(action, " ")
	first = strings.ReplaceAll(first, `"`, "")
	if first == "" {
		return false
	}
	if desktop.IsExecutable(first) {
		return true
	}
	_, err := exec.LookPath(first)
	return err == nil
}
