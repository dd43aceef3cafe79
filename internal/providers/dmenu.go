package providers

import (
	"io"
	"strings"

	"gofi/internal/menu"
)

// Dmenu serves the lines read from standard input. Input is consumed once
// at construction.
type Dmenu struct {
	items []menu.Item
}

// NewDmenu reads all of r. Lines are reversed so the pre-sort is stable in
// display order.
func NewDmenu(r io.Reader, order menu.SortOrder) (*Dmenu, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, menu.ErrStdinRead
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	var items []menu.Item
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == "" && len(lines) == 1 {
			break
		}
		items = append(items, menu.NewItem(lines[i], "", "", nil, "", 0, nil))
	}

	menu.ApplySort(items, order)
	return &Dmenu{items: items}, nil
}

func (p *Dmenu) Elements(query *string) menu.ProviderData {
	if query != nil {
		return menu.ProviderData{}
	}
	return menu.ProviderData{Items: menu.CloneItems(p.items)}
}

func (p *Dmenu) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}
