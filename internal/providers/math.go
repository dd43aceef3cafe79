package providers

import (
	"gofi/internal/calc"
	"gofi/internal/menu"
)

// Math turns the query into an evaluated expression row. Confirmed results
// accumulate below the current line.
type Math struct {
	history []menu.Item
	data    any
}

func NewMath(data any) *Math {
	return &Math{data: data}
}

func (p *Math) Elements(query *string) menu.ProviderData {
	if query == nil {
		return menu.ProviderData{Items: menu.CloneItems(p.history)}
	}

	label, err := calc.Eval(*query)
	if err != nil {
		label = err.Error()
	}
	items := make([]menu.Item, 0, len(p.history)+1)
	items = append(items, menu.NewItem(label, "", *query, nil, "", 0, p.data))
	items = append(items, p.history...)
	return menu.ProviderData{Items: items}
}

func (p *Math) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

// Push records a confirmed result so later invocations show it.
func (p *Math) Push(item menu.Item) {
	p.history = append([]menu.Item{item}, p.history...)
}
