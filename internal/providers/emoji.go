package providers

import (
	"fmt"

	"gofi/internal/menu"
)

// Emoji lists the built-in emoji table. The selected glyph is carried in
// the item's Data so the confirmation path does not have to re-parse the
// label.
type Emoji struct {
	items []menu.Item
}

func NewEmoji(order menu.SortOrder, hideLabel bool) *Emoji {
	items := make([]menu.Item, 0, len(emojiTable))
	for _, e := range emojiTable {
		label := e.glyph
		if !hideLabel {
			label = fmt.Sprintf("%s — Category: %s — Name: %s", e.glyph, e.group, e.name)
		}
		action := fmt.Sprintf("emoji %s %s %s", e.glyph, e.group, e.name)
		items = append(items, menu.NewItem(label, "", action, nil, "", 0, e.glyph))
	}
	menu.ApplySort(items, order)
	return &Emoji{items: items}
}

func (p *Emoji) Elements(query *string) menu.ProviderData {
	if query != nil {
		return menu.ProviderData{}
	}
	return menu.ProviderData{Items: menu.CloneItems(p.items)}
}

func (p *Emoji) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

// Glyph extracts the emoji carried by an item.
func Glyph(item menu.Item) (string, bool) {
	glyph, ok := item.Data.(string)
	return glyph, ok
}
