package providers

import (
	"net/url"
	"strings"

	"gofi/internal/menu"
)

// Websearch offers one synthetic item per query that opens the configured
// search engine.
type Websearch struct {
	prefix string
	data   any
}

func NewWebsearch(prefix string, data any) *Websearch {
	return &Websearch{prefix: prefix, data: data}
}

// encodeQuery percent-encodes for use in a URL, with spaces as %20 rather
// than +.
func encodeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

func (p *Websearch) Elements(query *string) menu.ProviderData {
	if query == nil {
		return menu.ProviderData{Items: []menu.Item{}}
	}
	q := strings.TrimPrefix(*query, "?")
	item := menu.NewItem("Search "+q, "", "xdg-open "+p.prefix+encodeQuery(q), nil, "", 0, p.data)
	return menu.ProviderData{Items: []menu.Item{item}}
}

func (p *Websearch) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}
