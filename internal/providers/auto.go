package providers

import (
	"regexp"
	"strings"

	"gofi/internal/config"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
)

// Route identifies which sub-provider produced an item in auto mode.
type Route int

const (
	RouteNone Route = iota
	RouteDrun
	RouteMath
	RouteFile
	RouteSsh
	RouteSearch
)

func (r Route) String() string {
	switch r {
	case RouteDrun:
		return "drun"
	case RouteMath:
		return "math"
	case RouteFile:
		return "file"
	case RouteSsh:
		return "ssh"
	case RouteSearch:
		return "websearch"
	}
	return "none"
}

var (
	mathFunctions = regexp.MustCompile(`\b(sqrt|abs|exp|ln|sin|cos|tan|asin|acos|atan|atan2|sinh|cosh|tanh|asinh|acosh|atanh|floor|ceil|round|signum|min|max|pi|e)\b`)
	numberStart   = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// looksLikeMath reports whether the input mentions a math function or
// starts with a number.
func looksLikeMath(input string) bool {
	return mathFunctions.MatchString(input) || numberStart.MatchString(input)
}

// AutoIgnoredWords are stripped from auto-mode queries before ranking so a
// routing prefix does not defeat the match.
func AutoIgnoredWords() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`ssh`),
		regexp.MustCompile(`emoji`),
		regexp.MustCompile(`^\$\w+`),
		regexp.MustCompile(`^\?`),
	}
}

// Auto composes drun, ssh, math, file, and websearch behind query routing.
type Auto struct {
	drun   *Drun
	file   *File
	math   *Math
	ssh    *SSH
	search *Websearch

	drunItems []menu.Item
	sshItems  []menu.Item
	last      Route
}

func NewAuto(cfg *config.Config) *Auto {
	order, err := cfg.Order()
	if err != nil {
		logging.Error(err)
	}
	return &Auto{
		drun:   NewDrun(cfg, RouteDrun),
		file:   NewFile(order, RouteFile),
		math:   NewMath(RouteMath),
		ssh:    NewSSH(order, RouteSsh),
		search: NewWebsearch(cfg.SearchURL, RouteSearch),
	}
}

// Math exposes the math sub-provider so confirmed results can accumulate.
func (p *Auto) Math() *Math { return p.math }

// DrunProvider exposes the drun sub-provider for the cache-bump path.
func (p *Auto) DrunProvider() *Drun { return p.drun }

// routeFor classifies a query. RouteNone means the default drun+ssh list.
func routeFor(search string) Route {
	switch {
	case looksLikeMath(search):
		return RouteMath
	case strings.HasPrefix(search, "$"), strings.HasPrefix(search, "/"), strings.HasPrefix(search, "~"):
		return RouteFile
	case strings.HasPrefix(search, "ssh ") || search == "ssh":
		return RouteSsh
	case strings.HasPrefix(search, "?"):
		return RouteSearch
	}
	return RouteNone
}

func (p *Auto) Elements(query *string) menu.ProviderData {
	search := ""
	if query != nil {
		search = strings.TrimSpace(*query)
	}
	if search == "" {
		return p.defaults()
	}

	route := routeFor(search)
	if route == RouteNone {
		return p.defaults()
	}
	changedRoute := p.last != route

	var data menu.ProviderData
	switch route {
	case RouteMath:
		data = p.math.Elements(query)
	case RouteFile:
		data = p.file.Elements(query)
	case RouteSearch:
		data = p.search.Elements(query)
	case RouteSsh:
		if changedRoute {
			data = menu.ProviderData{Items: menu.CloneItems(p.cachedSSH())}
		}
	}

	// A route that produced nothing falls back to the default list.
	if data.Changed() && len(data.Items) == 0 && route != RouteSearch {
		return p.defaults()
	}

	if !changedRoute {
		return data
	}
	p.last = route
	events.Provider.Route(search, route.String())
	if !data.Changed() {
		data = menu.ProviderData{Items: []menu.Item{}}
	}
	return data
}

// defaults is the drun+ssh union shown when no route applies. The item set
// is only reported as changed when the previous call routed elsewhere.
func (p *Auto) defaults() menu.ProviderData {
	items := append(menu.CloneItems(p.cachedDrun()), p.cachedSSH()...)
	if p.last == RouteDrun {
		return menu.ProviderData{}
	}
	p.last = RouteDrun
	return menu.ProviderData{Items: items}
}

func (p *Auto) cachedDrun() []menu.Item {
	if p.drunItems == nil {
		p.drunItems = p.drun.Elements(nil).Items
	}
	return p.drunItems
}

func (p *Auto) cachedSSH() []menu.Item {
	if p.sshItems == nil {
		p.sshItems = p.ssh.Elements(nil).Items
	}
	return p.sshItems
}

func (p *Auto) SubElements(parent menu.Item) menu.ProviderData {
	label := parent.Label
	return p.Elements(&label)
}
