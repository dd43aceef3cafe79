package menu

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// MatchMethod selects how queries are matched against items.
type MatchMethod int

const (
	MatchContains MatchMethod = iota
	MatchMultiContains
	MatchFuzzy
)

// ParseMatchMethod maps the CLI/config spelling to a MatchMethod.
func ParseMatchMethod(s string) (MatchMethod, error) {
	switch s {
	case "contains":
		return MatchContains, nil
	case "multi-contains":
		return MatchMultiContains, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return MatchContains, fmt.Errorf("invalid match method %q", s)
}

func (m MatchMethod) String() string {
	switch m {
	case MatchMultiContains:
		return "multi-contains"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "contains"
	}
}

// SortOrder selects the pre-search ordering of items.
type SortOrder int

const (
	SortDefault SortOrder = iota
	SortAlphabetical
)

// ParseSortOrder maps the CLI/config spelling to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "default":
		return SortDefault, nil
	case "alphabetical":
		return SortAlphabetical, nil
	}
	return SortDefault, fmt.Errorf("invalid sort order %q", s)
}

func (o SortOrder) String() string {
	if o == SortAlphabetical {
		return "alphabetical"
	}
	return "default"
}

// RankOptions configures a ranking pass.
type RankOptions struct {
	Method        MatchMethod
	Insensitive   bool
	FuzzyMinScore float64
	// IgnoredWords are stripped from the query before matching. Modes use
	// this to drop mode-selector words such as "ssh" or a search sigil.
	IgnoredWords []*regexp.Regexp
}

// Rank recomputes the search score and visibility of every item for the
// given query. The scores feed Order; nothing else may write these fields.
func Rank(query string, items []*Item, opts RankOptions) {
	if query == "" {
		for _, it := range items {
			it.searchScore = 0
			it.visible = true
		}
		return
	}

	if opts.Insensitive {
		query = strings.ToLower(query)
	}
	for _, rgx := range opts.IgnoredWords {
		query = rgx.ReplaceAllString(query, "")
	}

	for _, it := range items {
		target := it.SearchTarget()
		if opts.Insensitive {
			target = strings.ToLower(target)
		}

		var score float64
		var visible bool
		switch opts.Method {
		case MatchFuzzy:
			score = smetrics.JaroWinkler(query, target, 0.7, 4)
			if score == 0 {
				// Rank total misses below items that were never
				// scored at all.
				score = -1
			}
			visible = score > opts.FuzzyMinScore && score > 0
		case MatchMultiContains:
			visible = true
			for _, tok := range strings.Split(query, " ") {
				if tok == "" {
					continue
				}
				if !strings.Contains(target, tok) {
					visible = false
					break
				}
			}
			if visible {
				score = 1
			}
		default: // MatchContains
			if strings.Contains(target, query) {
				score, visible = 1, true
			}
		}

		it.searchScore = score + it.InitialScore
		it.visible = visible
	}
}

// rankLess is the single ordering rule: visible before invisible, by search
// score while a search is active, otherwise by initial score. Ties keep
// insertion order (callers must sort stably).
func rankLess(a, b *Item) bool {
	if a.visible != b.visible {
		return a.visible
	}
	if a.searchScore > 0 || b.searchScore > 0 {
		return a.searchScore > b.searchScore
	}
	return a.InitialScore > b.InitialScore
}

// Order sorts items into display order according to the current scores.
func Order(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return rankLess(items[i], items[j])
	})
}

// ApplySort pre-sorts items for the configured order. Alphabetical assigns
// sequential initial scores after a reverse label sort so that items with a
// pre-existing nonzero score (favourites) float above the alphabetical
// block.
func ApplySort(items []Item, order SortOrder) {
	if order != SortAlphabetical {
		return
	}
	specialScore := float64(len(items))
	sort.SliceStable(items, func(i, j int) bool {
		return items[j].Label < items[i].Label
	})
	regularScore := 0.0
	for i := range items {
		if items[i].InitialScore == 0 {
			items[i].InitialScore += regularScore
			regularScore++
		} else {
			items[i].InitialScore += specialScore
		}
	}
}
