package menu

import (
	"regexp"
	"testing"
)

func ptrs(items []Item) []*Item {
	out := make([]*Item, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func labels(rows []*Item) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Label)
	}
	return out
}

func TestRankContains(t *testing.T) {
	items := []Item{
		NewItem("Firefox", "", "firefox", nil, "", 0, nil),
		NewItem("Files", "", "nautilus", nil, "", 0, nil),
		NewItem("Terminal", "", "xterm", nil, "", 0, nil),
	}
	rows := ptrs(items)
	Rank("fire", rows, RankOptions{Method: MatchContains, Insensitive: true})

	if !rows[0].Visible() || rows[1].Visible() || rows[2].Visible() {
		t.Fatalf("contains: visibility wrong: %v %v %v",
			rows[0].Visible(), rows[1].Visible(), rows[2].Visible())
	}
}

func TestRankContainsMatchesAction(t *testing.T) {
	items := []Item{
		NewItem("Files", "", "nautilus", nil, "", 0, nil),
	}
	rows := ptrs(items)
	Rank("naut", rows, RankOptions{Method: MatchContains, Insensitive: true})
	if !rows[0].Visible() {
		t.Fatalf("the action string must participate in matching")
	}
}

func TestRankMultiContainsNeedsEveryToken(t *testing.T) {
	items := []Item{
		NewItem("Text Editor", "", "gedit", nil, "", 0, nil),
		NewItem("Text Browser", "", "lynx", nil, "", 0, nil),
	}
	rows := ptrs(items)
	Rank("text edit", rows, RankOptions{Method: MatchMultiContains, Insensitive: true})
	if !rows[0].Visible() || rows[1].Visible() {
		t.Fatalf("multi-contains: want only the editor visible")
	}
}

func TestRankFuzzyThreshold(t *testing.T) {
	items := []Item{
		NewItem("Firefox", "", "firefox", nil, "", 0, nil),
		NewItem("zzzz", "", "zzzz", nil, "", 0, nil),
	}
	rows := ptrs(items)
	Rank("firefox", rows, RankOptions{Method: MatchFuzzy, Insensitive: true, FuzzyMinScore: 0.5})
	if !rows[0].Visible() {
		t.Fatalf("near-exact fuzzy match must be visible")
	}
	if rows[1].Visible() {
		t.Fatalf("total miss must be hidden")
	}
}

func TestRankEmptyQueryResetsScores(t *testing.T) {
	items := []Item{
		NewItem("Firefox", "", "firefox", nil, "", 3, nil),
	}
	rows := ptrs(items)
	Rank("fire", rows, RankOptions{Method: MatchContains, Insensitive: true})
	if rows[0].SearchScore() != 4 {
		t.Fatalf("score = %v, want match score plus initial score", rows[0].SearchScore())
	}
	Rank("", rows, RankOptions{Method: MatchContains, Insensitive: true})
	if rows[0].SearchScore() != 0 || !rows[0].Visible() {
		t.Fatalf("empty query must reset score and restore visibility")
	}
}

func TestRankIgnoredWords(t *testing.T) {
	items := []Item{
		NewItem("db01", "computer", "ssh db01", nil, "", 0, nil),
	}
	rows := ptrs(items)
	opts := RankOptions{
		Method:       MatchContains,
		Insensitive:  true,
		IgnoredWords: []*regexp.Regexp{regexp.MustCompile(`^\?`)},
	}
	Rank("?db01", rows, opts)
	if !rows[0].Visible() {
		t.Fatalf("ignored prefix must be stripped before matching")
	}
}

func TestOrderVisibleFirstThenScore(t *testing.T) {
	items := []Item{
		NewItem("alpha", "", "a", nil, "", 0, nil),
		NewItem("beta", "", "b", nil, "", 0, nil),
		NewItem("betamax", "", "bm", nil, "", 5, nil),
	}
	rows := ptrs(items)
	Rank("beta", rows, RankOptions{Method: MatchContains, Insensitive: true})
	Order(rows)

	got := labels(rows)
	if got[0] != "betamax" || got[1] != "beta" || got[2] != "alpha" {
		t.Fatalf("order = %v", got)
	}
	if rows[2].Visible() {
		t.Fatalf("alpha must be invisible and last")
	}
}

func TestOrderFallsBackToInitialScore(t *testing.T) {
	items := []Item{
		NewItem("rare", "", "r", nil, "", 1, nil),
		NewItem("favourite", "", "f", nil, "", 9, nil),
	}
	rows := ptrs(items)
	Rank("", rows, RankOptions{Method: MatchContains})
	Order(rows)
	if rows[0].Label != "favourite" {
		t.Fatalf("order without a query must follow initial score, got %v", labels(rows))
	}
}

func TestOrderStableOnTies(t *testing.T) {
	items := []Item{
		NewItem("one", "", "x", nil, "", 0, nil),
		NewItem("two", "", "x", nil, "", 0, nil),
		NewItem("three", "", "x", nil, "", 0, nil),
	}
	rows := ptrs(items)
	Rank("x", rows, RankOptions{Method: MatchContains})
	Order(rows)
	got := labels(rows)
	if got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Fatalf("ties must keep insertion order, got %v", got)
	}
}

func TestApplySortAlphabetical(t *testing.T) {
	items := []Item{
		NewItem("cherry", "", "c", nil, "", 0, nil),
		NewItem("apple", "", "a", nil, "", 0, nil),
		NewItem("banana", "", "b", nil, "", 2, nil),
	}
	ApplySort(items, SortAlphabetical)

	rows := ptrs(items)
	Rank("", rows, RankOptions{})
	Order(rows)

	got := labels(rows)
	// The pre-scored favourite floats above the alphabetical block.
	if got[0] != "banana" || got[1] != "apple" || got[2] != "cherry" {
		t.Fatalf("order = %v", got)
	}
}

func TestApplySortDefaultKeepsOrder(t *testing.T) {
	items := []Item{
		NewItem("cherry", "", "c", nil, "", 0, nil),
		NewItem("apple", "", "a", nil, "", 0, nil),
	}
	ApplySort(items, SortDefault)
	if items[0].Label != "cherry" {
		t.Fatalf("default sort must not reorder")
	}
}

func TestParseMatchMethod(t *testing.T) {
	if _, err := ParseMatchMethod("bogus"); err == nil {
		t.Fatalf("bogus method must fail")
	}
	m, err := ParseMatchMethod("multi-contains")
	if err != nil || m != MatchMultiContains {
		t.Fatalf("got %v, %v", m, err)
	}
}
