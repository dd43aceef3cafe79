package menu

import "testing"

func TestNewItemFlattensGrandchildren(t *testing.T) {
	grand := NewItem("grand", "", "g", nil, "", 0, nil)
	child := NewItem("child", "", "c", []Item{grand}, "", 0, nil)
	top := NewItem("top", "", "t", []Item{child}, "", 0, nil)

	if len(top.SubElements) != 2 {
		t.Fatalf("children = %d, want child and grandchild flattened", len(top.SubElements))
	}
	for _, sub := range top.SubElements {
		if sub.SubElements != nil {
			t.Fatalf("nested children must be cleared, %q keeps %d", sub.Label, len(sub.SubElements))
		}
	}
}

func TestSearchTargetCoversActionAndLabel(t *testing.T) {
	it := NewItem("Files", "", "nautilus", nil, "", 0, nil)
	if got := it.SearchTarget(); got != "nautilus Files" {
		t.Fatalf("target = %q", got)
	}
}

func TestCloneItemsIsIndependent(t *testing.T) {
	orig := []Item{NewItem("a", "", "a", nil, "", 0, nil)}
	dup := CloneItems(orig)
	dup[0].Label = "b"
	if orig[0].Label != "a" {
		t.Fatalf("clone must not alias the source")
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		img  string
		text string
	}{
		{"plain", "", "plain"},
		{"img:firefox:text:Firefox Browser", "firefox", "Firefox Browser"},
		{"text:hello", "", "hello"},
		{"img:icon", "icon", ""},
		{"a:b", "", "a:b"},
	}
	for _, tc := range tests {
		img, text := ParseLabel(tc.in)
		if img != tc.img || text != tc.text {
			t.Errorf("ParseLabel(%q) = (%q, %q), want (%q, %q)", tc.in, img, text, tc.img, tc.text)
		}
	}
}
