package menu

import "sync"

// ProviderData carries the result of a provider query. A nil Items slice
// means "no change since the last call"; a non-nil slice (even an empty one)
// replaces the current item set.
type ProviderData struct {
	Items []Item
}

// Changed reports whether the provider returned a replacement item set.
func (d ProviderData) Changed() bool { return d.Items != nil }

// Provider feeds items into the selection engine. Calls happen on the
// controller's goroutine and may block briefly, but must never touch
// renderer state.
type Provider interface {
	// Elements returns the items for the given query. A nil query is the
	// initial load. Providers may ignore the query entirely and let the
	// ranking engine filter.
	Elements(query *string) ProviderData
	// SubElements returns the children of a parent item when the user
	// drills in.
	SubElements(parent Item) ProviderData
}

// LockedProvider serializes access to a Provider so the initial scan can run
// on a worker while the UI loop keeps dispatching.
type LockedProvider struct {
	mu sync.Mutex
	p  Provider
}

// NewLockedProvider wraps p behind a mutex.
func NewLockedProvider(p Provider) *LockedProvider {
	return &LockedProvider{p: p}
}

// Elements forwards to the wrapped provider under the lock.
func (l *LockedProvider) Elements(query *string) ProviderData {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Elements(query)
}

// SubElements forwards to the wrapped provider under the lock.
func (l *LockedProvider) SubElements(parent Item) ProviderData {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.SubElements(parent)
}
