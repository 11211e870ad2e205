package layouts

import "sync"

// Resolutions caches resolved content keyed by tab id, so the host can
// re-render tabs without re-running providers. Entries for tabs that no
// longer exist are dropped by Prune. Safe for concurrent use.
type Resolutions struct {
	mu    sync.RWMutex
	byTab map[string]Content
}

// NewResolutions creates an empty cache.
func NewResolutions() *Resolutions {
	return &Resolutions{byTab: make(map[string]Content)}
}

// Set stores the resolved content for a tab.
func (r *Resolutions) Set(tabID string, c Content) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTab[tabID] = c
}

// Get returns the cached content for a tab.
func (r *Resolutions) Get(tabID string) (Content, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byTab[tabID]
	return c, ok
}

// Drop removes one tab's entry. Returns true if it existed.
func (r *Resolutions) Drop(tabID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTab[tabID]; !ok {
		return false
	}
	delete(r.byTab, tabID)
	return true
}

// Prune removes entries whose tab id is not in live. Returns the number
// removed. Called after transitions that can close tabs.
func (r *Resolutions) Prune(live map[string]bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	pruned := 0
	for tabID := range r.byTab {
		if !live[tabID] {
			delete(r.byTab, tabID)
			pruned++
		}
	}
	return pruned
}

// Count returns the number of cached entries.
func (r *Resolutions) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byTab)
}
