// Package layouts holds the content-provider boundary. The workspace core
// only carries opaque layout identifiers; this package maps them to host
// providers and caches what they resolve, keyed by tab id. The registry is
// explicitly constructed and passed in, never ambient global state.
package layouts

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Params are the opaque provider arguments carried on a tab.
type Params map[string]any

// Request identifies one resolution: which provider, with what arguments,
// for which tab. The tab id keys the cached result.
type Request struct {
	TabID    string
	LayoutID string
	Params   Params
	Option   string
}

// Content is what a provider resolves to. The core never renders it; the
// host does.
type Content struct {
	Title string
	Body  string
}

// Provider resolves content for one tab. Providers run host-side; the core
// imposes no execution model on them beyond the context.
type Provider func(ctx context.Context, req Request) (Content, error)

// Meta describes a registered layout for pickers and menus.
type Meta struct {
	ID          string
	Title       string
	Description string
}

// Registry maps layout ids to providers. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	metas     map[string]Meta
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		metas:     make(map[string]Meta),
	}
}

// Register adds a provider under meta.ID. Empty ids, nil providers, and
// duplicate registrations are setup mistakes and return errors.
func (r *Registry) Register(meta Meta, p Provider) error {
	if meta.ID == "" {
		return fmt.Errorf("register layout: empty id")
	}
	if p == nil {
		return fmt.Errorf("register layout %q: nil provider", meta.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[meta.ID]; exists {
		return fmt.Errorf("register layout %q: already registered", meta.ID)
	}
	if meta.Title == "" {
		meta.Title = meta.ID
	}
	r.providers[meta.ID] = p
	r.metas[meta.ID] = meta
	return nil
}

// Has reports whether a layout id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[id]
	return ok
}

// List returns registered layout metadata sorted by id.
func (r *Registry) List() []Meta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meta, 0, len(r.metas))
	for _, m := range r.metas {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve runs the provider for req.LayoutID. An unknown layout is an
// error the tab tolerates: it simply shows no content and stays fully
// functional for move/close/rename.
func (r *Registry) Resolve(ctx context.Context, req Request) (Content, error) {
	r.mu.RLock()
	p, ok := r.providers[req.LayoutID]
	r.mu.RUnlock()
	if !ok {
		return Content{}, fmt.Errorf("resolve layout %q: not registered", req.LayoutID)
	}
	content, err := p(ctx, req)
	if err != nil {
		return Content{}, fmt.Errorf("resolve layout %q: %w", req.LayoutID, err)
	}
	return content, nil
}
