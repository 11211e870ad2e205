package workspace

import "github.com/google/uuid"

// DefaultTabName is the display name given to tabs created without a layout.
const DefaultTabName = "New Tab"

// Direction is the split orientation of a container panel.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// Edge identifies the side of a panel targeted by a split drop.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Direction returns the container direction a split on this edge produces.
func (e Edge) Direction() Direction {
	if e == EdgeLeft || e == EdgeRight {
		return DirectionHorizontal
	}
	return DirectionVertical
}

// Before reports whether the new sibling leaf precedes the original leaf
// in the container's child order for this edge.
func (e Edge) Before() bool {
	return e == EdgeLeft || e == EdgeTop
}

// Tab is one content slot. The layout fields are opaque identifiers handed
// to the host's content provider registry; a tab without a LayoutID is an
// empty placeholder.
type Tab struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	PanelID      string         `json:"panelId"`
	LayoutID     string         `json:"layoutId,omitempty"`
	LayoutParams map[string]any `json:"layoutParams,omitempty"`
	LayoutOption string         `json:"layoutOption,omitempty"`
	Locked       bool           `json:"locked"`
	CreatedAt    int64          `json:"createdAt"`
}

// Panel is a node in the panel tree. A leaf has no children and owns an
// ordered tab list through Workspace.PanelTabs; a container has a direction
// and two or more children and owns no tabs itself.
type Panel struct {
	ID        string    `json:"id"`
	Pinned    bool      `json:"pinned,omitempty"`
	Direction Direction `json:"direction,omitempty"`
	Children  []*Panel  `json:"children,omitempty"`
}

// IsLeaf reports whether the panel has no children.
func (p *Panel) IsLeaf() bool {
	return len(p.Children) == 0
}

// Workspace is the aggregate root. Display order of tabs lives in PanelTabs;
// Tabs is keyed by id only. All panel lookups go through the tree rooted at
// Panel plus the flat maps, never back-pointers.
type Workspace struct {
	Tabs          []*Tab              `json:"tabs"`
	Panel         *Panel              `json:"panel"`
	PanelTabs     map[string][]string `json:"panelTabs"`
	ActiveTabIDs  map[string]string   `json:"activeTabIds"`
	ActivePanelID string              `json:"activePanelId"`
}

// newID generates tab and panel ids. Package-level so tests can pin it.
var newID = uuid.NewString

// New creates a fresh workspace: one leaf panel holding one empty tab.
// If initialLayout is non-empty it is assigned to that first tab; tabs
// created later never inherit it.
func New(initialLayout string) *Workspace {
	panelID := newID()
	tab := &Tab{
		ID:        newID(),
		Name:      DefaultTabName,
		PanelID:   panelID,
		LayoutID:  initialLayout,
		CreatedAt: 0,
	}
	return &Workspace{
		Tabs:          []*Tab{tab},
		Panel:         &Panel{ID: panelID},
		PanelTabs:     map[string][]string{panelID: {tab.ID}},
		ActiveTabIDs:  map[string]string{panelID: tab.ID},
		ActivePanelID: panelID,
	}
}

// Clone returns a deep copy. Reducer transitions clone first and mutate the
// copy, so the previous workspace is never touched.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	out := &Workspace{
		Tabs:          make([]*Tab, len(w.Tabs)),
		Panel:         clonePanel(w.Panel),
		PanelTabs:     make(map[string][]string, len(w.PanelTabs)),
		ActiveTabIDs:  make(map[string]string, len(w.ActiveTabIDs)),
		ActivePanelID: w.ActivePanelID,
	}
	for i, t := range w.Tabs {
		out.Tabs[i] = cloneTab(t)
	}
	for id, tabs := range w.PanelTabs {
		list := make([]string, len(tabs))
		copy(list, tabs)
		out.PanelTabs[id] = list
	}
	for id, tabID := range w.ActiveTabIDs {
		out.ActiveTabIDs[id] = tabID
	}
	return out
}

func cloneTab(t *Tab) *Tab {
	c := *t
	if t.LayoutParams != nil {
		c.LayoutParams = make(map[string]any, len(t.LayoutParams))
		for k, v := range t.LayoutParams {
			c.LayoutParams[k] = v
		}
	}
	return &c
}

func clonePanel(p *Panel) *Panel {
	if p == nil {
		return nil
	}
	c := &Panel{ID: p.ID, Pinned: p.Pinned, Direction: p.Direction}
	if len(p.Children) > 0 {
		c.Children = make([]*Panel, len(p.Children))
		for i, child := range p.Children {
			c.Children[i] = clonePanel(child)
		}
	}
	return c
}

// Tab returns the tab with the given id, or nil.
func (w *Workspace) Tab(id string) *Tab {
	for _, t := range w.Tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindPanel returns the panel with the given id, or nil.
func (w *Workspace) FindPanel(id string) *Panel {
	return findPanel(w.Panel, id)
}

func findPanel(p *Panel, id string) *Panel {
	if p == nil {
		return nil
	}
	if p.ID == id {
		return p
	}
	for _, child := range p.Children {
		if found := findPanel(child, id); found != nil {
			return found
		}
	}
	return nil
}

// findParent returns the container whose children include id, or nil if id
// is the root or absent.
func findParent(p *Panel, id string) *Panel {
	if p == nil {
		return nil
	}
	for _, child := range p.Children {
		if child.ID == id {
			return p
		}
		if found := findParent(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Leaves returns all leaf panels in tree order.
func (w *Workspace) Leaves() []*Panel {
	var out []*Panel
	var walk func(*Panel)
	walk = func(p *Panel) {
		if p == nil {
			return
		}
		if p.IsLeaf() {
			out = append(out, p)
			return
		}
		for _, child := range p.Children {
			walk(child)
		}
	}
	walk(w.Panel)
	return out
}

// FirstLeaf returns the first leaf panel in tree order.
func (w *Workspace) FirstLeaf() *Panel {
	leaves := w.Leaves()
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// SingleTabMode reports whether exactly one tab exists in exactly one leaf
// panel workspace-wide. Drag affordances are suppressed in this mode.
func (w *Workspace) SingleTabMode() bool {
	return len(w.Tabs) == 1 && w.Panel != nil && w.Panel.IsLeaf()
}

// nextCreatedAt returns the next monotonic sequence value for new tabs.
// Derived from existing tabs so it survives JSON round-trips.
func (w *Workspace) nextCreatedAt() int64 {
	var max int64 = -1
	for _, t := range w.Tabs {
		if t.CreatedAt > max {
			max = t.CreatedAt
		}
	}
	return max + 1
}
