package workspace

import "strings"

// Reducer applies actions to a workspace. Apply is pure: the input is never
// mutated, and the result always satisfies the structural invariants.
// Actions that reference unknown ids or violate a precondition return the
// input unchanged; racing UI events make those routinely reachable, so they
// are never errors.
type Reducer struct {
	// MaxTabs caps the total tab count. <= 0 means unlimited.
	MaxTabs int
}

// Apply returns the workspace after the action. The same pointer comes back
// when the action is a no-op.
func (r Reducer) Apply(w *Workspace, action Action) *Workspace {
	if w == nil {
		return w
	}
	switch a := action.(type) {
	case AddTab:
		return r.addTab(w)
	case CloseTab:
		return r.closeTab(w, a)
	case DuplicateTab:
		return r.duplicateTab(w, a)
	case RenameTab:
		return r.renameTab(w, a)
	case LockTab:
		return r.setLocked(w, a.TabID, true)
	case UnlockTab:
		return r.setLocked(w, a.TabID, false)
	case PinPanel:
		return r.setPinned(w, a.PanelID, true)
	case UnpinPanel:
		return r.setPinned(w, a.PanelID, false)
	case SelectTab:
		return r.selectTab(w, a)
	case SetActivePanel:
		return r.setActivePanel(w, a)
	case ReorderTab:
		return r.reorderTab(w, a)
	case MoveTab:
		return r.moveTab(w, a)
	case SplitPanel:
		return r.splitPanel(w, a)
	}
	return w
}

func (r Reducer) atCapacity(w *Workspace) bool {
	return r.MaxTabs > 0 && len(w.Tabs) >= r.MaxTabs
}

func (r Reducer) addTab(w *Workspace) *Workspace {
	if r.atCapacity(w) {
		return w
	}
	target := w.FindPanel(w.ActivePanelID)
	if target == nil || !target.IsLeaf() {
		target = w.FirstLeaf()
	}
	if target == nil {
		return w
	}
	next := w.Clone()
	tab := &Tab{
		ID:        newID(),
		Name:      DefaultTabName,
		PanelID:   target.ID,
		CreatedAt: next.nextCreatedAt(),
	}
	next.Tabs = append(next.Tabs, tab)
	next.PanelTabs[target.ID] = append(next.PanelTabs[target.ID], tab.ID)
	next.ActiveTabIDs[target.ID] = tab.ID
	next.ActivePanelID = target.ID
	return next
}

func (r Reducer) closeTab(w *Workspace, a CloseTab) *Workspace {
	if w.Tab(a.TabID) == nil {
		return w
	}
	next := w.Clone()
	tab := next.Tab(a.TabID)
	panelID := tab.PanelID
	detachTab(next, tab)
	for i, t := range next.Tabs {
		if t.ID == tab.ID {
			next.Tabs = append(next.Tabs[:i], next.Tabs[i+1:]...)
			break
		}
	}
	if len(next.Tabs) == 0 {
		// Never tab-less: the last close leaves one fresh empty tab in the
		// surviving leaf. The panel keeps its id (and pinned flag), so hosts
		// keying off panel identity never remount.
		fresh := &Tab{
			ID:        newID(),
			Name:      DefaultTabName,
			PanelID:   panelID,
			CreatedAt: next.nextCreatedAt(),
		}
		next.Tabs = append(next.Tabs, fresh)
		next.PanelTabs[panelID] = []string{fresh.ID}
		next.ActiveTabIDs[panelID] = fresh.ID
		next.ActivePanelID = panelID
		return next
	}
	collapseIfEmpty(next, panelID)
	return next
}

func (r Reducer) duplicateTab(w *Workspace, a DuplicateTab) *Workspace {
	src := w.Tab(a.TabID)
	if src == nil || r.atCapacity(w) {
		return w
	}
	next := w.Clone()
	src = next.Tab(a.TabID)
	dup := cloneTab(src)
	dup.ID = newID()
	dup.Name = src.Name + " (copy)"
	dup.Locked = false
	dup.CreatedAt = next.nextCreatedAt()
	next.Tabs = append(next.Tabs, dup)
	idx := indexOf(next.PanelTabs[src.PanelID], src.ID)
	attachTab(next, dup, src.PanelID, idx+1)
	next.ActivePanelID = src.PanelID
	return next
}

func (r Reducer) renameTab(w *Workspace, a RenameTab) *Workspace {
	tab := w.Tab(a.TabID)
	name := strings.TrimSpace(a.NewName)
	if tab == nil || name == "" || tab.Name == name {
		return w
	}
	next := w.Clone()
	next.Tab(a.TabID).Name = name
	return next
}

func (r Reducer) setLocked(w *Workspace, tabID string, locked bool) *Workspace {
	tab := w.Tab(tabID)
	if tab == nil || tab.Locked == locked {
		return w
	}
	next := w.Clone()
	next.Tab(tabID).Locked = locked
	return next
}

func (r Reducer) setPinned(w *Workspace, panelID string, pinned bool) *Workspace {
	panel := w.FindPanel(panelID)
	if panel == nil || !panel.IsLeaf() || panel.Pinned == pinned {
		return w
	}
	next := w.Clone()
	next.FindPanel(panelID).Pinned = pinned
	return next
}

func (r Reducer) selectTab(w *Workspace, a SelectTab) *Workspace {
	tab := w.Tab(a.TabID)
	if tab == nil {
		return w
	}
	if w.ActiveTabIDs[tab.PanelID] == tab.ID && w.ActivePanelID == tab.PanelID {
		return w
	}
	next := w.Clone()
	tab = next.Tab(a.TabID)
	next.ActiveTabIDs[tab.PanelID] = tab.ID
	next.ActivePanelID = tab.PanelID
	return next
}

func (r Reducer) setActivePanel(w *Workspace, a SetActivePanel) *Workspace {
	panel := w.FindPanel(a.PanelID)
	if panel == nil || !panel.IsLeaf() || w.ActivePanelID == a.PanelID {
		return w
	}
	next := w.Clone()
	next.ActivePanelID = a.PanelID
	return next
}

func (r Reducer) reorderTab(w *Workspace, a ReorderTab) *Workspace {
	tab := w.Tab(a.TabID)
	if tab == nil || tab.Locked {
		return w
	}
	list := w.PanelTabs[tab.PanelID]
	from := indexOf(list, tab.ID)
	to := clamp(a.Index, 0, len(list)-1)
	if from < 0 || from == to {
		return w
	}
	next := w.Clone()
	nl := next.PanelTabs[tab.PanelID]
	nl = append(nl[:from], nl[from+1:]...)
	nl = append(nl, "")
	copy(nl[to+1:], nl[to:])
	nl[to] = tab.ID
	next.PanelTabs[tab.PanelID] = nl
	return next
}

func (r Reducer) moveTab(w *Workspace, a MoveTab) *Workspace {
	tab := w.Tab(a.TabID)
	if tab == nil || tab.Locked {
		return w
	}
	target := w.FindPanel(a.PanelID)
	if target == nil || !target.IsLeaf() {
		return w
	}
	if target.ID == tab.PanelID {
		// Same-panel move is just a reorder.
		return r.reorderTab(w, ReorderTab{TabID: a.TabID, Index: a.Index})
	}
	next := w.Clone()
	tab = next.Tab(a.TabID)
	sourceID := tab.PanelID
	detachTab(next, tab)
	attachTab(next, tab, target.ID, a.Index)
	next.ActivePanelID = target.ID
	collapseIfEmpty(next, sourceID)
	return next
}

func (r Reducer) splitPanel(w *Workspace, a SplitPanel) *Workspace {
	tab := w.Tab(a.TabID)
	if tab == nil || tab.Locked {
		return w
	}
	switch a.Edge {
	case EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
	default:
		return w
	}
	target := w.FindPanel(a.PanelID)
	if target == nil || !target.IsLeaf() || target.Pinned {
		return w
	}
	if w.SingleTabMode() {
		return w
	}
	// Splitting a leaf off itself is meaningless when the dragged tab is
	// that leaf's only tab: the emptied original would collapse right back.
	if tab.PanelID == target.ID && len(w.PanelTabs[target.ID]) == 1 {
		return w
	}
	next := w.Clone()
	tab = next.Tab(a.TabID)
	sourceID := tab.PanelID
	detachTab(next, tab)
	splitLeaf(next, tab, target.ID, a.Edge)
	if sourceID != target.ID {
		collapseIfEmpty(next, sourceID)
	}
	return next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
