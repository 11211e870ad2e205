package workspace

// Panel tree algebra: the split and collapse operations behind SPLIT_PANEL
// and tab removal. All functions here mutate a workspace the reducer has
// already cloned; they are never called on committed state.

// detachTab removes the tab from its current panel's list and repairs that
// panel's active-tab selection. The emptied-leaf collapse is the caller's
// responsibility (the tab usually lands somewhere else first).
func detachTab(w *Workspace, tab *Tab) {
	panelID := tab.PanelID
	list := w.PanelTabs[panelID]
	idx := indexOf(list, tab.ID)
	if idx < 0 {
		return
	}
	list = append(list[:idx], list[idx+1:]...)
	w.PanelTabs[panelID] = list
	if w.ActiveTabIDs[panelID] == tab.ID {
		if len(list) == 0 {
			delete(w.ActiveTabIDs, panelID)
		} else {
			// Select the neighbor now occupying the departed tab's slot,
			// or the new last tab if it was last.
			if idx >= len(list) {
				idx = len(list) - 1
			}
			w.ActiveTabIDs[panelID] = list[idx]
		}
	}
}

// attachTab inserts the tab into the panel's list at index (clamped) and
// makes it that panel's active tab.
func attachTab(w *Workspace, tab *Tab, panelID string, index int) {
	list := w.PanelTabs[panelID]
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	list = append(list, "")
	copy(list[index+1:], list[index:])
	list[index] = tab.ID
	w.PanelTabs[panelID] = list
	tab.PanelID = panelID
	w.ActiveTabIDs[panelID] = tab.ID
}

// splitLeaf replaces the target leaf with a new container holding the
// original leaf (id preserved, so the host never remounts its content) and
// a fresh sibling leaf containing only the moved tab. Preconditions are the
// reducer's job; the tab has already been detached from its source panel.
func splitLeaf(w *Workspace, tab *Tab, targetID string, edge Edge) {
	target := w.FindPanel(targetID)
	if target == nil {
		return
	}
	sibling := &Panel{ID: newID()}
	w.PanelTabs[sibling.ID] = []string{tab.ID}
	w.ActiveTabIDs[sibling.ID] = tab.ID
	tab.PanelID = sibling.ID

	container := &Panel{ID: newID(), Direction: edge.Direction()}
	if edge.Before() {
		container.Children = []*Panel{sibling, target}
	} else {
		container.Children = []*Panel{target, sibling}
	}

	if parent := findParent(w.Panel, targetID); parent != nil {
		for i, child := range parent.Children {
			if child.ID == targetID {
				parent.Children[i] = container
				break
			}
		}
	} else {
		w.Panel = container
	}
	w.ActivePanelID = sibling.ID
}

// collapseIfEmpty deletes the leaf if its tab list emptied, then flattens
// any singleton containers left behind. If the whole tree emptied, a fresh
// root leaf with one empty tab is created: a workspace is never tab-less.
func collapseIfEmpty(w *Workspace, panelID string) {
	list, ok := w.PanelTabs[panelID]
	if !ok || len(list) > 0 {
		return
	}
	delete(w.PanelTabs, panelID)
	delete(w.ActiveTabIDs, panelID)

	if w.Panel != nil && w.Panel.ID == panelID {
		w.Panel = nil
	} else if parent := findParent(w.Panel, panelID); parent != nil {
		for i, child := range parent.Children {
			if child.ID == panelID {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	flattenSingletons(w)

	if w.Panel == nil {
		resetToEmptyTab(w)
	}
	if w.FindPanel(w.ActivePanelID) == nil || !w.FindPanel(w.ActivePanelID).IsLeaf() {
		if leaf := w.FirstLeaf(); leaf != nil {
			w.ActivePanelID = leaf.ID
		}
	}
}

// flattenSingletons replaces every container left with a single child by
// that child, repeating until none remain. Collapsing can cascade multiple
// levels when each flatten leaves another singleton above it.
func flattenSingletons(w *Workspace) {
	for {
		changed := false
		if w.Panel != nil && !w.Panel.IsLeaf() && len(w.Panel.Children) == 1 {
			w.Panel = w.Panel.Children[0]
			changed = true
		}
		var walk func(p *Panel)
		walk = func(p *Panel) {
			for i, child := range p.Children {
				if !child.IsLeaf() && len(child.Children) == 1 {
					p.Children[i] = child.Children[0]
					changed = true
				}
			}
			for _, child := range p.Children {
				if !child.IsLeaf() {
					walk(child)
				}
			}
		}
		if w.Panel != nil && !w.Panel.IsLeaf() {
			walk(w.Panel)
		}
		if !changed {
			return
		}
	}
}

// resetToEmptyTab rebuilds the workspace as one fresh leaf holding one
// fresh empty tab. Used when the last tab (or last leaf) goes away.
func resetToEmptyTab(w *Workspace) {
	panelID := newID()
	tab := &Tab{
		ID:        newID(),
		Name:      DefaultTabName,
		PanelID:   panelID,
		CreatedAt: w.nextCreatedAt(),
	}
	w.Tabs = append(w.Tabs, tab)
	w.Panel = &Panel{ID: panelID}
	w.PanelTabs[panelID] = []string{tab.ID}
	w.ActiveTabIDs[panelID] = tab.ID
	w.ActivePanelID = panelID
}
