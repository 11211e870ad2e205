package workspace

import "fmt"

// ValidationError describes a structural invariant violation. Field names
// the workspace area that failed; Reason is human-readable. Inbound state
// that fails validation is rejected wholesale with this error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid workspace: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks every structural invariant. maxTabs <= 0 disables the
// capacity check. A nil error means the workspace is safe to adopt.
func Validate(w *Workspace, maxTabs int) error {
	if w == nil {
		return invalid("workspace", "nil")
	}
	if w.Panel == nil {
		return invalid("panel", "missing root panel")
	}
	if w.PanelTabs == nil {
		return invalid("panelTabs", "missing map")
	}
	if maxTabs > 0 && len(w.Tabs) > maxTabs {
		return invalid("tabs", "%d tabs exceeds capacity %d", len(w.Tabs), maxTabs)
	}

	// Panel tree shape: unique ids, containers have >=2 children.
	panelIDs := make(map[string]bool)
	leafIDs := make(map[string]bool)
	var walkErr error
	var walk func(p *Panel)
	walk = func(p *Panel) {
		if walkErr != nil {
			return
		}
		if panelIDs[p.ID] {
			walkErr = invalid("panel", "duplicate panel id %q", p.ID)
			return
		}
		panelIDs[p.ID] = true
		if p.IsLeaf() {
			leafIDs[p.ID] = true
			return
		}
		if len(p.Children) < 2 {
			walkErr = invalid("panel", "container %q has %d children, need >=2", p.ID, len(p.Children))
			return
		}
		if p.Direction != DirectionHorizontal && p.Direction != DirectionVertical {
			walkErr = invalid("panel", "container %q has direction %q", p.ID, p.Direction)
			return
		}
		for _, child := range p.Children {
			walk(child)
		}
	}
	walk(w.Panel)
	if walkErr != nil {
		return walkErr
	}

	// panelTabs keys are exactly the leaf ids, no empty leaves persist.
	for panelID, tabs := range w.PanelTabs {
		if !leafIDs[panelID] {
			return invalid("panelTabs", "key %q is not a leaf panel", panelID)
		}
		if len(tabs) == 0 {
			return invalid("panelTabs", "leaf %q has no tabs", panelID)
		}
	}
	for id := range leafIDs {
		if _, ok := w.PanelTabs[id]; !ok {
			return invalid("panelTabs", "leaf %q missing from map", id)
		}
	}

	// Every tab appears in exactly one panel list at the panel its PanelID
	// names, and tab ids are unique and do not collide with panel ids.
	seenTabs := make(map[string]string) // tab id -> panel id
	for panelID, tabs := range w.PanelTabs {
		for _, tabID := range tabs {
			if prev, ok := seenTabs[tabID]; ok {
				return invalid("panelTabs", "tab %q listed in panels %q and %q", tabID, prev, panelID)
			}
			seenTabs[tabID] = panelID
		}
	}
	tabIDs := make(map[string]bool, len(w.Tabs))
	for _, t := range w.Tabs {
		if tabIDs[t.ID] {
			return invalid("tabs", "duplicate tab id %q", t.ID)
		}
		tabIDs[t.ID] = true
		if panelIDs[t.ID] {
			return invalid("tabs", "tab id %q collides with a panel id", t.ID)
		}
		panelID, ok := seenTabs[t.ID]
		if !ok {
			return invalid("tabs", "tab %q not listed in any panel", t.ID)
		}
		if t.PanelID != panelID {
			return invalid("tabs", "tab %q has panelId %q but is listed under %q", t.ID, t.PanelID, panelID)
		}
	}
	for tabID := range seenTabs {
		if !tabIDs[tabID] {
			return invalid("panelTabs", "unknown tab id %q listed", tabID)
		}
	}

	// Active selections reference live tabs and panels.
	for panelID, tabID := range w.ActiveTabIDs {
		tabs, ok := w.PanelTabs[panelID]
		if !ok {
			return invalid("activeTabIds", "key %q is not a leaf panel", panelID)
		}
		if !contains(tabs, tabID) {
			return invalid("activeTabIds", "tab %q not in panel %q", tabID, panelID)
		}
	}
	if !leafIDs[w.ActivePanelID] {
		return invalid("activePanelId", "%q is not a leaf panel", w.ActivePanelID)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}
