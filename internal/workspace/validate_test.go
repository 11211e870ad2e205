package workspace

import (
	"strings"
	"testing"
)

// broken applies fn to a valid two-panel workspace and returns it.
func broken(t *testing.T, fn func(w *Workspace)) *Workspace {
	t.Helper()
	r := Reducer{}
	w := New("")
	w = r.Apply(w, AddTab{})
	ids := w.PanelTabs[w.FirstLeaf().ID]
	w = r.Apply(w, SplitPanel{TabID: ids[1], PanelID: w.FirstLeaf().ID, Edge: EdgeRight})
	if err := Validate(w, 0); err != nil {
		t.Fatalf("fixture invalid before mutation: %v", err)
	}
	fn(w)
	return w
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		field string
		fn    func(w *Workspace)
	}{
		{"nil root", "panel", func(w *Workspace) { w.Panel = nil }},
		{"singleton container", "panel", func(w *Workspace) {
			w.Panel.Children = w.Panel.Children[:1]
			delete(w.PanelTabs, w.Tabs[1].PanelID)
			w.Tabs = w.Tabs[:1]
		}},
		{"container direction", "panel", func(w *Workspace) { w.Panel.Direction = "diagonal" }},
		{"duplicate panel id", "panel", func(w *Workspace) {
			w.Panel.Children[1].ID = w.Panel.Children[0].ID
		}},
		{"stale panelTabs key", "panelTabs", func(w *Workspace) { w.PanelTabs["ghost"] = []string{"t"} }},
		{"empty leaf persisted", "panelTabs", func(w *Workspace) {
			id := w.Panel.Children[1].ID
			w.PanelTabs[id] = nil
		}},
		{"leaf missing from map", "panelTabs", func(w *Workspace) {
			delete(w.PanelTabs, w.Panel.Children[1].ID)
		}},
		{"tab listed twice", "panelTabs", func(w *Workspace) {
			a := w.Panel.Children[0].ID
			b := w.Panel.Children[1].ID
			w.PanelTabs[b] = append(w.PanelTabs[b], w.PanelTabs[a][0])
		}},
		{"unknown tab listed", "panelTabs", func(w *Workspace) {
			a := w.Panel.Children[0].ID
			w.PanelTabs[a] = append(w.PanelTabs[a], "ghost")
		}},
		{"tab panelId mismatch", "tabs", func(w *Workspace) { w.Tabs[0].PanelID = "elsewhere" }},
		{"duplicate tab id", "tabs", func(w *Workspace) { w.Tabs[1].ID = w.Tabs[0].ID }},
		{"orphan tab", "tabs", func(w *Workspace) {
			w.Tabs = append(w.Tabs, &Tab{ID: "orphan", Name: "x", PanelID: "nowhere"})
		}},
		{"active tab not in panel", "activeTabIds", func(w *Workspace) {
			w.ActiveTabIDs[w.Panel.Children[0].ID] = "ghost"
		}},
		{"active tab key not leaf", "activeTabIds", func(w *Workspace) {
			w.ActiveTabIDs["ghost"] = w.Tabs[0].ID
		}},
		{"active panel missing", "activePanelId", func(w *Workspace) { w.ActivePanelID = "ghost" }},
		{"active panel is container", "activePanelId", func(w *Workspace) { w.ActivePanelID = w.Panel.ID }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := broken(t, tt.fn)
			err := Validate(w, 0)
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q (reason: %s)", ve.Field, tt.field, ve.Reason)
			}
			if !strings.Contains(err.Error(), "invalid workspace") {
				t.Errorf("error message %q missing prefix", err.Error())
			}
		})
	}
}

func TestValidateCapacity(t *testing.T) {
	r := Reducer{}
	w := New("")
	w = r.Apply(w, AddTab{})
	w = r.Apply(w, AddTab{})

	if err := Validate(w, 3); err != nil {
		t.Errorf("3 tabs within capacity 3: %v", err)
	}
	if err := Validate(w, 2); err == nil {
		t.Error("3 tabs should exceed capacity 2")
	}
	if err := Validate(w, 0); err != nil {
		t.Errorf("capacity 0 should disable the check: %v", err)
	}
}
