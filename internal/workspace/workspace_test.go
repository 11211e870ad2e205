package workspace

import (
	"encoding/json"
	"testing"
)

func TestNewWorkspaceShape(t *testing.T) {
	w := New("")
	if len(w.Tabs) != 1 {
		t.Fatalf("got %d tabs, want 1", len(w.Tabs))
	}
	if !w.Panel.IsLeaf() {
		t.Error("root should be a leaf")
	}
	tab := w.Tabs[0]
	if tab.PanelID != w.Panel.ID {
		t.Errorf("tab panelId = %q, want root %q", tab.PanelID, w.Panel.ID)
	}
	if w.ActivePanelID != w.Panel.ID {
		t.Errorf("activePanelId = %q, want root", w.ActivePanelID)
	}
	if w.ActiveTabIDs[w.Panel.ID] != tab.ID {
		t.Error("first tab should be selected")
	}
	if !w.SingleTabMode() {
		t.Error("fresh workspace should be in single-tab mode")
	}
	if err := Validate(w, 0); err != nil {
		t.Errorf("fresh workspace invalid: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := New("home")
	w.Tabs[0].LayoutParams = map[string]any{"q": "a"}
	c := w.Clone()

	c.Tabs[0].Name = "changed"
	c.Tabs[0].LayoutParams["q"] = "b"
	c.PanelTabs[w.Panel.ID] = append(c.PanelTabs[w.Panel.ID], "extra")
	c.Panel.Pinned = true
	c.ActiveTabIDs["x"] = "y"

	if w.Tabs[0].Name == "changed" {
		t.Error("tab struct shared between clone and original")
	}
	if w.Tabs[0].LayoutParams["q"] != "a" {
		t.Error("layout params map shared")
	}
	if len(w.PanelTabs[w.Panel.ID]) != 1 {
		t.Error("panelTabs list shared")
	}
	if w.Panel.Pinned {
		t.Error("panel tree shared")
	}
	if _, ok := w.ActiveTabIDs["x"]; ok {
		t.Error("activeTabIds map shared")
	}
}

func TestEdgeHelpers(t *testing.T) {
	tests := []struct {
		edge      Edge
		direction Direction
		before    bool
	}{
		{EdgeLeft, DirectionHorizontal, true},
		{EdgeRight, DirectionHorizontal, false},
		{EdgeTop, DirectionVertical, true},
		{EdgeBottom, DirectionVertical, false},
	}
	for _, tt := range tests {
		if got := tt.edge.Direction(); got != tt.direction {
			t.Errorf("%s.Direction() = %q, want %q", tt.edge, got, tt.direction)
		}
		if got := tt.edge.Before(); got != tt.before {
			t.Errorf("%s.Before() = %v, want %v", tt.edge, got, tt.before)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := Reducer{}
	w := New("home")
	w = r.Apply(w, AddTab{})
	w = r.Apply(w, AddTab{})
	ids := w.PanelTabs[w.FirstLeaf().ID]
	w = r.Apply(w, SplitPanel{TabID: ids[1], PanelID: w.FirstLeaf().ID, Edge: EdgeRight})

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Workspace
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := Validate(&back, 0); err != nil {
		t.Fatalf("round-tripped workspace invalid: %v", err)
	}
	again, err := json.Marshal(&back)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(data) != string(again) {
		t.Errorf("round trip not stable:\n%s\n%s", data, again)
	}
	// Sequence counter survives the trip: a new tab sorts after all others.
	next := r.Apply(&back, AddTab{})
	added := next.Tabs[len(next.Tabs)-1]
	for _, tab := range back.Tabs {
		if added.CreatedAt <= tab.CreatedAt {
			t.Fatalf("new tab createdAt %d not after %d", added.CreatedAt, tab.CreatedAt)
		}
	}
}

func TestLeavesTreeOrder(t *testing.T) {
	r := Reducer{}
	w := New("")
	w = r.Apply(w, AddTab{})
	w = r.Apply(w, AddTab{})
	l1 := w.FirstLeaf().ID
	ids := w.PanelTabs[l1]
	w = r.Apply(w, SplitPanel{TabID: ids[1], PanelID: l1, Edge: EdgeLeft})

	leaves := w.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	// Left split puts the new leaf first in tree order.
	if leaves[1].ID != l1 {
		t.Errorf("original leaf should be second, got order [%s %s]", leaves[0].ID, leaves[1].ID)
	}
	if w.FirstLeaf().ID != leaves[0].ID {
		t.Error("FirstLeaf should match Leaves()[0]")
	}
}
