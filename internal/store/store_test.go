package store

import (
	"context"
	"testing"

	"prism/internal/workspace"
)

func TestDispatchCommitsAndNotifies(t *testing.T) {
	s := New(workspace.New(""), 0)
	var notified *workspace.Workspace
	s.SetOnChange(func(w *workspace.Workspace) { notified = w })

	changed := s.Dispatch(context.Background(), workspace.AddTab{})
	if !changed {
		t.Fatal("AddTab should change the workspace")
	}
	if len(s.Current().Tabs) != 2 {
		t.Errorf("got %d tabs, want 2", len(s.Current().Tabs))
	}
	if notified == nil || len(notified.Tabs) != 2 {
		t.Error("listener should receive the committed workspace")
	}
}

func TestDispatchNoopNotifiesNobody(t *testing.T) {
	s := New(workspace.New(""), 0)
	calls := 0
	s.SetOnChange(func(*workspace.Workspace) { calls++ })

	before := s.Current()
	if s.Dispatch(context.Background(), workspace.CloseTab{TabID: "ghost"}) {
		t.Error("malformed action should not commit")
	}
	if s.Current() != before {
		t.Error("no-op must keep the committed pointer")
	}
	if calls != 0 {
		t.Errorf("listener called %d times, want 0", calls)
	}
	if s.Dispatch(context.Background(), nil) {
		t.Error("nil action should be a no-op")
	}
}

func TestSnapshotIsClone(t *testing.T) {
	s := New(workspace.New(""), 0)
	snap := s.Snapshot()
	snap.Tabs[0].Name = "mutated"
	if s.Current().Tabs[0].Name != workspace.DefaultTabName {
		t.Error("snapshot mutation leaked into committed state")
	}
}

func TestAtCapacity(t *testing.T) {
	s := New(workspace.New(""), 2)
	if s.AtCapacity() {
		t.Error("1 of 2: not at capacity")
	}
	s.Dispatch(context.Background(), workspace.AddTab{})
	if !s.AtCapacity() {
		t.Error("2 of 2: at capacity")
	}
	if s.Dispatch(context.Background(), workspace.AddTab{}) {
		t.Error("AddTab at capacity should no-op")
	}
	if s.MaxTabs() != 2 {
		t.Errorf("MaxTabs = %d, want 2", s.MaxTabs())
	}
}

func TestReplaceCommitsExternalState(t *testing.T) {
	s := New(workspace.New(""), 0)
	var notified *workspace.Workspace
	s.SetOnChange(func(w *workspace.Workspace) { notified = w })

	replacement := workspace.New("pushed")
	s.Replace(replacement)
	if s.Current() != replacement {
		t.Error("Replace should commit the given workspace")
	}
	if notified != replacement {
		t.Error("Replace should notify the listener")
	}
	s.Replace(nil) // ignored
	if s.Current() != replacement {
		t.Error("Replace(nil) must be a no-op")
	}
}
