package workspace

// Action is the closed set of workspace transitions. One type per operation;
// the reducer switches exhaustively over them. All actions are plain data so
// UI controls, keyboard shortcuts, and the drag controller dispatch through
// the same path.
type Action interface {
	// Name is the wire/trace identifier for the action kind.
	Name() string
	isAction()
}

// AddTab appends a new empty tab to the active panel and selects it.
type AddTab struct{}

// CloseTab removes the tab. Closing the last tab in the workspace resets it
// to a single fresh empty tab instead of leaving the workspace tab-less.
type CloseTab struct {
	TabID string
}

// DuplicateTab inserts a copy (new id, same layout binding) immediately
// after the source tab in the same panel.
type DuplicateTab struct {
	TabID string
}

// RenameTab sets the tab's display name to NewName. Empty or whitespace-only
// names are rejected and the prior name is retained.
type RenameTab struct {
	TabID   string
	NewName string
}

// LockTab forbids drag-initiated reordering and moving of the tab.
type LockTab struct {
	TabID string
}

// UnlockTab clears the lock.
type UnlockTab struct {
	TabID string
}

// PinPanel suppresses the leaf panel's own split affordance.
type PinPanel struct {
	PanelID string
}

// UnpinPanel clears the pin.
type UnpinPanel struct {
	PanelID string
}

// SelectTab makes the tab the active tab of its panel and focuses the panel.
type SelectTab struct {
	TabID string
}

// SetActivePanel moves input focus to the leaf panel.
type SetActivePanel struct {
	PanelID string
}

// ReorderTab moves the tab to Index within its own panel's tab list.
type ReorderTab struct {
	TabID string
	Index int
}

// MoveTab moves the tab into PanelID's list at Index. The source panel
// collapses if the move empties it.
type MoveTab struct {
	TabID   string
	PanelID string
	Index   int
}

// SplitPanel splits the target leaf on the given edge, carving out a new
// sibling leaf that holds only the dragged tab.
type SplitPanel struct {
	TabID   string
	PanelID string
	Edge    Edge
}

func (AddTab) Name() string         { return "ADD_TAB" }
func (CloseTab) Name() string       { return "CLOSE_TAB" }
func (DuplicateTab) Name() string   { return "DUPLICATE_TAB" }
func (RenameTab) Name() string      { return "RENAME_TAB" }
func (LockTab) Name() string        { return "LOCK_TAB" }
func (UnlockTab) Name() string      { return "UNLOCK_TAB" }
func (PinPanel) Name() string       { return "PIN_PANEL" }
func (UnpinPanel) Name() string     { return "UNPIN_PANEL" }
func (SelectTab) Name() string      { return "SELECT_TAB" }
func (SetActivePanel) Name() string { return "SET_ACTIVE_PANEL" }
func (ReorderTab) Name() string     { return "REORDER_TAB" }
func (MoveTab) Name() string        { return "MOVE_TAB" }
func (SplitPanel) Name() string     { return "SPLIT_PANEL" }

func (AddTab) isAction()         {}
func (CloseTab) isAction()       {}
func (DuplicateTab) isAction()   {}
func (RenameTab) isAction()      {}
func (LockTab) isAction()        {}
func (UnlockTab) isAction()      {}
func (PinPanel) isAction()       {}
func (UnpinPanel) isAction()     {}
func (SelectTab) isAction()      {}
func (SetActivePanel) isAction() {}
func (ReorderTab) isAction()     {}
func (MoveTab) isAction()        {}
func (SplitPanel) isAction()     {}
