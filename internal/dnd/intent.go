package dnd

import "prism/internal/workspace"

// IntentKind classifies what a pointer-up would commit.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentReorder
	IntentMove
	IntentSplit
)

func (k IntentKind) String() string {
	switch k {
	case IntentReorder:
		return "reorder"
	case IntentMove:
		return "move"
	case IntentSplit:
		return "split"
	default:
		return "none"
	}
}

// Intent is the controller's live guess at the drop outcome, recomputed on
// every pointer move from the committed workspace plus the current frame.
// It holds only ids and indices, never workspace state.
type Intent struct {
	Kind    IntentKind
	TabID   string
	PanelID string
	Index   int
	Edge    workspace.Edge
}

// Valid reports whether a pointer-up here would commit an action.
func (i Intent) Valid() bool {
	return i.Kind != IntentNone
}

// Action returns the single reducer action this intent commits to, or nil.
func (i Intent) Action() workspace.Action {
	switch i.Kind {
	case IntentReorder:
		return workspace.ReorderTab{TabID: i.TabID, Index: i.Index}
	case IntentMove:
		return workspace.MoveTab{TabID: i.TabID, PanelID: i.PanelID, Index: i.Index}
	case IntentSplit:
		return workspace.SplitPanel{TabID: i.TabID, PanelID: i.PanelID, Edge: i.Edge}
	default:
		return nil
	}
}

// computeIntent derives the drop intent for the dragged tab at pointer p.
// Pure: reads the workspace and frame, writes nothing.
func computeIntent(w *workspace.Workspace, f Frame, dragged TabBox, p Point) Intent {
	if w == nil || w.SingleTabMode() {
		return Intent{}
	}
	tab := w.Tab(dragged.TabID)
	if tab == nil || tab.Locked {
		return Intent{}
	}

	if hovered, ok := f.TabAt(p); ok {
		if hovered.PanelID == tab.PanelID {
			if hovered.TabID == tab.ID {
				// Hovering the dragged tab itself highlights nothing.
				return Intent{}
			}
			return Intent{
				Kind:    IntentReorder,
				TabID:   tab.ID,
				PanelID: hovered.PanelID,
				Index:   reorderIndex(w, tab, hovered, p),
			}
		}
		return Intent{
			Kind:    IntentMove,
			TabID:   tab.ID,
			PanelID: hovered.PanelID,
			Index:   moveIndex(hovered, p),
		}
	}

	pb, ok := f.PanelAt(p)
	if !ok {
		return Intent{}
	}
	target := w.FindPanel(pb.PanelID)
	if target == nil || !target.IsLeaf() {
		return Intent{}
	}

	// Pinned panels compute no split zones of their own; their whole area
	// behaves like the center. A panel whose only tab is the dragged one
	// has nothing left to split either.
	if !target.Pinned {
		soleTab := tab.PanelID == target.ID && len(w.PanelTabs[target.ID]) == 1
		if edge := edgeAt(pb.Rect, p); edge != "" && !soleTab {
			return Intent{
				Kind:    IntentSplit,
				TabID:   tab.ID,
				PanelID: target.ID,
				Edge:    edge,
			}
		}
	}

	if target.ID != tab.PanelID {
		// Empty area of another panel: append. Pinned panels stay valid
		// move targets; pinning only blocks splitting.
		return Intent{
			Kind:    IntentMove,
			TabID:   tab.ID,
			PanelID: target.ID,
			Index:   len(w.PanelTabs[target.ID]),
		}
	}
	return Intent{}
}

// reorderIndex maps a hover over a same-panel tab to a target index, biased
// by which half of the hovered header the cursor is in.
func reorderIndex(w *workspace.Workspace, tab *workspace.Tab, hovered TabBox, p Point) int {
	idx := hovered.Index
	if pastMid(hovered.Rect, p) {
		idx++
	}
	// Account for the dragged tab vacating its slot.
	from := indexIn(w.PanelTabs[tab.PanelID], tab.ID)
	if from >= 0 && from < idx {
		idx--
	}
	return idx
}

// moveIndex maps a hover over a cross-panel tab to an insertion index.
func moveIndex(hovered TabBox, p Point) int {
	if pastMid(hovered.Rect, p) {
		return hovered.Index + 1
	}
	return hovered.Index
}

// pastMid reports whether p is in the trailing half of a tab header rect.
// Tab strips run horizontally, so the split is on x.
func pastMid(r Rect, p Point) bool {
	return p.X >= r.X+(r.W+1)/2
}

func indexIn(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}
