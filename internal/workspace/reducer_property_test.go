package workspace

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomAction draws one action referencing (mostly) live ids. A slice of
// draws also produce dangling ids on purpose: malformed actions must be
// silent no-ops, never corruption.
func randomAction(rng *rand.Rand, w *Workspace) Action {
	tabID := "ghost-tab"
	if len(w.Tabs) > 0 && rng.Intn(10) != 0 {
		tabID = w.Tabs[rng.Intn(len(w.Tabs))].ID
	}
	leaves := w.Leaves()
	panelID := "ghost-panel"
	if len(leaves) > 0 && rng.Intn(10) != 0 {
		panelID = leaves[rng.Intn(len(leaves))].ID
	}
	edges := []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

	switch rng.Intn(13) {
	case 0:
		return AddTab{}
	case 1:
		return CloseTab{TabID: tabID}
	case 2:
		return DuplicateTab{TabID: tabID}
	case 3:
		names := []string{"Metrics", "Logs", "", "  ", "Traces"}
		return RenameTab{TabID: tabID, NewName: names[rng.Intn(len(names))]}
	case 4:
		return LockTab{TabID: tabID}
	case 5:
		return UnlockTab{TabID: tabID}
	case 6:
		return PinPanel{PanelID: panelID}
	case 7:
		return UnpinPanel{PanelID: panelID}
	case 8:
		return SelectTab{TabID: tabID}
	case 9:
		return SetActivePanel{PanelID: panelID}
	case 10:
		return ReorderTab{TabID: tabID, Index: rng.Intn(8) - 1}
	case 11:
		return MoveTab{TabID: tabID, PanelID: panelID, Index: rng.Intn(8) - 1}
	default:
		return SplitPanel{TabID: tabID, PanelID: panelID, Edge: edges[rng.Intn(len(edges))]}
	}
}

func TestInvariantsHoldUnderRandomActionSequences(t *testing.T) {
	const (
		seed    = 20260824
		rounds  = 50
		steps   = 400
		maxTabs = 12
	)
	rng := rand.New(rand.NewSource(seed))
	r := Reducer{MaxTabs: maxTabs}

	for round := 0; round < rounds; round++ {
		w := New("home")
		for step := 0; step < steps; step++ {
			action := randomAction(rng, w)
			prev, err := json.Marshal(w)
			require.NoError(t, err)

			next := r.Apply(w, action)

			// The input workspace is never mutated.
			after, err := json.Marshal(w)
			require.NoError(t, err)
			require.Equal(t, string(prev), string(after),
				"round %d step %d: %s mutated its input", round, step, action.Name())

			require.NoError(t, Validate(next, maxTabs),
				"round %d step %d: %s broke an invariant", round, step, action.Name())
			require.NotEmpty(t, next.Tabs,
				"round %d step %d: workspace went tab-less", round, step)
			w = next
		}
	}
}

func TestSplitNeverChangesTabCount(t *testing.T) {
	const seed = 7
	rng := rand.New(rand.NewSource(seed))
	r := Reducer{}
	edges := []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

	w := New("")
	for i := 0; i < 6; i++ {
		w = r.Apply(w, AddTab{})
	}
	for i := 0; i < 200; i++ {
		tab := w.Tabs[rng.Intn(len(w.Tabs))]
		leaves := w.Leaves()
		target := leaves[rng.Intn(len(leaves))]
		before := len(w.Tabs)
		w = r.Apply(w, SplitPanel{TabID: tab.ID, PanelID: target.ID, Edge: edges[rng.Intn(4)]})
		require.Len(t, w.Tabs, before, "split changed tab count")
		require.NoError(t, Validate(w, 0))
	}
}
