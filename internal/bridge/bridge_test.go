package bridge

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/internal/workspace"
)

// collector records emissions thread-safely.
type collector struct {
	mu    sync.Mutex
	snaps []*workspace.Workspace
}

func (c *collector) emit(w *workspace.Workspace) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, w)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snaps)
}

func (c *collector) last() *workspace.Workspace {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snaps) == 0 {
		return nil
	}
	return c.snaps[len(c.snaps)-1]
}

func TestScheduleDebouncesBursts(t *testing.T) {
	var c collector
	b := New(Options{Interval: 20 * time.Millisecond, Emit: c.emit})
	defer b.Stop()

	r := workspace.Reducer{}
	w := workspace.New("")
	for i := 0; i < 5; i++ {
		w = r.Apply(w, workspace.AddTab{})
		b.Schedule(w)
	}

	require.Eventually(t, func() bool { return c.count() > 0 },
		500*time.Millisecond, 5*time.Millisecond)
	// One quiet period, one emission, carrying the last state.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, c.count())
	assert.Len(t, c.last().Tabs, 6)
}

func TestScheduleEmitsClone(t *testing.T) {
	var c collector
	b := New(Options{Interval: 5 * time.Millisecond, Emit: c.emit})
	defer b.Stop()

	w := workspace.New("")
	b.Schedule(w)
	w.Tabs[0].Name = "mutated after schedule"

	require.Eventually(t, func() bool { return c.count() > 0 },
		500*time.Millisecond, time.Millisecond)
	assert.Equal(t, workspace.DefaultTabName, c.last().Tabs[0].Name,
		"bridge must snapshot at schedule time")
}

func TestFlushEmitsImmediately(t *testing.T) {
	var c collector
	b := New(Options{Interval: time.Hour, Emit: c.emit})
	defer b.Stop()

	b.Schedule(workspace.New(""))
	require.Equal(t, 0, c.count())
	b.Flush()
	require.Equal(t, 1, c.count())
	// Nothing pending: a second flush is a no-op.
	b.Flush()
	require.Equal(t, 1, c.count())
}

func TestStopCancelsPending(t *testing.T) {
	var c collector
	b := New(Options{Interval: 10 * time.Millisecond, Emit: c.emit})

	b.Schedule(workspace.New(""))
	b.Stop()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, c.count())

	b.Schedule(workspace.New(""))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, c.count(), "stopped bridge must ignore Schedule")
}

func TestAcceptValidUpdate(t *testing.T) {
	b := New(Options{MaxTabs: 10})
	in := workspace.New("home")

	got, err := b.Accept(in)
	require.NoError(t, err)
	require.NotSame(t, in, got, "accepted state must be a defensive clone")
	got.Tabs[0].Name = "x"
	assert.Equal(t, workspace.DefaultTabName, in.Tabs[0].Name)
}

func TestAcceptRejectsInvalidWholesale(t *testing.T) {
	var surfaced error
	b := New(Options{MaxTabs: 10, OnError: func(err error) { surfaced = err }})

	in := workspace.New("")
	in.ActivePanelID = "ghost"
	got, err := b.Accept(in)
	require.Error(t, err)
	assert.Nil(t, got)
	require.IsType(t, &workspace.ValidationError{}, err)
	assert.Same(t, err, surfaced, "rejection must surface through OnError")
}

func TestAcceptJSON(t *testing.T) {
	b := New(Options{MaxTabs: 10})

	valid, err := json.Marshal(workspace.New(""))
	require.NoError(t, err)
	got, err := b.AcceptJSON(valid)
	require.NoError(t, err)
	require.NoError(t, workspace.Validate(got, 10))

	_, err = b.AcceptJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestInitialAdoptsValidPersistedState(t *testing.T) {
	r := workspace.Reducer{}
	persisted := workspace.New("saved-layout")
	persisted = r.Apply(persisted, workspace.AddTab{})

	got := Initial(persisted, "ignored-initial", 10)
	require.Len(t, got.Tabs, 2)
	// Persisted state bypasses initialLayout entirely.
	assert.Equal(t, "saved-layout", got.Tabs[0].LayoutID)
	assert.NotSame(t, persisted, got)
}

func TestInitialFallsBackToFreshWorkspace(t *testing.T) {
	t.Run("no persisted state", func(t *testing.T) {
		got := Initial(nil, "home", 10)
		require.Len(t, got.Tabs, 1)
		assert.Equal(t, "home", got.Tabs[0].LayoutID)
	})
	t.Run("invalid persisted state", func(t *testing.T) {
		bad := workspace.New("")
		bad.Panel = nil
		got := Initial(bad, "home", 10)
		require.NoError(t, workspace.Validate(got, 10))
		assert.Equal(t, "home", got.Tabs[0].LayoutID)
	})
}

func TestInitialJSON(t *testing.T) {
	t.Run("empty bytes", func(t *testing.T) {
		got := InitialJSON(nil, "home", 10, nil)
		assert.Equal(t, "home", got.Tabs[0].LayoutID)
	})
	t.Run("garbage bytes surface the reason", func(t *testing.T) {
		var surfaced error
		got := InitialJSON([]byte("garbage"), "home", 10, func(err error) { surfaced = err })
		require.NoError(t, workspace.Validate(got, 10))
		assert.Error(t, surfaced)
	})
	t.Run("valid bytes adopted", func(t *testing.T) {
		data, err := json.Marshal(workspace.New("saved"))
		require.NoError(t, err)
		got := InitialJSON(data, "ignored", 10, nil)
		assert.Equal(t, "saved", got.Tabs[0].LayoutID)
	})
}
