package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"prism/internal/dnd"
	"prism/internal/layouts"
	"prism/internal/store"
	"prism/internal/workspace"
)

// Command messages emitted by keybinds. Each resolves its target ids against
// the committed workspace at handling time, not at bind time.
type (
	addTabMsg       struct{}
	closeTabMsg     struct{}
	duplicateTabMsg struct{}
	beginRenameMsg  struct{}
	toggleLockMsg   struct{}
	togglePinMsg    struct{}
	cyclePanelMsg   struct{}
	reorderMsg      struct{ delta int }
	splitMsg        struct{ edge workspace.Edge }
)

// contentMsg carries one provider resolution back to the model.
type contentMsg struct {
	tabID   string
	content layouts.Content
	err     error
}

// Model is the root Bubble Tea model. It owns the committed workspace (via
// the store), the drag controller, and the measured frame the controller
// hit-tests against. Rendering and measurement share one code path so the
// frame never drifts from what is on screen.
type Model struct {
	store      *store.Store
	registry   *layouts.Registry
	cache      *layouts.Resolutions
	controller *dnd.Controller
	keyHandler *KeyHandler
	logger     *log.Logger

	mode      AppMode
	rename    textinput.Model
	renameTab string

	width  int
	height int
	rects  map[string]dnd.Rect
	frame  dnd.Frame

	lastErr string
}

// New creates the demo host model over a store and provider registry.
func New(st *store.Store, registry *layouts.Registry, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	controller := dnd.NewController()
	controller.SetThreshold(1) // cell units

	rename := textinput.New()
	rename.Prompt = "rename: "
	rename.CharLimit = 64

	m := &Model{
		store:      st,
		registry:   registry,
		cache:      layouts.NewResolutions(),
		controller: controller,
		logger:     logger,
		rename:     rename,
	}
	m.keyHandler = NewKeyHandler(m.keybinds())
	return m
}

func (m *Model) keybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.BindWithDesc("SPC t n", send(addTabMsg{}), "New tab")
	reg.BindWithDesc("SPC t w", send(closeTabMsg{}), "Close tab")
	reg.BindWithDesc("SPC t d", send(duplicateTabMsg{}), "Duplicate tab")
	reg.BindWithDesc("SPC t r", send(beginRenameMsg{}), "Rename tab")
	reg.BindWithDesc("SPC t l", send(toggleLockMsg{}), "Lock/unlock tab")

	reg.BindWithDesc("SPC p p", send(togglePinMsg{}), "Pin/unpin panel")
	reg.BindWithDesc("SPC p h", send(splitMsg{edge: workspace.EdgeLeft}), "Split left")
	reg.BindWithDesc("SPC p j", send(splitMsg{edge: workspace.EdgeBottom}), "Split down")
	reg.BindWithDesc("SPC p k", send(splitMsg{edge: workspace.EdgeTop}), "Split up")
	reg.BindWithDesc("SPC p l", send(splitMsg{edge: workspace.EdgeRight}), "Split right")

	reg.BindWithDesc("tab", send(cyclePanelMsg{}), "Next panel")
	reg.BindWithDesc("[", send(reorderMsg{delta: -1}), "Tab left")
	reg.BindWithDesc("]", send(reorderMsg{delta: 1}), "Tab right")
	return reg
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.resolveMissing()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.mode == ModeRename {
			return m, m.handleRenameKey(msg)
		}
		if msg.String() == "esc" && m.controller.State() != dnd.StateIdle {
			m.controller.Cancel()
			return m, nil
		}
		if consumed, cmd := m.keyHandler.Handle(msg); consumed {
			return m, cmd
		}
		return m, nil

	case contentMsg:
		if msg.err != nil {
			m.logger.Warn("layout resolution failed", "tab", msg.tabID, "err", msg.err)
			m.cache.Set(msg.tabID, layouts.Content{Body: msg.err.Error()})
			return m, nil
		}
		m.cache.Set(msg.tabID, msg.content)
		return m, nil

	case addTabMsg:
		return m, m.dispatch(workspace.AddTab{})
	case closeTabMsg:
		return m, m.dispatch(workspace.CloseTab{TabID: m.activeTabID()})
	case duplicateTabMsg:
		return m, m.dispatch(workspace.DuplicateTab{TabID: m.activeTabID()})
	case toggleLockMsg:
		w := m.store.Current()
		if tab := w.Tab(m.activeTabID()); tab != nil {
			if tab.Locked {
				return m, m.dispatch(workspace.UnlockTab{TabID: tab.ID})
			}
			return m, m.dispatch(workspace.LockTab{TabID: tab.ID})
		}
		return m, nil
	case togglePinMsg:
		w := m.store.Current()
		if p := w.FindPanel(w.ActivePanelID); p != nil {
			if p.Pinned {
				return m, m.dispatch(workspace.UnpinPanel{PanelID: p.ID})
			}
			return m, m.dispatch(workspace.PinPanel{PanelID: p.ID})
		}
		return m, nil
	case cyclePanelMsg:
		return m, m.dispatch(workspace.SetActivePanel{PanelID: m.nextPanelID()})
	case reorderMsg:
		w := m.store.Current()
		tabID := m.activeTabID()
		slots := w.PanelTabs[w.ActivePanelID]
		for i, id := range slots {
			if id == tabID {
				return m, m.dispatch(workspace.ReorderTab{TabID: tabID, Index: i + msg.delta})
			}
		}
		return m, nil
	case splitMsg:
		w := m.store.Current()
		return m, m.dispatch(workspace.SplitPanel{
			TabID:   m.activeTabID(),
			PanelID: w.ActivePanelID,
			Edge:    msg.edge,
		})
	case beginRenameMsg:
		tab := m.store.Current().Tab(m.activeTabID())
		if tab == nil {
			return m, nil
		}
		m.mode = ModeRename
		m.renameTab = tab.ID
		m.rename.SetValue(tab.Name)
		m.rename.CursorEnd()
		return m, m.rename.Focus()
	}
	return m, nil
}

// dispatch applies one action and refreshes geometry and content caches if
// the workspace changed.
func (m *Model) dispatch(action workspace.Action) tea.Cmd {
	if action == nil {
		return nil
	}
	if !m.store.Dispatch(context.Background(), action) {
		return nil
	}
	m.layout()
	m.pruneCache()
	return m.resolveMissing()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := dnd.Point{X: msg.X, Y: msg.Y}
	w := m.store.Current()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.controller.PointerDown(w, m.frame, p)
		}
	case tea.MouseActionMotion:
		m.controller.PointerMove(w, m.frame, p)
	case tea.MouseActionRelease:
		if action := m.controller.PointerUp(w, m.frame, p); action != nil {
			return m.dispatch(action)
		}
	}
	return nil
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		name := m.rename.Value()
		tabID := m.renameTab
		m.endRename()
		return m.dispatch(workspace.RenameTab{TabID: tabID, NewName: name})
	case "esc":
		m.endRename()
		return nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return cmd
}

func (m *Model) endRename() {
	m.mode = ModeBrowse
	m.renameTab = ""
	m.rename.Blur()
}

// layout recomputes per-leaf rects and the hit-test frame for the current
// size and workspace. The bottom row is reserved for the status line.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 1 {
		m.rects = nil
		m.frame = dnd.Frame{}
		return
	}
	w := m.store.Current()
	area := dnd.Rect{X: 0, Y: 0, W: m.width, H: m.height - 1}
	m.rects = panelRects(w.Panel, area)
	m.frame = buildFrame(w, m.rects)
}

// pruneCache drops cached content for tabs that no longer exist.
func (m *Model) pruneCache() {
	live := make(map[string]bool)
	for _, t := range m.store.Current().Tabs {
		live[t.ID] = true
	}
	m.cache.Prune(live)
}

// resolveMissing returns commands resolving content for every tab that has a
// layout binding but no cached result yet.
func (m *Model) resolveMissing() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.store.Current().Tabs {
		if t.LayoutID == "" {
			continue
		}
		if _, ok := m.cache.Get(t.ID); ok {
			continue
		}
		req := layouts.Request{
			TabID:    t.ID,
			LayoutID: t.LayoutID,
			Params:   layouts.Params(t.LayoutParams),
			Option:   t.LayoutOption,
		}
		cmds = append(cmds, func() tea.Msg {
			content, err := m.registry.Resolve(context.Background(), req)
			return contentMsg{tabID: req.TabID, content: content, err: err}
		})
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeTabID() string {
	w := m.store.Current()
	return w.ActiveTabIDs[w.ActivePanelID]
}

func (m *Model) nextPanelID() string {
	w := m.store.Current()
	leaves := w.Leaves()
	for i, leaf := range leaves {
		if leaf.ID == w.ActivePanelID {
			return leaves[(i+1)%len(leaves)].ID
		}
	}
	if len(leaves) > 0 {
		return leaves[0].ID
	}
	return ""
}
