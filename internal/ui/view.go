package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prism/internal/dnd"
	"prism/internal/workspace"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 1 {
		return "starting…"
	}
	w := m.store.Current()
	area := dnd.Rect{X: 0, Y: 0, W: m.width, H: m.height - 1}
	return m.renderPanel(w, w.Panel, area) + "\n" + m.statusLine()
}

// renderPanel walks the tree with the same partitioning as panelRects, so
// what is drawn matches the frame the controller hit-tests.
func (m *Model) renderPanel(w *workspace.Workspace, p *workspace.Panel, r dnd.Rect) string {
	if p == nil || r.Empty() {
		return ""
	}
	if p.IsLeaf() {
		return m.renderTabBar(w, p, r) + "\n" + m.renderBody(w, p, r)
	}

	n := len(p.Children)
	parts := make([]string, 0, n)
	if p.Direction == workspace.DirectionHorizontal {
		x := r.X
		for i, child := range p.Children {
			cw := r.W / n
			if i == n-1 {
				cw = r.X + r.W - x
			}
			parts = append(parts, m.renderPanel(w, child, dnd.Rect{X: x, Y: r.Y, W: cw, H: r.H}))
			x += cw
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	y := r.Y
	for i, child := range p.Children {
		ch := r.H / n
		if i == n-1 {
			ch = r.Y + r.H - y
		}
		parts = append(parts, m.renderPanel(w, child, dnd.Rect{X: r.X, Y: y, W: r.W, H: ch}))
		y += ch
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTabBar draws one leaf's tab strip. Label text comes from tabLabel,
// the same string buildFrame measures; styles only recolor it.
func (m *Model) renderTabBar(w *workspace.Workspace, leaf *workspace.Panel, r dnd.Rect) string {
	var b strings.Builder
	used := 0
	activeTab := w.ActiveTabIDs[leaf.ID]
	dragged := m.controller.Dragged()

	for _, tabID := range w.PanelTabs[leaf.ID] {
		tab := w.Tab(tabID)
		if tab == nil {
			continue
		}
		label := tabLabel(tab)
		width := len([]rune(label))
		if used+width > r.W {
			break
		}
		style := Styles.TabNormal
		switch {
		case m.controller.State() != dnd.StateIdle && tabID == dragged.TabID:
			style = Styles.TabDragged
		case tabID == activeTab && leaf.ID == w.ActivePanelID:
			style = Styles.TabActive
		case tabID == activeTab:
			style = Styles.TabSelected
		}
		b.WriteString(style.Render(label))
		used += width
	}

	fill := r.W - used
	if fill > 0 {
		marker := ""
		if leaf.Pinned && fill >= len(" pinned ") {
			marker = " pinned "
		}
		pad := strings.Repeat("─", fill-len(marker)) + marker
		fillStyle := Styles.TabBarFill
		if intent := m.controller.Intent(); intent.Valid() && intent.PanelID == leaf.ID {
			fillStyle = Styles.DropTarget
		}
		b.WriteString(fillStyle.Render(pad))
	}
	return b.String()
}

// renderBody draws one leaf's content area: the active tab's resolved
// content, or a placeholder for unbound and pending tabs.
func (m *Model) renderBody(w *workspace.Workspace, leaf *workspace.Panel, r dnd.Rect) string {
	h := r.H - tabBarHeight
	if h <= 0 {
		return ""
	}
	var text string
	if tab := w.Tab(w.ActiveTabIDs[leaf.ID]); tab != nil {
		if content, ok := m.cache.Get(tab.ID); ok {
			if content.Title != "" {
				text = Styles.BodyTitle.Render(content.Title) + "\n"
			}
			text += content.Body
		} else if tab.LayoutID != "" {
			text = Styles.Hint.Render("resolving " + tab.LayoutID + "…")
		} else {
			text = Styles.Hint.Render("empty tab")
		}
	}
	return Styles.Body.
		Width(r.W).Height(h).
		MaxWidth(r.W).MaxHeight(h).
		Render(text)
}

// statusLine is the bottom row: rename input, leader hints, or a summary of
// the workspace plus any drag intent and the last rejected sync.
func (m *Model) statusLine() string {
	if m.mode == ModeRename {
		return m.rename.View()
	}
	if m.keyHandler.LeaderWaiting {
		return RenderKeybindHelp(m.keyHandler, m.mode)
	}

	w := m.store.Current()
	parts := []string{
		fmt.Sprintf("%d tabs", len(w.Tabs)),
		fmt.Sprintf("%d panels", len(w.Leaves())),
	}
	if m.store.AtCapacity() {
		parts = append(parts, "at capacity")
	}
	if label := m.intentLabel(); label != "" {
		parts = append(parts, label)
	}
	line := Styles.StatusBar.Render(strings.Join(parts, " · ") + " · SPC for commands")
	if m.lastErr != "" {
		line += Styles.StatusError.Render("  " + m.lastErr)
	}
	return line
}

// intentLabel describes the live drop outcome while a drag is underway.
func (m *Model) intentLabel() string {
	if m.controller.State() != dnd.StateDragging {
		return ""
	}
	intent := m.controller.Intent()
	switch intent.Kind {
	case dnd.IntentReorder:
		return fmt.Sprintf("drop: reorder to slot %d", intent.Index)
	case dnd.IntentMove:
		return fmt.Sprintf("drop: move to slot %d", intent.Index)
	case dnd.IntentSplit:
		return fmt.Sprintf("drop: split %s", intent.Edge)
	default:
		return "drop: nothing (release to cancel, esc to abort)"
	}
}

// SetSyncError surfaces a rejected inbound update on the status line. The
// bridge's OnError callback feeds this.
func (m *Model) SetSyncError(err error) {
	if err == nil {
		m.lastErr = ""
		return
	}
	m.lastErr = err.Error()
}
