package ui

import (
	"prism/internal/dnd"
	"prism/internal/workspace"
)

// tabBarHeight is the rows each leaf panel spends on its tab strip.
const tabBarHeight = 1

// panelRects partitions area across the panel tree, splitting evenly among a
// container's children along its direction. Remainder cells go to the last
// child so siblings always tile the area exactly.
func panelRects(p *workspace.Panel, area dnd.Rect) map[string]dnd.Rect {
	out := make(map[string]dnd.Rect)
	fillRects(p, area, out)
	return out
}

func fillRects(p *workspace.Panel, area dnd.Rect, out map[string]dnd.Rect) {
	if p == nil {
		return
	}
	if p.IsLeaf() {
		out[p.ID] = area
		return
	}
	n := len(p.Children)
	if p.Direction == workspace.DirectionHorizontal {
		x := area.X
		for i, child := range p.Children {
			w := area.W / n
			if i == n-1 {
				w = area.X + area.W - x
			}
			fillRects(child, dnd.Rect{X: x, Y: area.Y, W: w, H: area.H}, out)
			x += w
		}
		return
	}
	y := area.Y
	for i, child := range p.Children {
		h := area.H / n
		if i == n-1 {
			h = area.Y + area.H - y
		}
		fillRects(child, dnd.Rect{X: area.X, Y: y, W: area.W, H: h}, out)
		y += h
	}
}

// tabLabel is the unstyled header text for a tab. Both rendering and hit
// testing measure this exact string, so styles applied later must not
// change its width.
func tabLabel(t *workspace.Tab) string {
	name := t.Name
	if t.Locked {
		name += "*"
	}
	return " " + name + " "
}

// buildFrame measures the tab and panel geometry the drag controller
// hit-tests against. Tab headers sit in each leaf's top row; headers that
// would overflow the leaf's width are clipped out of the frame entirely so
// an invisible tab is never a drop target.
func buildFrame(w *workspace.Workspace, rects map[string]dnd.Rect) dnd.Frame {
	var f dnd.Frame
	for _, leaf := range w.Leaves() {
		r, ok := rects[leaf.ID]
		if !ok || r.Empty() {
			continue
		}
		x := r.X
		for i, tabID := range w.PanelTabs[leaf.ID] {
			tab := w.Tab(tabID)
			if tab == nil {
				continue
			}
			width := len([]rune(tabLabel(tab)))
			if x+width > r.X+r.W {
				break
			}
			f.Tabs = append(f.Tabs, dnd.TabBox{
				TabID:   tabID,
				PanelID: leaf.ID,
				Index:   i,
				Rect:    dnd.Rect{X: x, Y: r.Y, W: width, H: tabBarHeight},
			})
			x += width
		}
		f.Panels = append(f.Panels, dnd.PanelBox{
			PanelID: leaf.ID,
			Rect: dnd.Rect{
				X: r.X,
				Y: r.Y + tabBarHeight,
				W: r.W,
				H: r.H - tabBarHeight,
			},
		})
	}
	return f
}
