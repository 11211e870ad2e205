package dnd

import "prism/internal/workspace"

// Point is a pointer position in host units (pixels or terminal cells).
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned box. W/H of zero means empty.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p falls inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TabBox is the measured bounds of one tab header, tagged with its identity
// and display index. The host rebuilds these after every render.
type TabBox struct {
	TabID   string
	PanelID string
	Index   int
	Rect    Rect
}

// PanelBox is the measured content bounds of one leaf panel.
type PanelBox struct {
	PanelID string
	Rect    Rect
}

// Frame is the host-measured geometry the controller hit-tests against.
// The core never computes layout itself; it only consumes these rects.
type Frame struct {
	Tabs   []TabBox
	Panels []PanelBox
}

// TabAt returns the tab header under p, if any.
func (f Frame) TabAt(p Point) (TabBox, bool) {
	for _, tb := range f.Tabs {
		if tb.Rect.Contains(p) {
			return tb, true
		}
	}
	return TabBox{}, false
}

// PanelAt returns the leaf panel under p, if any.
func (f Frame) PanelAt(p Point) (PanelBox, bool) {
	for _, pb := range f.Panels {
		if pb.Rect.Contains(p) {
			return pb, true
		}
	}
	return PanelBox{}, false
}

// edgeZoneFraction is the share of a panel's content rect, measured from
// each side, that counts as a split drop zone.
const edgeZoneFraction = 0.25

// edgeAt returns which split zone of the panel rect p falls in, or "" for
// the center. When p sits in two zones (a corner), the nearer edge wins.
func edgeAt(r Rect, p Point) workspace.Edge {
	if r.Empty() || !r.Contains(p) {
		return ""
	}
	fx := float64(p.X-r.X) / float64(r.W)
	fy := float64(p.Y-r.Y) / float64(r.H)

	var edge workspace.Edge
	best := edgeZoneFraction
	if fx < best {
		edge, best = workspace.EdgeLeft, fx
	}
	if d := 1 - fx; d < best {
		edge, best = workspace.EdgeRight, d
	}
	if fy < best {
		edge, best = workspace.EdgeTop, fy
	}
	if d := 1 - fy; d < best {
		edge = workspace.EdgeBottom
	}
	return edge
}
