package dnd

import "prism/internal/workspace"

// State is the gesture phase. Transitions:
//
//	idle -> armed      pointer-down on an unlocked tab header
//	armed -> dragging  movement exceeds the activation threshold
//	armed -> idle      pointer-up below threshold (a plain click)
//	dragging -> idle   pointer-up (commit or cancel) or Escape
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DefaultThreshold is the activation distance in host units. Below it a
// press-and-release is a click, so short jitters never start a drag.
const DefaultThreshold = 4

// Controller turns low-level pointer events into at most one reducer action
// per gesture. It holds no copy of the workspace: intent is recomputed
// read-only against the last committed state on every move, which makes
// cancellation free.
type Controller struct {
	state     State
	threshold int
	origin    Point
	dragged   TabBox
	intent    Intent
}

// NewController creates an idle controller with the default threshold.
func NewController() *Controller {
	return &Controller{threshold: DefaultThreshold}
}

// SetThreshold overrides the activation distance. Values below 1 are
// clamped to 1 (cell-based hosts want 1).
func (c *Controller) SetThreshold(units int) {
	if units < 1 {
		units = 1
	}
	c.threshold = units
}

// State returns the current gesture phase.
func (c *Controller) State() State {
	return c.state
}

// Intent returns the last computed drop intent, for highlight rendering.
func (c *Controller) Intent() Intent {
	return c.intent
}

// Dragged returns the tab box the gesture started on. Only meaningful
// while armed or dragging.
func (c *Controller) Dragged() TabBox {
	return c.dragged
}

// PointerDown arms the controller when p hits an unlocked tab's header.
// Locked tabs never arm: their drag handle is inert.
func (c *Controller) PointerDown(w *workspace.Workspace, f Frame, p Point) {
	c.reset()
	if w == nil {
		return
	}
	tb, ok := f.TabAt(p)
	if !ok {
		return
	}
	tab := w.Tab(tb.TabID)
	if tab == nil || tab.Locked {
		return
	}
	c.state = StateArmed
	c.origin = p
	c.dragged = tb
}

// PointerMove advances armed to dragging past the threshold and, while
// dragging, recomputes the drop intent for the current position.
func (c *Controller) PointerMove(w *workspace.Workspace, f Frame, p Point) Intent {
	switch c.state {
	case StateArmed:
		dx, dy := p.X-c.origin.X, p.Y-c.origin.Y
		if dx*dx+dy*dy < c.threshold*c.threshold {
			return Intent{}
		}
		c.state = StateDragging
		fallthrough
	case StateDragging:
		c.intent = computeIntent(w, f, c.dragged, p)
		return c.intent
	default:
		return Intent{}
	}
}

// PointerUp ends the gesture. While dragging with a valid intent it returns
// the single committing action; a below-threshold release returns a
// SelectTab so plain clicks still select. Otherwise nil: the gesture was a
// cancel and the workspace is untouched.
func (c *Controller) PointerUp(w *workspace.Workspace, f Frame, p Point) workspace.Action {
	defer c.reset()
	switch c.state {
	case StateArmed:
		return workspace.SelectTab{TabID: c.dragged.TabID}
	case StateDragging:
		intent := computeIntent(w, f, c.dragged, p)
		if !intent.Valid() {
			return nil
		}
		return intent.Action()
	default:
		return nil
	}
}

// Cancel aborts the gesture (Escape). No action is ever emitted.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.dragged = TabBox{}
	c.intent = Intent{}
}
