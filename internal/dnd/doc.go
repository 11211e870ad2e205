// Package dnd translates pointer gestures into workspace actions.
//
// The Controller is an explicit state machine (idle/armed/dragging) fed by
// pointer-down/move/up events plus a host-measured geometry Frame. Every
// move recomputes a drop Intent as a pure function of the last committed
// workspace and the pointer position; pointer-up emits at most one reducer
// action. Canceling (Escape, or releasing with no valid target) emits
// nothing, so a canceled drag is a true no-op.
package dnd
