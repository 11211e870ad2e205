// Package ui is the terminal demo host for the workspace engine.
//
// Core pieces:
//   - Model: the root Bubble Tea model owning the store, bridge, and drag controller
//   - layout: partitions the screen into per-leaf rects mirroring the panel tree
//   - frame: the measured tab/panel geometry handed to the drag controller
//   - KeybindRegistry/KeyHandler: leader-key (SPC) command dispatch
//
// The workspace core never renders; everything visual lives here.
package ui
