// Package workspace holds the multi-panel, multi-tab workspace state machine.
//
// Core pieces:
//   - Workspace/Panel/Tab: the data model (tree of panels by id plus flat
//     lookup maps, no back-pointers)
//   - Validate: structural invariant checks for inbound state
//   - Action: closed set of state transitions, one type per operation
//   - Reducer: pure (workspace, action) -> workspace transition function
//   - split/collapse: the panel tree algebra behind SPLIT_PANEL and tab removal
//
// The reducer never mutates its input and never returns an invalid workspace;
// actions that violate a precondition are silent no-ops returning the input
// unchanged.
package workspace
