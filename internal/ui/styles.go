package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, active markers
	ColorHighlight = "205" // Magenta - for selected items, drop targets
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for inactive panel chrome
)

// Styles contains shared style definitions used across the tab bars, panel
// bodies, and the status line. Tab styles must never change rendered width:
// the drag controller hit-tests against widths measured from the raw labels.
var Styles = struct {
	TabActive    lipgloss.Style // active tab in the focused panel
	TabSelected  lipgloss.Style // active tab in an unfocused panel
	TabNormal    lipgloss.Style // everything else in the strip
	TabDragged   lipgloss.Style // the tab currently being dragged
	TabBarFill   lipgloss.Style // strip padding to the panel's right edge
	DropTarget   lipgloss.Style // tab bar of the panel a drop would land in
	Body         lipgloss.Style // panel content area
	BodyTitle    lipgloss.Style // resolved content title
	StatusBar    lipgloss.Style // bottom status line
	StatusError  lipgloss.Style // error segment of the status line
	Hint         lipgloss.Style // help/hint text
	LeaderKey    lipgloss.Style // key part of leader hints
	LeaderDesc   lipgloss.Style // description part of leader hints
	LeaderPrefix lipgloss.Style // current leader sequence label
}{
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Reverse(true),
	TabSelected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TabNormal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabDragged: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	TabBarFill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	DropTarget: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	BodyTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	LeaderKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	LeaderDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	LeaderPrefix: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
