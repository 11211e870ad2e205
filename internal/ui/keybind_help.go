package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// RenderKeybindHelp produces the transient help line shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by mode.
// When the handler is mid-sequence (e.g. "SPC t"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.LeaderKey
	helpModel.Styles.ShortDesc = Styles.LeaderDesc
	helpModel.Styles.ShortSeparator = Styles.LeaderDesc

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return Styles.LeaderPrefix.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
}
