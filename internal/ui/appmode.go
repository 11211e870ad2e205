package ui

// AppMode represents the top-level input mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeRename
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeRename:
		return "Rename"
	default:
		return "Unknown"
	}
}
