package ui

// View represents the current active view
type View int

const (
	ViewProjects View = iota
	ViewBoard
	ViewPlanner
	ViewFocus
	ViewProgress
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewProjects:
		return "Projects"
	case ViewBoard:
		return "Board"
	case ViewPlanner:
		return "Planner"
	case ViewFocus:
		return "Focus"
	case ViewProgress:
		return "Progress"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
