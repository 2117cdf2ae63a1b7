package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewAssignments
	ViewExams
	ViewCourses
	ViewMaterials
	ViewNotebooks
	ViewSchedule
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // page title shown in the header
}

// pageOrder maps the number keys 1-7 to pages.
var pageOrder = []ViewID{
	ViewDashboard,
	ViewAssignments,
	ViewExams,
	ViewCourses,
	ViewMaterials,
	ViewNotebooks,
	ViewSchedule,
}
