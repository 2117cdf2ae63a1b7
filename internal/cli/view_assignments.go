package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/derive"
	"github.com/omripeer/studydeck/internal/domain"
	"github.com/omripeer/studydeck/internal/undo"
)

// assignmentsLoadedMsg signals that assignment data has been loaded.
type assignmentsLoadedMsg struct {
	assignments []domain.Assignment
	err         error
}

// assignmentsView lists pending assignments with hide/undo, plus an
// optional grades panel.
type assignmentsView struct {
	state   *SharedState
	loading bool
	err     error

	assignments []domain.Assignment
	pending     []domain.Assignment
	cursor      int
}

func newAssignmentsView(state *SharedState) *assignmentsView {
	return &assignmentsView{state: state, loading: true}
}

func (v *assignmentsView) ID() ViewID { return ViewAssignments }

func (v *assignmentsView) Title() string { return v.state.App.I18n.T().Assignments }

func (v *assignmentsView) ShortHelp() []key.Binding {
	cat := v.state.App.I18n.T()
	gradesHelp := cat.ShowGrades
	if v.state.App.Prefs.ShowGrades() {
		gradesHelp = cat.HideGrades
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", cat.Hide)),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", cat.Undo)),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", cat.Dismiss)),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", gradesHelp)),
	}
}

func (v *assignmentsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *assignmentsView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		assignments, err := q.Assignments.Get(context.Background())
		return assignmentsLoadedMsg{assignments: assignments, err: err}
	}
}

func (v *assignmentsView) recompute() {
	v.pending = derive.Pending(v.assignments, v.state.App.Prefs.HiddenAssignments().Snapshot())
	if v.cursor >= len(v.pending) {
		v.cursor = max(0, len(v.pending)-1)
	}
}

func (v *assignmentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assignmentsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.assignments = msg.assignments
		v.recompute()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.pending)-1 {
				v.cursor++
			}
		case "h":
			return v, v.hideSelected()
		case "u":
			if err := v.state.App.Undo.Undo(undo.AssignmentHidden); err != nil {
				return v, statusLine(formatter.StyleRed.Render(err.Error()))
			}
			v.recompute()
		case "x":
			v.state.App.Undo.Dismiss(undo.AssignmentHidden)
		case "g":
			prefs := v.state.App.Prefs
			if err := prefs.SetShowGrades(!prefs.ShowGrades()); err != nil {
				return v, statusLine(formatter.StyleRed.Render(err.Error()))
			}
		}
	}

	return v, nil
}

// hideSelected hides the selected assignment and opens an undo window.
func (v *assignmentsView) hideSelected() tea.Cmd {
	if v.cursor >= len(v.pending) {
		return nil
	}
	a := v.pending[v.cursor]
	app := v.state.App
	hidden := app.Prefs.HiddenAssignments()

	if err := hidden.Add(a.ID); err != nil {
		return statusLine(formatter.StyleRed.Render(err.Error()))
	}
	v.recompute()

	id := a.ID
	notice := app.Undo.Trigger(undo.AssignmentHidden, id,
		app.I18n.T().AssignmentHidden+": "+a.Name,
		func() error { return hidden.Remove(id) },
	)
	return scheduleUndoExpiry(notice)
}

func (v *assignmentsView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.err != nil {
		return "\n  " + errorLine(cat, v.err)
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(cat.PendingAssignments) + "\n")

	if notice, ok := v.state.App.Undo.Pending(undo.AssignmentHidden); ok {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.StyleYellow.Render(notice.Label),
			formatter.Dim("(u: "+cat.Undo+", x: "+cat.Dismiss+")"),
		))
	}

	if len(v.pending) == 0 {
		b.WriteString("  " + formatter.Dim(cat.AllCaughtUp) + "\n")
	}
	now := time.Now()
	for i, a := range v.pending {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		badge := ""
		if a.IsNew {
			badge = " " + formatter.StyleYellow.Render(cat.NewBadge)
		}
		due := formatter.Dim("--")
		if a.DueDate != nil {
			days := derive.DaysLeft(*a.DueDate, now)
			due = formatter.DaysLeftStyle(days).Render(a.DueDate.Format("02/01/2006 15:04"))
		}
		b.WriteString(fmt.Sprintf("  %s%s%s\n      %s  %s %s\n",
			cursor,
			formatter.Bold(formatter.Truncate(a.Name, 56)),
			badge,
			formatter.Dim(formatter.Truncate(a.CourseName, 40)),
			formatter.Dim(cat.DueDate+":"),
			due,
		))
	}

	if v.state.App.Prefs.ShowGrades() {
		b.WriteString("\n  " + formatter.Header(cat.Grades) + "\n")
		graded := derive.Graded(v.assignments)
		if len(graded) == 0 {
			b.WriteString("  " + formatter.Dim(cat.NoData) + "\n")
		}
		for _, a := range graded {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				formatter.Truncate(a.Name, 48),
				formatter.StyleGreen.Render(a.DisplayGrade()),
			))
		}
	}

	return b.String()
}
