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

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds one snapshot per collection the dashboard shows.
// Each collection carries its own error so one failing fetch does not
// blank the whole page.
type dashboardData struct {
	schedule    []domain.ScheduleItem
	scheduleErr error

	exams    []domain.Exam
	examsErr error

	assignments    []domain.Assignment
	assignmentsErr error

	courses    []domain.Course
	coursesErr error

	newResources    []domain.Resource
	newResourcesErr error
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
}

// clockTickMsg drives the minute-resolution widgets (current class).
type clockTickMsg time.Time

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home page: current class, next exam, pending
// assignments, and the what's-new feed with completion toggling.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	now     time.Time

	// Selection over the flattened what's-new resource rows.
	cursor int
	rows   []whatsNewRow
}

// whatsNewRow is one selectable resource line in the what's-new feed.
type whatsNewRow struct {
	resource   domain.Resource
	courseName string
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
		now:     time.Now(),
	}
}

func (v *dashboardView) ID() ViewID { return ViewDashboard }

func (v *dashboardView) Title() string { return v.state.App.I18n.T().Dashboard }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark seen")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), v.tick())
}

// tick re-arms the minute clock. When the view leaves the stack the
// message lands on another view and the chain stops.
func (v *dashboardView) tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		ctx := context.Background()

		var d dashboardData
		d.schedule, d.scheduleErr = q.Schedule.Get(ctx)
		d.exams, d.examsErr = q.Exams.Get(ctx)
		d.assignments, d.assignmentsErr = q.Assignments.Get(ctx)
		d.courses, d.coursesErr = q.Courses.Get(ctx)
		d.newResources, d.newResourcesErr = q.NewResources.Get(ctx)

		return dashboardLoadedMsg{data: d}
	}
}

// recomputeRows flattens the what's-new groups into selectable rows.
func (v *dashboardView) recomputeRows() {
	v.rows = nil
	if v.data == nil {
		return
	}
	prefs := v.state.App.Prefs
	lang := v.state.App.I18n.Language()
	groups := derive.WhatsNew(
		v.data.courses,
		v.data.newResources,
		prefs.Completed().Snapshot(),
		prefs.HiddenCourses().Snapshot(),
	)
	for _, g := range groups {
		name := domain.LocalizedName(g.Course.Fullname, lang)
		for _, r := range g.Resources {
			v.rows = append(v.rows, whatsNewRow{resource: r, courseName: name})
		}
	}
	if v.cursor >= len(v.rows) {
		v.cursor = max(0, len(v.rows)-1)
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.data = &msg.data
		v.recomputeRows()
		return v, nil

	case clockTickMsg:
		v.now = time.Time(msg)
		return v, v.tick()

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
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case " ", "enter":
			return v, v.toggleSelected()
		case "u":
			if err := v.state.App.Undo.Undo(undo.ResourceCompleted); err != nil {
				return v, statusLine(formatter.StyleRed.Render(err.Error()))
			}
			v.recomputeRows()
		case "x":
			v.state.App.Undo.Dismiss(undo.ResourceCompleted)
		case "r":
			v.loading = true
			v.state.App.Queries.InvalidateAll()
			return v, v.loadData()
		}
	}

	return v, nil
}

// toggleSelected marks the selected resource seen (or unseen) and,
// when marking seen, opens an undo window.
func (v *dashboardView) toggleSelected() tea.Cmd {
	if v.cursor >= len(v.rows) {
		return nil
	}
	row := v.rows[v.cursor]
	app := v.state.App
	completed := app.Prefs.Completed()

	nowMember, err := completed.Toggle(row.resource.ID)
	if err != nil {
		return statusLine(formatter.StyleRed.Render(err.Error()))
	}
	v.recomputeRows()

	if !nowMember {
		return nil
	}
	id := row.resource.ID
	notice := app.Undo.Trigger(undo.ResourceCompleted, id,
		app.I18n.T().MarkedDone+": "+row.resource.Filename,
		func() error { return completed.Remove(id) },
	)
	return scheduleUndoExpiry(notice)
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.renderCurrentClass())
	b.WriteString(v.renderNextExam())
	b.WriteString(v.renderPending())
	b.WriteString(v.renderWhatsNew())
	return b.String()
}

func (v *dashboardView) renderCurrentClass() string {
	cat := v.state.App.I18n.T()
	if v.data.scheduleErr != nil {
		return "  " + errorLine(cat, v.data.scheduleErr) + "\n\n"
	}

	current := derive.CurrentClass(v.data.schedule, v.now)
	if current == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + formatter.Header(cat.CurrentlyInClass) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n\n",
		formatter.StyleGreen.Render("● "+cat.LiveNow),
		formatter.Bold(current.Title),
		formatter.ClockRange(current.Start, current.End),
		formatter.Dim(current.Location),
	))
	return b.String()
}

func (v *dashboardView) renderNextExam() string {
	cat := v.state.App.I18n.T()
	if v.data.examsErr != nil {
		return "  " + errorLine(cat, v.data.examsErr) + "\n\n"
	}

	next := derive.NextExam(v.data.exams, v.now)
	if next == nil {
		return ""
	}

	return fmt.Sprintf("  %s  %s  %s\n\n",
		formatter.Dim(cat.NextExam+":"),
		formatter.Bold(next.CourseName),
		daysLeftLabel(cat, next.Date, v.now),
	)
}

func (v *dashboardView) renderPending() string {
	cat := v.state.App.I18n.T()
	var b strings.Builder
	b.WriteString("  " + formatter.Header(cat.PendingAssignments) + "\n")

	if v.data.assignmentsErr != nil {
		b.WriteString("  " + errorLine(cat, v.data.assignmentsErr) + "\n\n")
		return b.String()
	}

	pending := derive.Pending(v.data.assignments, v.state.App.Prefs.HiddenAssignments().Snapshot())
	if len(pending) == 0 {
		b.WriteString("  " + formatter.Dim(cat.AllCaughtUp) + "\n")
	}
	const maxShown = 5
	for i, a := range pending {
		if i == maxShown {
			b.WriteString("  " + formatter.Dim(fmt.Sprintf("+%d %s", len(pending)-maxShown, cat.Pending)) + "\n")
			break
		}
		due := ""
		if a.DueDate != nil {
			days := derive.DaysLeft(*a.DueDate, v.now)
			due = formatter.DaysLeftStyle(days).Render(a.DueDate.Format("02/01 15:04"))
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			formatter.Truncate(a.Name, 40),
			formatter.Dim(formatter.Truncate(a.CourseName, 24)),
			due,
		))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *dashboardView) renderWhatsNew() string {
	cat := v.state.App.I18n.T()
	var b strings.Builder
	b.WriteString("  " + formatter.Header(cat.WhatsNew) + "\n")

	if notice, ok := v.state.App.Undo.Pending(undo.ResourceCompleted); ok {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.StyleYellow.Render(notice.Label),
			formatter.Dim("(u: "+cat.Undo+", x: "+cat.Dismiss+")"),
		))
	}

	if v.data.newResourcesErr != nil {
		b.WriteString("  " + errorLine(cat, v.data.newResourcesErr) + "\n")
		return b.String()
	}
	if v.data.coursesErr != nil {
		b.WriteString("  " + errorLine(cat, v.data.coursesErr) + "\n")
		return b.String()
	}

	if len(v.rows) == 0 {
		hint := cat.NoNewMaterials
		if len(v.data.courses) == 0 {
			hint = cat.ClickSyncToGo
		}
		b.WriteString("  " + formatter.Dim(hint) + "\n")
		return b.String()
	}

	lastCourse := ""
	for i, row := range v.rows {
		if row.courseName != lastCourse {
			b.WriteString("  " + formatter.StyleBlue.Render(row.courseName) + "\n")
			lastCourse = row.courseName
		}
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		when := ""
		if row.resource.TimeCreated != nil {
			when = formatter.Dim(formatter.HumanTimestamp(*row.resource.TimeCreated))
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s  %s\n",
			cursor,
			formatter.FileGlyph(row.resource.Mimetype),
			formatter.Truncate(row.resource.Filename, 44),
			formatter.Dim(formatter.FileSize(row.resource.Filesize)),
			when,
		))
	}
	return b.String()
}
