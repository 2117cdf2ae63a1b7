package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/undo"
)

// syncStartedMsg signals that the server accepted (or rejected) a sync
// request.
type syncStartedMsg struct {
	err error
}

// syncSettledMsg fires after the settle delay following an accepted
// sync. Caches are invalidated and every view reloads.
type syncSettledMsg struct{}

// undoExpireMsg retires an undo notice whose window elapsed. The token
// guards against expiring a notice that superseded the original one.
type undoExpireMsg struct {
	kind  undo.Kind
	token string
}

// scheduleUndoExpiry arms a timer for the notice's deadline.
func scheduleUndoExpiry(n undo.Notice) tea.Cmd {
	return tea.Tick(time.Until(n.Deadline), func(time.Time) tea.Msg {
		return undoExpireMsg{kind: n.Kind, token: n.Token}
	})
}

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, page switching, and the sync lifecycle.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
	syncing   bool

	// Transient one-line status shown under the header.
	status string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	m := appModel{state: state}
	m.viewStack = []View{newDashboardView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// newPageView constructs the view for a page id.
func (m *appModel) newPageView(id ViewID) View {
	switch id {
	case ViewAssignments:
		return newAssignmentsView(m.state)
	case ViewExams:
		return newExamsView(m.state)
	case ViewCourses:
		return newCoursesView(m.state)
	case ViewMaterials:
		return newMaterialsView(m.state)
	case ViewNotebooks:
		return newNotebooksView(m.state)
	case ViewSchedule:
		return newScheduleView(m.state)
	default:
		return newDashboardView(m.state)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.status = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast so views below the top (e.g. materials under a
		// form) also reload after mutations.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })

	case statusLineMsg:
		m.status = msg.text
		return m, nil

	case syncStartedMsg:
		if msg.err != nil {
			m.syncing = false
			m.status = formatter.StyleRed.Render(m.state.App.I18n.T().Error + ": " + msg.err.Error())
			return m, nil
		}
		// Accepted, not completed: give the server time to settle
		// before refetching.
		return m, tea.Tick(m.state.App.API.SettleDelay(), func(time.Time) tea.Msg {
			return syncSettledMsg{}
		})

	case syncSettledMsg:
		m.syncing = false
		m.status = ""
		app := m.state.App
		app.Queries.InvalidateAll()
		_ = app.Prefs.SetLastSync(time.Now())
		return m, func() tea.Msg { return refreshViewMsg{} }

	case undoExpireMsg:
		m.state.App.Undo.Expire(msg.kind, msg.token)
		return m, nil
	}

	// Forward everything else to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Form views own the keyboard; only ctrl+c breaks out above.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch key := msg.String(); key {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6", "7":
		target := pageOrder[key[0]-'1']
		if v := m.activeView(); v != nil && v.ID() == target && len(m.viewStack) == 1 {
			break
		}
		m.status = ""
		view := m.newPageView(target)
		m.viewStack = []View{view}
		return m, view.Init()

	case "L":
		if err := m.state.App.I18n.Toggle(); err != nil {
			m.status = formatter.StyleRed.Render(err.Error())
		}
		return m, nil

	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = formatter.StyleYellow.Render(m.state.App.I18n.T().Syncing)
		return m, m.startSync()
	}

	if msg.Type == tea.KeyEsc {
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.status = ""
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m *appModel) startSync() tea.Cmd {
	app := m.state.App
	return func() tea.Msg {
		return syncStartedMsg{err: app.API.TriggerSync(context.Background())}
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if m.status != "" {
		sections = append(sections, "  "+m.status)
	}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	app := m.state.App
	cat := app.I18n.T()

	title := formatter.StylePurple.Render(cat.AppName)

	crumb := ""
	if v := m.activeView(); v != nil && v.Title() != "" {
		crumb = " " + formatter.Dim("›") + " " + formatter.Dim(v.Title())
	}

	lang := formatter.Dim("[") + formatter.StyleGreen.Render(strings.ToUpper(string(app.I18n.Language()))) + formatter.Dim("]")

	last := formatter.Dim(cat.LastSync + ": --")
	if t, ok := app.Prefs.LastSync(); ok {
		last = formatter.Dim(cat.LastSync + ": " + formatter.HumanTimestamp(t))
	}

	header := title + crumb + "  " + lang + "  " + last
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints,
		formatter.Dim("1-7: pages"),
		formatter.Dim("s: sync"),
		formatter.Dim("L: lang"),
		formatter.Dim("q: quit"),
	)

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
