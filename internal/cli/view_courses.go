package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/domain"
)

// coursesLoadedMsg signals that course data has been loaded.
type coursesLoadedMsg struct {
	courses []domain.Course
	err     error
}

// coursesView lists enrolled courses with progress, and toggles
// per-course visibility used by the dashboard feed.
type coursesView struct {
	state   *SharedState
	loading bool
	err     error

	courses []domain.Course
	cursor  int
}

func newCoursesView(state *SharedState) *coursesView {
	return &coursesView{state: state, loading: true}
}

func (v *coursesView) ID() ViewID { return ViewCourses }

func (v *coursesView) Title() string { return v.state.App.I18n.T().Courses }

func (v *coursesView) ShortHelp() []key.Binding {
	cat := v.state.App.I18n.T()
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", cat.Hide+"/"+cat.Show)),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", cat.Materials)),
	}
}

func (v *coursesView) Init() tea.Cmd {
	return v.loadData()
}

func (v *coursesView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		courses, err := q.Courses.Get(context.Background())
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (v *coursesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.courses = msg.courses
		if v.cursor >= len(v.courses) {
			v.cursor = max(0, len(v.courses)-1)
		}
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
			if v.cursor < len(v.courses)-1 {
				v.cursor++
			}
		case "h":
			if v.cursor < len(v.courses) {
				if _, err := v.state.App.Prefs.HiddenCourses().Toggle(v.courses[v.cursor].ID); err != nil {
					return v, statusLine(formatter.StyleRed.Render(err.Error()))
				}
			}
		case "enter":
			if v.cursor < len(v.courses) {
				v.state.MaterialsCourseID = v.courses[v.cursor].MoodleID
				return v, pushView(newMaterialsView(v.state))
			}
		}
	}

	return v, nil
}

func (v *coursesView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.err != nil {
		return "\n  " + errorLine(cat, v.err)
	}
	if len(v.courses) == 0 {
		return "\n  " + formatter.Dim(cat.ClickSyncToGo)
	}

	lang := v.state.App.I18n.Language()
	hidden := v.state.App.Prefs.HiddenCourses()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(cat.MyCourses) + "\n")

	for i, c := range v.courses {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		name := domain.LocalizedName(c.Fullname, lang)
		nameStyle := formatter.StyleFg
		marker := " "
		if hidden.Contains(c.ID) {
			nameStyle = formatter.StyleDim
			marker = formatter.Dim("⊘")
		}
		notebook := ""
		if c.HasNotebook() {
			notebook = formatter.StylePurple.Render("◈")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s %s\n",
			cursor,
			marker,
			nameStyle.Render(formatter.PadRight(formatter.Truncate(name, 42), 42)),
			formatter.RenderProgress(float64(c.Progress)/100.0, 10),
			notebook,
		))
	}

	if n := hidden.Len(); n > 0 {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%s: %d", cat.HiddenCourses, n)) + "\n")
	}

	return b.String()
}
