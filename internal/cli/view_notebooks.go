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

// notebooksView lists courses that carry a linked notebook URL.
type notebooksView struct {
	state   *SharedState
	loading bool
	err     error

	notebooks []domain.Course
	cursor    int
}

func newNotebooksView(state *SharedState) *notebooksView {
	return &notebooksView{state: state, loading: true}
}

func (v *notebooksView) ID() ViewID { return ViewNotebooks }

func (v *notebooksView) Title() string { return v.state.App.I18n.T().Notebooks }

func (v *notebooksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
	}
}

func (v *notebooksView) Init() tea.Cmd {
	return v.loadData()
}

func (v *notebooksView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		courses, err := q.Courses.Get(context.Background())
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (v *notebooksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.notebooks = nil
		for _, c := range msg.courses {
			if c.HasNotebook() {
				v.notebooks = append(v.notebooks, c)
			}
		}
		if v.cursor >= len(v.notebooks) {
			v.cursor = max(0, len(v.notebooks)-1)
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
			if v.cursor < len(v.notebooks)-1 {
				v.cursor++
			}
		}
	}

	return v, nil
}

func (v *notebooksView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.err != nil {
		return "\n  " + errorLine(cat, v.err)
	}
	if len(v.notebooks) == 0 {
		return "\n  " + formatter.Dim(cat.NoData)
	}

	lang := v.state.App.I18n.Language()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(cat.Notebooks) + "\n")
	for i, c := range v.notebooks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		name := domain.LocalizedName(c.Fullname, lang)
		b.WriteString(fmt.Sprintf("  %s%s %s\n      %s\n",
			cursor,
			formatter.StylePurple.Render("◈"),
			formatter.Bold(formatter.Truncate(name, 48)),
			formatter.Dim(cat.OpenNotebook+": "+c.NotebookURL),
		))
	}
	return b.String()
}
