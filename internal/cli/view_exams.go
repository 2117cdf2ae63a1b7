package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/derive"
	"github.com/omripeer/studydeck/internal/domain"
)

// examsLoadedMsg signals that exam data has been loaded.
type examsLoadedMsg struct {
	exams []domain.Exam
	err   error
}

// examMutatedMsg reports the result of an add or delete.
type examMutatedMsg struct {
	err error
}

// examsView shows upcoming exams split into Moed A and Moed B panes,
// with manual add and delete.
type examsView struct {
	state   *SharedState
	loading bool
	err     error

	moedA  []domain.Exam
	moedB  []domain.Exam
	cursor int // index into the concatenation moedA ++ moedB
}

func newExamsView(state *SharedState) *examsView {
	return &examsView{state: state, loading: true}
}

func (v *examsView) ID() ViewID { return ViewExams }

func (v *examsView) Title() string { return v.state.App.I18n.T().Exams }

func (v *examsView) ShortHelp() []key.Binding {
	cat := v.state.App.I18n.T()
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", cat.AddExam)),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", cat.Delete)),
	}
}

func (v *examsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *examsView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		exams, err := q.Exams.Get(context.Background())
		return examsLoadedMsg{exams: exams, err: err}
	}
}

func (v *examsView) selected() *domain.Exam {
	all := append(append([]domain.Exam{}, v.moedA...), v.moedB...)
	if v.cursor < 0 || v.cursor >= len(all) {
		return nil
	}
	return &all[v.cursor]
}

func (v *examsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case examsLoadedMsg:
		v.loading = false
		v.err = msg.err
		upcoming := derive.Upcoming(msg.exams, time.Now())
		v.moedA, v.moedB = derive.SplitByMoed(upcoming)
		if total := len(v.moedA) + len(v.moedB); v.cursor >= total {
			v.cursor = max(0, total-1)
		}
		return v, nil

	case examMutatedMsg:
		if msg.err != nil {
			return v, statusLine(errorLine(v.state.App.I18n.T(), msg.err))
		}
		v.state.App.Queries.Exams.Invalidate()
		v.loading = true
		return v, v.loadData()

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
			if v.cursor < len(v.moedA)+len(v.moedB)-1 {
				v.cursor++
			}
		case "a":
			return v, v.startAddExam()
		case "d":
			return v, v.deleteSelected()
		}
	}

	return v, nil
}

func (v *examsView) startAddExam() tea.Cmd {
	cat := v.state.App.I18n.T()
	values := &examFormValues{}
	form := wizardExamForm(cat.AddExam, values)
	app := v.state.App

	done := func() tea.Cmd {
		return func() tea.Msg {
			date, err := values.ParsedDate()
			if err != nil {
				return examMutatedMsg{err: err}
			}
			_, err = app.API.AddExam(context.Background(), domain.Exam{
				CourseName:  values.CourseName,
				Date:        date,
				Location:    values.Location,
				Description: values.Description,
			})
			return examMutatedMsg{err: err}
		}
	}
	return pushView(newWizardView(v.state, cat.AddExam, form, done))
}

func (v *examsView) deleteSelected() tea.Cmd {
	exam := v.selected()
	if exam == nil {
		return nil
	}
	id := exam.ID
	app := v.state.App
	return func() tea.Msg {
		return examMutatedMsg{err: app.API.DeleteExam(context.Background(), id)}
	}
}

func (v *examsView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.err != nil {
		return "\n  " + errorLine(cat, v.err)
	}

	if len(v.moedA)+len(v.moedB) == 0 {
		return "\n  " + formatter.Dim(cat.NoExams)
	}

	now := time.Now()
	left := v.renderPane(cat.MoedA, v.moedA, 0, now)
	right := v.renderPane(cat.MoedB, v.moedB, len(v.moedA), now)

	if v.state.Width < 80 {
		return "\n" + left + "\n" + right
	}

	half := v.state.Width/2 - 2
	leftCol := lipgloss.NewStyle().Width(half).Render(left)
	divider := formatter.Dim("│")
	rightCol := lipgloss.NewStyle().Width(half).Render(right)
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (v *examsView) renderPane(title string, exams []domain.Exam, offset int, now time.Time) string {
	cat := v.state.App.I18n.T()
	var b strings.Builder
	b.WriteString("  " + formatter.Header(title) + "\n")

	if len(exams) == 0 {
		b.WriteString("  " + formatter.Dim(cat.NoExams) + "\n")
		return b.String()
	}

	for i, e := range exams {
		cursor := "  "
		if offset+i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		location := ""
		if e.Location != "" {
			location = formatter.Dim(cat.Location + ": " + e.Location)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n      %s  %s\n      %s\n",
			cursor,
			formatter.Bold(formatter.Truncate(e.CourseName, 36)),
			e.Date.Format("02/01/2006 15:04"),
			daysLeftLabel(cat, e.Date, now),
			location,
		))
	}
	return b.String()
}
