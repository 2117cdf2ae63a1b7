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
)

// scheduleLoadedMsg signals that schedule data has been loaded.
type scheduleLoadedMsg struct {
	schedule []domain.ScheduleItem
	err      error
}

// scheduleView renders the weekly timetable, Sunday through Friday,
// highlighting the class currently in session.
type scheduleView struct {
	state   *SharedState
	loading bool
	err     error

	schedule []domain.ScheduleItem
	now      time.Time
}

func newScheduleView(state *SharedState) *scheduleView {
	return &scheduleView{state: state, loading: true, now: time.Now()}
}

func (v *scheduleView) ID() ViewID { return ViewSchedule }

func (v *scheduleView) Title() string { return v.state.App.I18n.T().Schedule }

func (v *scheduleView) ShortHelp() []key.Binding {
	return nil
}

func (v *scheduleView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), v.tick())
}

func (v *scheduleView) tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (v *scheduleView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		schedule, err := q.Schedule.Get(context.Background())
		return scheduleLoadedMsg{schedule: schedule, err: err}
	}
}

func (v *scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduleLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.schedule = msg.schedule
		return v, nil

	case clockTickMsg:
		v.now = time.Time(msg)
		return v, v.tick()

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()
	}

	return v, nil
}

func (v *scheduleView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.err != nil {
		return "\n  " + errorLine(cat, v.err)
	}
	if len(v.schedule) == 0 {
		return "\n  " + formatter.Dim(cat.NoClasses)
	}

	current := derive.CurrentClass(v.schedule, v.now)

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(cat.WeeklySchedule) + "\n")

	for _, day := range domain.ScheduleDays {
		items := derive.ByDay(v.schedule, day)
		if len(items) == 0 {
			continue
		}
		b.WriteString("  " + formatter.StyleBlue.Render(v.state.App.I18n.DayName(day)) + "\n")
		for _, item := range items {
			marker := "  "
			titleStyle := formatter.StyleFg
			if current != nil && *current == item {
				marker = formatter.StyleGreen.Render("● ")
				titleStyle = formatter.StyleBold
			}
			location := ""
			if item.Location != "" {
				location = formatter.Dim(item.Location)
			}
			b.WriteString(fmt.Sprintf("  %s%s  %s %s %s\n",
				marker,
				formatter.ClockRange(item.Start, item.End),
				titleStyle.Render(formatter.PadRight(formatter.Truncate(item.Title, 36), 36)),
				formatter.Dim(item.Type),
				location,
			))
		}
		b.WriteString("\n")
	}

	return b.String()
}
