package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/derive"
	"github.com/omripeer/studydeck/internal/domain"
)

// materialsLoadedMsg signals that course and resource data has been loaded.
type materialsLoadedMsg struct {
	courses      []domain.Course
	coursesErr   error
	resources    []domain.Resource
	resourcesErr error
}

// zipDownloadedMsg reports the result of a course archive download.
type zipDownloadedMsg struct {
	path string
	size int64
	err  error
}

// materialsView browses study materials. With no course filter it lists
// courses that have materials; with a filter it shows that course's
// resources grouped by section.
type materialsView struct {
	state   *SharedState
	loading bool

	courses      []domain.Course
	coursesErr   error
	resources    []domain.Resource
	resourcesErr error

	cursor      int
	downloading bool
}

func newMaterialsView(state *SharedState) *materialsView {
	return &materialsView{state: state, loading: true}
}

func (v *materialsView) ID() ViewID { return ViewMaterials }

func (v *materialsView) Title() string { return v.state.App.I18n.T().Materials }

func (v *materialsView) ShortHelp() []key.Binding {
	cat := v.state.App.I18n.T()
	if v.state.MaterialsCourseID == 0 {
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", cat.Open)),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark seen")),
		key.NewBinding(key.WithKeys("z"), key.WithHelp("z", cat.DownloadZip)),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", cat.AllCourses)),
	}
}

func (v *materialsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *materialsView) loadData() tea.Cmd {
	q := v.state.App.Queries
	return func() tea.Msg {
		ctx := context.Background()
		var m materialsLoadedMsg
		m.courses, m.coursesErr = q.Courses.Get(ctx)
		m.resources, m.resourcesErr = q.Resources.Get(ctx)
		return m
	}
}

// filteredCourses returns the courses that have at least one resource.
func (v *materialsView) filteredCourses() []domain.Course {
	return derive.CoursesWithResources(v.courses, v.resources)
}

// sections returns the section grouping for the filtered course.
func (v *materialsView) sections() []derive.Section {
	return derive.BySection(v.resources, v.state.MaterialsCourseID, v.state.App.I18n.T().General)
}

// flatResources returns the section resources in display order.
func (v *materialsView) flatResources() []domain.Resource {
	var out []domain.Resource
	for _, s := range v.sections() {
		out = append(out, s.Resources...)
	}
	return out
}

func (v *materialsView) rowCount() int {
	if v.state.MaterialsCourseID == 0 {
		return len(v.filteredCourses())
	}
	return len(v.flatResources())
}

func (v *materialsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case materialsLoadedMsg:
		v.loading = false
		v.courses = msg.courses
		v.coursesErr = msg.coursesErr
		v.resources = msg.resources
		v.resourcesErr = msg.resourcesErr
		if v.cursor >= v.rowCount() {
			v.cursor = max(0, v.rowCount()-1)
		}
		return v, nil

	case zipDownloadedMsg:
		v.downloading = false
		if msg.err != nil {
			return v, statusLine(errorLine(v.state.App.I18n.T(), msg.err))
		}
		return v, statusLine(formatter.StyleGreen.Render(
			fmt.Sprintf("%s → %s (%s)", v.state.App.I18n.T().Download, msg.path, formatter.FileSize(msg.size))))

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
			if v.cursor < v.rowCount()-1 {
				v.cursor++
			}
		case "enter":
			if v.state.MaterialsCourseID == 0 {
				courses := v.filteredCourses()
				if v.cursor < len(courses) {
					v.state.MaterialsCourseID = courses[v.cursor].MoodleID
					v.cursor = 0
				}
			}
		case " ":
			if v.state.MaterialsCourseID != 0 {
				return v, v.toggleSelected()
			}
		case "b":
			if v.state.MaterialsCourseID != 0 {
				v.state.MaterialsCourseID = 0
				v.cursor = 0
			}
		case "z":
			if v.state.MaterialsCourseID != 0 && !v.downloading {
				v.downloading = true
				return v, v.downloadZip()
			}
		}
	}

	return v, nil
}

// toggleSelected flips the seen marker for the selected resource.
// No undo window here: the checkbox stays visible and can be unticked.
func (v *materialsView) toggleSelected() tea.Cmd {
	resources := v.flatResources()
	if v.cursor >= len(resources) {
		return nil
	}
	if _, err := v.state.App.Prefs.Completed().Toggle(resources[v.cursor].ID); err != nil {
		return statusLine(formatter.StyleRed.Render(err.Error()))
	}
	return nil
}

func (v *materialsView) downloadZip() tea.Cmd {
	app := v.state.App
	courseID := v.state.MaterialsCourseID
	dir := app.DownloadDir

	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zipDownloadedMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("course_%d.zip", courseID))
		f, err := os.Create(path)
		if err != nil {
			return zipDownloadedMsg{err: err}
		}
		defer f.Close()

		n, err := app.API.DownloadCourseZip(context.Background(), courseID, f)
		if err != nil {
			os.Remove(path)
			return zipDownloadedMsg{err: err}
		}
		return zipDownloadedMsg{path: path, size: n}
	}
}

func (v *materialsView) View() string {
	cat := v.state.App.I18n.T()
	if v.loading {
		return "\n  " + formatter.Dim(cat.Loading)
	}
	if v.resourcesErr != nil {
		return "\n  " + errorLine(cat, v.resourcesErr)
	}

	if v.state.MaterialsCourseID == 0 {
		return v.renderCourseList()
	}
	return v.renderSections()
}

func (v *materialsView) renderCourseList() string {
	cat := v.state.App.I18n.T()
	lang := v.state.App.I18n.Language()
	courses := v.filteredCourses()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(cat.Materials) + "\n")

	if v.coursesErr != nil {
		b.WriteString("  " + errorLine(cat, v.coursesErr) + "\n")
		return b.String()
	}
	if len(courses) == 0 {
		b.WriteString("  " + formatter.Dim(cat.NoData) + "\n")
		return b.String()
	}

	counts := make(map[int64]int)
	for _, r := range v.resources {
		counts[r.CourseID]++
	}

	for i, c := range courses {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		name := domain.LocalizedName(c.Fullname, lang)
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			formatter.PadRight(formatter.Truncate(name, 44), 44),
			formatter.Dim(fmt.Sprintf("%d", counts[c.MoodleID])),
		))
	}
	return b.String()
}

func (v *materialsView) renderSections() string {
	cat := v.state.App.I18n.T()
	completed := v.state.App.Prefs.Completed()

	var b strings.Builder
	b.WriteString("\n")

	idx := 0
	for _, section := range v.sections() {
		b.WriteString("  " + formatter.Header(section.Label) + "\n")
		for _, r := range section.Resources {
			cursor := "  "
			if idx == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			badge := ""
			if r.IsNew {
				badge = " " + formatter.NewBadge()
			}
			b.WriteString(fmt.Sprintf("  %s%s %s %s%s %s\n",
				cursor,
				formatter.Checkbox(completed.Contains(r.ID)),
				formatter.FileGlyph(r.Mimetype),
				formatter.Truncate(r.Filename, 44),
				badge,
				formatter.Dim(formatter.FileSize(r.Filesize)),
			))
			idx++
		}
		b.WriteString("\n")
	}

	if idx == 0 {
		b.WriteString("  " + formatter.Dim(cat.NoData) + "\n")
	}
	return b.String()
}
