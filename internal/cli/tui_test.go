package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/omripeer/studydeck/internal/undo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardLoadsOnStartup(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.Contains(t, view, "PENDING ASSIGNMENTS")
	assert.Contains(t, view, "Homework 3")
	assert.Contains(t, view, "slides.pptx")
}

func TestTUI_DashboardSurvivesPartialFailure(t *testing.T) {
	fake := seededFake()
	fake.scheduleErr = assert.AnError
	app := testApp(t, fake)

	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "Homework 3")
	assert.Contains(t, view, "slides.pptx")
}

func TestTUI_QuitWithQ(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, d.IsQuitting())
}

func TestTUI_NumberKeysSwitchPages(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	pages := []struct {
		key  rune
		want ViewID
	}{
		{'2', ViewAssignments},
		{'3', ViewExams},
		{'4', ViewCourses},
		{'5', ViewMaterials},
		{'6', ViewNotebooks},
		{'7', ViewSchedule},
		{'1', ViewDashboard},
	}
	for _, p := range pages {
		d.PressKey(p.key)
		assert.Equal(t, p.want, d.ActiveViewID(), "after pressing %q", p.key)
		assert.Equal(t, 1, d.ViewStackLen())
	}
}

func TestTUI_LanguageToggle(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	assert.Equal(t, domain.LangEnglish, app.I18n.Language())

	d.PressKey('L')

	assert.Equal(t, domain.LangHebrew, app.I18n.Language())
	assert.Equal(t, domain.LangHebrew, app.Prefs.Language())
	assert.Contains(t, d.View(), "מטלות שמחכות להגשה")

	d.PressKey('L')
	assert.Equal(t, domain.LangEnglish, app.I18n.Language())
}

func TestTUI_SyncTriggersServerAndRecordsTimestamp(t *testing.T) {
	fake := seededFake()
	app := testApp(t, fake)
	d := NewTestDriver(t, app)

	_, ok := app.Prefs.LastSync()
	require.False(t, ok)

	d.PressKey('s')

	assert.Equal(t, 1, fake.syncCalls)
	_, ok = app.Prefs.LastSync()
	assert.True(t, ok)
}

func TestTUI_DashboardMarkSeenAndUndo(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressSpace()

	assert.True(t, app.Prefs.Completed().Contains(23))
	assert.Contains(t, d.View(), "Marked as seen")

	d.PressKey('u')

	assert.False(t, app.Prefs.Completed().Contains(23))
}

func TestTUI_DashboardDismissKeepsSeen(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressSpace()
	d.PressKey('x')

	assert.True(t, app.Prefs.Completed().Contains(23))
	assert.NotContains(t, d.View(), "Marked as seen")
}

func TestTUI_AssignmentHideAndUndo(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('2')
	require.Equal(t, ViewAssignments, d.ActiveViewID())
	require.Contains(t, d.View(), "Homework 3")

	d.PressKey('h')

	assert.True(t, app.Prefs.HiddenAssignments().Contains(11))
	assert.Contains(t, d.View(), "Assignment hidden: Homework 3")

	d.PressKey('u')

	assert.False(t, app.Prefs.HiddenAssignments().Contains(11))
	assert.Contains(t, d.View(), "Homework 3")
}

func TestTUI_AssignmentDismissKeepsHidden(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('2')
	d.PressKey('h')
	d.PressKey('x')

	assert.True(t, app.Prefs.HiddenAssignments().Contains(11))
	assert.NotContains(t, d.View(), "Homework 3")
}

func TestTUI_AssignmentGradesToggle(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('2')
	assert.NotContains(t, d.View(), "Old HW")
	assert.Contains(t, d.View(), "Show Grades")

	d.PressKey('g')

	assert.True(t, app.Prefs.ShowGrades())
	view := d.View()
	assert.Contains(t, view, "Old HW")
	assert.Contains(t, view, "95")
	assert.Contains(t, view, "Hide Grades")
}

func TestTUI_ExamsSplitByMoed(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('3')

	view := d.View()
	assert.Contains(t, view, "MOED A")
	assert.Contains(t, view, "MOED B")
	assert.Contains(t, view, "Simulation")
}

func TestTUI_AddExamOpensFormAndEscCancels(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('3')
	d.PressKey('a')

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressEsc()

	assert.Equal(t, ViewExams, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_DeleteExam(t *testing.T) {
	fake := seededFake()
	app := testApp(t, fake)
	d := NewTestDriver(t, app)

	d.PressKey('3')
	d.PressKey('d')

	assert.Equal(t, int64(31), fake.deletedID)
	assert.NotContains(t, d.View(), "Hall A")
}

func TestTUI_CourseDrillDownToMaterials(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('4')
	require.Equal(t, ViewCourses, d.ActiveViewID())
	require.Contains(t, d.View(), "Simulation")

	d.PressEnter()

	assert.Equal(t, ViewMaterials, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Equal(t, int64(101), d.appModel().state.MaterialsCourseID)
	assert.Contains(t, d.View(), "LECTURES")

	d.PressEsc()
	assert.Equal(t, ViewCourses, d.ActiveViewID())
}

func TestTUI_HideCourseRemovesItFromFeed(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('4')
	d.PressDown()
	d.PressKey('h')

	assert.True(t, app.Prefs.HiddenCourses().Contains(2))

	d.PressKey('1')
	assert.NotContains(t, d.View(), "slides.pptx")
}

func TestTUI_MaterialsCourseListAndSections(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('5')
	view := d.View()
	assert.Contains(t, view, "Simulation")
	assert.Contains(t, view, "Algorithms")

	d.PressEnter()

	assert.Equal(t, int64(101), d.appModel().state.MaterialsCourseID)
	view = d.View()
	assert.Contains(t, view, "LECTURES")
	assert.Contains(t, view, "lecture1.pdf")
	assert.Contains(t, view, "intro.mp4")

	d.PressKey('b')
	assert.Equal(t, int64(0), d.appModel().state.MaterialsCourseID)
}

func TestTUI_MaterialsToggleSeenHasNoUndoNotice(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('5')
	d.PressEnter()
	d.PressSpace()

	assert.True(t, app.Prefs.Completed().Contains(21))
	_, pending := app.Undo.Pending(undo.ResourceCompleted)
	assert.False(t, pending)

	d.PressSpace()
	assert.False(t, app.Prefs.Completed().Contains(21))
}

func TestTUI_ZipDownloadWritesFile(t *testing.T) {
	fake := seededFake()
	app := testApp(t, fake)
	d := NewTestDriver(t, app)

	d.PressKey('5')
	d.PressEnter()
	d.PressKey('z')

	path := filepath.Join(app.DownloadDir, "course_101.zip")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fake.zipData, data)
}

func TestTUI_NotebooksListsLinkedCourses(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('6')

	view := d.View()
	assert.Contains(t, view, "Algorithms")
	assert.Contains(t, view, "https://notes.example/alg")
	assert.NotContains(t, view, "Simulation")
}

func TestTUI_ScheduleGroupsByDay(t *testing.T) {
	app := testApp(t, seededFake())
	d := NewTestDriver(t, app)

	d.PressKey('7')

	view := d.View()
	assert.Contains(t, view, "Monday")
	assert.Contains(t, view, "10:00-12:00")
	assert.Contains(t, view, "Room 101")
	assert.Contains(t, view, "Wednesday")
}

func TestTUI_RefreshInvalidatesQueries(t *testing.T) {
	fake := seededFake()
	app := testApp(t, fake)
	d := NewTestDriver(t, app)

	fake.assignments = append(fake.assignments, domain.Assignment{
		ID: 14, Name: "Pop Quiz", CourseName: "Simulation", DueDate: dueIn(1),
	})
	d.PressKey('2')
	assert.NotContains(t, d.View(), "Pop Quiz")

	d.PressKey('1')
	d.PressKey('r')
	d.PressKey('2')
	assert.Contains(t, d.View(), "Pop Quiz")
}
