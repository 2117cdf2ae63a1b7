package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/omripeer/studydeck/internal/i18n"
	"github.com/omripeer/studydeck/internal/prefs"
	"github.com/omripeer/studydeck/internal/teatest"
	"github.com/omripeer/studydeck/internal/testutil"
	"github.com/omripeer/studydeck/internal/undo"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory api.Client for TUI tests.
type fakeAPI struct {
	courses      []domain.Course
	assignments  []domain.Assignment
	resources    []domain.Resource
	newResources []domain.Resource
	schedule     []domain.ScheduleItem
	exams        []domain.Exam

	err         error
	scheduleErr error
	syncCalls   int
	addedExam *domain.Exam
	deletedID int64
	zipData   []byte
}

func (f *fakeAPI) Courses(ctx context.Context) ([]domain.Course, error) {
	return f.courses, f.err
}

func (f *fakeAPI) Assignments(ctx context.Context) ([]domain.Assignment, error) {
	return f.assignments, f.err
}

func (f *fakeAPI) Resources(ctx context.Context, courseID int64) ([]domain.Resource, error) {
	if courseID == 0 {
		return f.resources, f.err
	}
	var out []domain.Resource
	for _, r := range f.resources {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeAPI) NewResources(ctx context.Context) ([]domain.Resource, error) {
	return f.newResources, f.err
}

func (f *fakeAPI) Schedule(ctx context.Context) ([]domain.ScheduleItem, error) {
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return f.schedule, f.err
}

func (f *fakeAPI) Exams(ctx context.Context) ([]domain.Exam, error) {
	return f.exams, f.err
}

func (f *fakeAPI) AddExam(ctx context.Context, exam domain.Exam) (*domain.Exam, error) {
	exam.ID = int64(len(f.exams) + 1)
	f.exams = append(f.exams, exam)
	f.addedExam = &exam
	return &exam, nil
}

func (f *fakeAPI) DeleteExam(ctx context.Context, id int64) error {
	f.deletedID = id
	kept := f.exams[:0]
	for _, e := range f.exams {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.exams = kept
	return nil
}

func (f *fakeAPI) DownloadCourseZip(ctx context.Context, courseID int64, w io.Writer) (int64, error) {
	n, err := w.Write(f.zipData)
	return int64(n), err
}

func (f *fakeAPI) TriggerSync(ctx context.Context) error {
	f.syncCalls++
	return f.err
}

func (f *fakeAPI) SettleDelay() time.Duration { return time.Millisecond }

// testApp wires an App over the fake client and an in-memory
// preference store, with English strings for stable assertions.
func testApp(t *testing.T, fake *fakeAPI) *App {
	t.Helper()

	store, err := prefs.NewStore(context.Background(), testutil.NewTestDB(t))
	require.NoError(t, err)

	provider := i18n.NewProvider(store)
	require.NoError(t, provider.SetLanguage(domain.LangEnglish))

	return &App{
		API:         fake,
		Prefs:       store,
		I18n:        provider,
		Undo:        undo.NewController(),
		Queries:     NewQueries(fake),
		DownloadDir: t.TempDir(),
	}
}

// TestDriver wraps the synchronous driver with appModel helpers.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and
// drains Init() so the dashboard is loaded.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ID of the view on top of the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// ViewStackLen returns the navigation stack depth.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting reports whether the model is shutting down.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// fixtureTime returns a due date pointer n days from now.
func dueIn(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

// seededFake returns a fake populated with a small bilingual campus.
func seededFake() *fakeAPI {
	created := time.Now().Add(-2 * time.Hour)
	return &fakeAPI{
		courses: []domain.Course{
			{ID: 1, MoodleID: 101, Fullname: "0571311001 - סימולציה0571311001 - Simulation", Progress: 40},
			{ID: 2, MoodleID: 102, Fullname: "0542205001 - אלגוריתמים0542205001 - Algorithms", Progress: 75, NotebookURL: "https://notes.example/alg"},
		},
		assignments: []domain.Assignment{
			{ID: 11, Name: "Homework 3", CourseName: "Simulation", DueDate: dueIn(3), IsNew: true},
			{ID: 12, Name: "Lab Report", CourseName: "Algorithms", DueDate: dueIn(10)},
			{ID: 13, Name: "Old HW", CourseName: "Algorithms", DueDate: dueIn(-4), Submitted: true, Grade: "95 / 100"},
		},
		resources: []domain.Resource{
			{ID: 21, CourseID: 101, Filename: "lecture1.pdf", Mimetype: "application/pdf", Filesize: 1 << 20, TimeCreated: &created, Section: "Lectures"},
			{ID: 22, CourseID: 101, Filename: "intro.mp4", Mimetype: "video/mp4", Filesize: 50 << 20, TimeCreated: &created},
			{ID: 23, CourseID: 102, Filename: "slides.pptx", Mimetype: "application/vnd.ms-powerpoint", Filesize: 2 << 20, TimeCreated: &created, Section: "Week 1", IsNew: true},
		},
		newResources: []domain.Resource{
			{ID: 23, CourseID: 102, Filename: "slides.pptx", Mimetype: "application/vnd.ms-powerpoint", Filesize: 2 << 20, TimeCreated: &created, IsNew: true},
		},
		schedule: []domain.ScheduleItem{
			{Day: "Monday", Start: "10:00", End: "12:00", Title: "Simulation", Type: "Lecture", Location: "Room 101"},
			{Day: "Wednesday", Start: "14:00", End: "16:00", Title: "Algorithms", Type: "Recitation", Location: "Room 202"},
		},
		exams: []domain.Exam{
			{ID: 31, CourseName: "Simulation", Date: time.Now().AddDate(0, 0, 14), Location: "Hall A"},
			{ID: 32, CourseName: "Simulation", Date: time.Now().AddDate(0, 0, 45), Description: "מועד ב"},
		},
		zipData: []byte("PK fake zip"),
	}
}
