package cli

import (
	"context"

	"github.com/omripeer/studydeck/internal/api"
	"github.com/omripeer/studydeck/internal/cache"
	"github.com/omripeer/studydeck/internal/domain"
	"github.com/omripeer/studydeck/internal/i18n"
	"github.com/omripeer/studydeck/internal/prefs"
	"github.com/omripeer/studydeck/internal/undo"
)

// App holds the wired dependencies used by the TUI and CLI commands.
type App struct {
	API     api.Client
	Prefs   *prefs.Store
	I18n    *i18n.Provider
	Undo    *undo.Controller
	Queries *Queries

	// DownloadDir is where course zip archives are saved.
	DownloadDir string

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// Queries holds the per-collection snapshot caches. Page switches read
// through these so revisiting a page does not refetch; a sync
// invalidates the whole set.
type Queries struct {
	Courses      *cache.Query[[]domain.Course]
	Assignments  *cache.Query[[]domain.Assignment]
	Resources    *cache.Query[[]domain.Resource]
	NewResources *cache.Query[[]domain.Resource]
	Schedule     *cache.Query[[]domain.ScheduleItem]
	Exams        *cache.Query[[]domain.Exam]

	group cache.Group
}

// NewQueries builds the query set over the API client.
func NewQueries(client api.Client) *Queries {
	q := &Queries{
		Courses: cache.NewQuery("courses", func(ctx context.Context) ([]domain.Course, error) {
			return client.Courses(ctx)
		}),
		Assignments: cache.NewQuery("assignments", func(ctx context.Context) ([]domain.Assignment, error) {
			return client.Assignments(ctx)
		}),
		Resources: cache.NewQuery("resources", func(ctx context.Context) ([]domain.Resource, error) {
			return client.Resources(ctx, 0)
		}),
		NewResources: cache.NewQuery("resources/new", func(ctx context.Context) ([]domain.Resource, error) {
			return client.NewResources(ctx)
		}),
		Schedule: cache.NewQuery("schedule", func(ctx context.Context) ([]domain.ScheduleItem, error) {
			return client.Schedule(ctx)
		}),
		Exams: cache.NewQuery("exams", func(ctx context.Context) ([]domain.Exam, error) {
			return client.Exams(ctx)
		}),
	}
	q.group.Add(q.Courses, q.Assignments, q.Resources, q.NewResources, q.Schedule, q.Exams)
	return q
}

// InvalidateAll marks every collection stale so the next read refetches.
func (q *Queries) InvalidateAll() {
	q.group.InvalidateAll()
}
