package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/derive"
	"github.com/omripeer/studydeck/internal/domain"
)

// newSyncCmd triggers a server sync and waits for the settle delay so
// a following subcommand sees fresh data.
func newSyncCmd(app *App) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Ask the server to re-sync from Moodle",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.API.TriggerSync(ctx); err != nil {
				return err
			}
			if !noWait {
				time.Sleep(app.API.SettleDelay())
			}
			app.Queries.InvalidateAll()
			if err := app.Prefs.SetLastSync(time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓ ") + app.I18n.T().Sync)
			return nil
		},
	}

	addNoWaitFlag(cmd.Flags(), &noWait)
	return cmd
}

// addNoWaitFlag registers the --no-wait flag on a command's flag set.
func addNoWaitFlag(fs *pflag.FlagSet, target *bool) {
	fs.BoolVar(target, "no-wait", false, "Return as soon as the server accepts the sync")
}

func newCoursesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List enrolled courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Queries.Courses.Get(context.Background())
			if err != nil {
				return err
			}
			cat := app.I18n.T()
			lang := app.I18n.Language()

			rows := make([][]string, 0, len(courses))
			for _, c := range courses {
				rows = append(rows, []string{
					domain.CourseCode(c.Fullname),
					domain.LocalizedName(c.Fullname, lang),
					formatter.RenderProgress(float64(c.Progress)/100.0, 8),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"#", cat.Courses, cat.Progress}, rows))
			return nil
		},
	}
}

func newAssignmentsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List pending assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := app.Queries.Assignments.Get(context.Background())
			if err != nil {
				return err
			}
			cat := app.I18n.T()

			shown := assignments
			if !all {
				shown = derive.Pending(assignments, app.Prefs.HiddenAssignments().Snapshot())
			}
			now := time.Now()
			rows := make([][]string, 0, len(shown))
			for _, a := range shown {
				due := "--"
				if a.DueDate != nil {
					days := derive.DaysLeft(*a.DueDate, now)
					due = formatter.DaysLeftStyle(days).Render(a.DueDate.Format("02/01/2006 15:04"))
				}
				status := formatter.Dim(cat.NotSubmitted)
				if a.Submitted {
					status = formatter.StyleGreen.Render(cat.Submitted)
				}
				rows = append(rows, []string{a.Name, a.CourseName, due, status})
			}
			fmt.Print(formatter.RenderTable(
				[]string{cat.Assignments, cat.Courses, cat.DueDate, ""}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include submitted and hidden assignments")
	return cmd
}

func newExamsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exams",
		Short: "List upcoming exams",
		RunE: func(cmd *cobra.Command, args []string) error {
			exams, err := app.Queries.Exams.Get(context.Background())
			if err != nil {
				return err
			}
			cat := app.I18n.T()
			now := time.Now()

			rows := make([][]string, 0, len(exams))
			for _, e := range derive.Upcoming(exams, now) {
				moed := cat.MoedA
				if e.Moed() == domain.MoedB {
					moed = cat.MoedB
				}
				rows = append(rows, []string{
					e.CourseName,
					e.Date.Format("02/01/2006 15:04"),
					moed,
					daysLeftLabel(cat, e.Date, now),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{cat.Exams, cat.DueDate, cat.Type, ""}, rows))
			return nil
		},
	}
}
