package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/omripeer/studydeck/internal/domain"
)

// NewRootCmd creates the top-level "studydeck" command. With no
// subcommand it launches the TUI; subcommands give scriptable plain
// output for pipelines and cron.
func NewRootCmd(app *App) *cobra.Command {
	var lang string

	root := &cobra.Command{
		Use:   "studydeck",
		Short: "Bilingual terminal dashboard for your Moodle sync server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				return nil
			}
			return app.I18n.SetLanguage(domain.ParseLanguage(lang))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("stdin is not a terminal; use a subcommand (see --help)")
			}
			return runTUI(app)
		},
	}

	root.PersistentFlags().StringVarP(&lang, "lang", "l", "", "UI language (he/en), overrides the stored preference")

	root.AddCommand(
		newSyncCmd(app),
		newCoursesCmd(app),
		newAssignmentsCmd(app),
		newExamsCmd(app),
	)

	return root
}

// runTUI starts the bubbletea program over the wired App.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
