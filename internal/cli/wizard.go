package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/omripeer/studydeck/internal/cli/formatter"
)

// studyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// examFormValues collects the fields of a manual exam entry.
type examFormValues struct {
	CourseName  string
	Date        string
	Time        string
	Location    string
	Description string
}

const examDateLayout = "02/01/2006"

// validateExamDate accepts a DD/MM/YYYY date string.
func validateExamDate(s string) error {
	if _, err := time.Parse(examDateLayout, s); err != nil {
		return fmt.Errorf("use DD/MM/YYYY format")
	}
	return nil
}

// validateExamTime accepts empty or an HH:MM clock string.
func validateExamTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// ParsedDate combines the date and optional time fields.
func (f *examFormValues) ParsedDate() (time.Time, error) {
	layout, value := examDateLayout, f.Date
	if f.Time != "" {
		layout, value = examDateLayout+" 15:04", f.Date+" "+f.Time
	}
	return time.ParseInLocation(layout, value, time.Local)
}

// wizardExamForm creates a huh form for manual exam entry.
func wizardExamForm(title string, values *examFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("Course name").
				Value(&values.CourseName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("course name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date").
				Placeholder("DD/MM/YYYY").
				Value(&values.Date).
				Validate(validateExamDate),
			huh.NewInput().
				Title("Time").
				Placeholder("HH:MM (optional)").
				Value(&values.Time).
				Validate(validateExamTime),
			huh.NewInput().
				Title("Location").
				Placeholder("optional").
				Value(&values.Location),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&values.Description),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}
