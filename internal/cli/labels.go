package cli

import (
	"fmt"
	"time"

	"github.com/omripeer/studydeck/internal/cli/formatter"
	"github.com/omripeer/studydeck/internal/derive"
	"github.com/omripeer/studydeck/internal/i18n"
)

// daysLeftLabel renders the countdown label for an exam date.
func daysLeftLabel(cat i18n.Catalog, examDate, now time.Time) string {
	days := derive.DaysLeft(examDate, now)
	var text string
	switch {
	case days < 0:
		text = cat.Passed
	case days == 0:
		text = cat.Today
	case days == 1:
		text = cat.Tomorrow
	default:
		text = fmt.Sprintf(cat.DaysLeft, days)
	}
	return formatter.DaysLeftStyle(days).Render(text)
}

// errorLine renders a per-section fetch error. Failing collections show
// their own error while the rest of the page renders normally.
func errorLine(cat i18n.Catalog, err error) string {
	return formatter.StyleRed.Render(cat.Error + ": " + err.Error())
}
