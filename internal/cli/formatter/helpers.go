package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// FileSize returns a human-friendly size label such as "1.4 MB".
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "--"
	}
	return humanize.Bytes(uint64(bytes))
}

// FileGlyph returns a glyph for a resource mimetype.
func FileGlyph(mimetype string) string {
	switch {
	case strings.Contains(mimetype, "pdf"):
		return StyleRed.Render("▤")
	case strings.HasPrefix(mimetype, "image/"):
		return StylePurple.Render("▣")
	case strings.HasPrefix(mimetype, "video/"):
		return StyleBlue.Render("▶")
	case strings.Contains(mimetype, "zip"), strings.Contains(mimetype, "compressed"):
		return StyleYellow.Render("◳")
	case strings.Contains(mimetype, "word"), strings.Contains(mimetype, "document"):
		return StyleBlue.Render("▤")
	case strings.Contains(mimetype, "sheet"), strings.Contains(mimetype, "excel"):
		return StyleGreen.Render("▤")
	case strings.Contains(mimetype, "presentation"), strings.Contains(mimetype, "powerpoint"):
		return StyleYellow.Render("▤")
	default:
		return StyleDim.Render("▢")
	}
}

// DaysLeftStyle returns the urgency style for a days-until-deadline count.
// Negative means the deadline has passed.
func DaysLeftStyle(days int) lipgloss.Style {
	switch {
	case days < 0:
		return StyleDim
	case days <= 2:
		return StyleRed
	case days <= 7:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[✓]")
	}
	return StyleDim.Render("[ ]")
}

// NewBadge renders the marker for server-flagged new items.
func NewBadge() string {
	return StyleYellow.Render("●")
}

// ClockRange renders a "HH:MM-HH:MM" time range.
func ClockRange(start, end string) string {
	return StyleFg.Render(start) + StyleDim.Render("-") + StyleFg.Render(end)
}

// HumanTimestamp returns a relative timestamp such as "5m ago".
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// Truncate shortens s to at most width runes, adding an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// PadRight pads s with spaces to the given visible width.
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
