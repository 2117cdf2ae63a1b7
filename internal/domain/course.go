package domain

import (
	"regexp"
	"strings"
)

// Course is a synced course snapshot as served by the API.
// Fullname is a composite bilingual string; see LocalizedName.
type Course struct {
	ID          int64  `json:"id"`
	MoodleID    int64  `json:"moodle_id"`
	Fullname    string `json:"fullname"`
	Shortname   string `json:"shortname"`
	Progress    int    `json:"progress"`
	NotebookURL string `json:"notebook_url,omitempty"`
}

// HasNotebook reports whether the course carries a linked notebook.
func (c *Course) HasNotebook() bool { return c.NotebookURL != "" }

var (
	leadingCodePattern   = regexp.MustCompile(`^(\d+)`)
	leadingPrefixPattern = regexp.MustCompile(`^\d+\s*-\s*`)
)

// LocalizedName extracts the requested language variant from a composite
// bilingual course name of the form
//
//	"0571311001 - סימולציה0571311001 - Simulation"
//
// The leading numeric course code delimits the two variants: splitting on
// the code yields the Hebrew segment first and the English segment second.
// When the name has no leading code, it is returned unchanged; when the
// code occurs only once, the single "code - " prefix is stripped and the
// remainder is returned for either language.
func LocalizedName(fullname string, lang Language) string {
	code := leadingCodePattern.FindString(fullname)
	if code == "" {
		return fullname
	}

	var parts []string
	for _, p := range strings.Split(fullname, code) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) >= 2 {
		hebrew := strings.TrimSpace(strings.TrimLeft(parts[0], " -"))
		english := strings.TrimSpace(strings.TrimLeft(parts[1], " -"))
		if lang == LangEnglish {
			return english
		}
		return hebrew
	}

	return strings.TrimSpace(leadingPrefixPattern.ReplaceAllString(fullname, ""))
}

// CourseCode returns the leading numeric course code, or "" when absent.
func CourseCode(fullname string) string {
	return leadingCodePattern.FindString(fullname)
}
