package domain

import (
	"strings"
	"time"
)

// Assignment is a synced assignment snapshot as served by the API.
type Assignment struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	CourseName string     `json:"course_name"`
	DueDate    *time.Time `json:"due_date"`
	Submitted  bool       `json:"submitted"`
	Grade      string     `json:"grade,omitempty"`
	CmID       *int64     `json:"cmid,omitempty"`
	IsNew      bool       `json:"is_new,omitempty"`
}

// Graded reports whether the server recorded any grade for the assignment.
func (a *Assignment) Graded() bool { return strings.TrimSpace(a.Grade) != "" }

// DisplayGrade returns the score portion of a "score/max" grade string,
// trimmed. A grade with no "/" is returned as-is.
func (a *Assignment) DisplayGrade() string {
	grade := a.Grade
	if i := strings.Index(grade, "/"); i >= 0 {
		grade = grade[:i]
	}
	return strings.TrimSpace(grade)
}
