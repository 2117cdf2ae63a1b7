package derive

import "github.com/omripeer/studydeck/internal/domain"

// Pending filters to assignments that are unsubmitted, carry a due
// date, and are not hidden. Snapshot order is preserved; the server
// already returns assignments due-date ascending.
func Pending(assignments []domain.Assignment, hidden map[int64]bool) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range assignments {
		if a.Submitted || a.DueDate == nil || hidden[a.ID] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Graded filters to assignments with a recorded grade, snapshot order.
func Graded(assignments []domain.Assignment) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range assignments {
		if a.Graded() {
			out = append(out, a)
		}
	}
	return out
}
