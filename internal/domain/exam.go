package domain

import (
	"strings"
	"time"
)

// Exam is one entry from the exam calendar. Description may carry a
// sitting marker ("מועד ב") distinguishing the second sitting.
type Exam struct {
	ID          int64     `json:"id"`
	CourseName  string    `json:"course_name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

const moedBMarker = "מועד ב"

// Moed classifies the exam sitting by the description marker.
// Absence of the marker means a first sitting.
func (e *Exam) Moed() ExamMoed {
	if strings.Contains(e.Description, moedBMarker) {
		return MoedB
	}
	return MoedA
}
