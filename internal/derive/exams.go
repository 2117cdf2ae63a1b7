package derive

import (
	"sort"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
)

// dateOnly truncates t to local midnight.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysLeft returns the whole-day distance from now's date to the exam's
// date. 0 means the exam is today; negative means it has passed.
func DaysLeft(exam time.Time, now time.Time) int {
	return int(dateOnly(exam).Sub(dateOnly(now)).Hours() / 24)
}

// NextExam returns the earliest exam dated today or later, or nil.
// Comparison is date-only; an exam earlier today still counts.
func NextExam(exams []domain.Exam, now time.Time) *domain.Exam {
	upcoming := Upcoming(exams, now)
	if len(upcoming) == 0 {
		return nil
	}
	return &upcoming[0]
}

// Upcoming filters exams to those dated today or later, ascending.
func Upcoming(exams []domain.Exam, now time.Time) []domain.Exam {
	today := dateOnly(now)
	var out []domain.Exam
	for _, e := range exams {
		if !dateOnly(e.Date).Before(today) {
			out = append(out, e)
		}
	}
	sortByDate(out)
	return out
}

// SplitByMoed partitions exams into first and second sittings by the
// description marker, each group sorted ascending by date.
func SplitByMoed(exams []domain.Exam) (moedA, moedB []domain.Exam) {
	for _, e := range exams {
		if e.Moed() == domain.MoedB {
			moedB = append(moedB, e)
		} else {
			moedA = append(moedA, e)
		}
	}
	sortByDate(moedA)
	sortByDate(moedB)
	return moedA, moedB
}

func sortByDate(exams []domain.Exam) {
	sort.SliceStable(exams, func(i, j int) bool {
		return exams[i].Date.Before(exams[j].Date)
	})
}
