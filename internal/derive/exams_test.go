package derive

import (
	"testing"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examNow = time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

func examOn(name string, date time.Time, desc string) domain.Exam {
	return domain.Exam{CourseName: name, Date: date, Description: desc}
}

func TestNextExam_PrefersTodayOverLaterDates(t *testing.T) {
	exams := []domain.Exam{
		examOn("Past", examNow.AddDate(0, 0, -1), ""),
		examOn("Soon", examNow.AddDate(0, 0, 3), ""),
		examOn("Now", examNow.Add(-6*time.Hour), ""), // earlier today
	}

	got := NextExam(exams, examNow)
	require.NotNil(t, got)
	assert.Equal(t, "Now", got.CourseName)
	assert.Equal(t, 0, DaysLeft(got.Date, examNow), "today is 0 days left, not 1")
}

func TestNextExam_NoUpcoming(t *testing.T) {
	exams := []domain.Exam{
		examOn("Past", examNow.AddDate(0, 0, -10), ""),
	}

	assert.Nil(t, NextExam(exams, examNow))
	assert.Nil(t, NextExam(nil, examNow))
}

func TestUpcoming_SortedAscending(t *testing.T) {
	exams := []domain.Exam{
		examOn("C", examNow.AddDate(0, 0, 9), ""),
		examOn("A", examNow.AddDate(0, 0, 1), ""),
		examOn("B", examNow.AddDate(0, 0, 4), ""),
		examOn("Gone", examNow.AddDate(0, 0, -2), ""),
	}

	got := Upcoming(exams, examNow)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].CourseName)
	assert.Equal(t, "B", got[1].CourseName)
	assert.Equal(t, "C", got[2].CourseName)
}

func TestDaysLeft_DateGranularity(t *testing.T) {
	// 23:50 today to 00:10 tomorrow is one day at date granularity.
	late := time.Date(2026, 2, 10, 23, 50, 0, 0, time.UTC)
	earlyNext := time.Date(2026, 2, 11, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysLeft(earlyNext, late))
	assert.Equal(t, 0, DaysLeft(late, late))
	assert.Equal(t, -1, DaysLeft(late.AddDate(0, 0, -1), late))
}

func TestSplitByMoed(t *testing.T) {
	exams := []domain.Exam{
		examOn("Sim B", examNow.AddDate(0, 0, 30), "מועד ב - בניין 100"),
		examOn("Alg A", examNow.AddDate(0, 0, 5), ""),
		examOn("Sim A", examNow.AddDate(0, 0, 2), "בניין 100"),
		examOn("Alg B", examNow.AddDate(0, 0, 20), "מועד ב"),
	}

	moedA, moedB := SplitByMoed(exams)

	require.Len(t, moedA, 2)
	assert.Equal(t, "Sim A", moedA[0].CourseName, "each group sorts ascending")
	assert.Equal(t, "Alg A", moedA[1].CourseName)

	require.Len(t, moedB, 2)
	assert.Equal(t, "Alg B", moedB[0].CourseName)
	assert.Equal(t, "Sim B", moedB[1].CourseName)
}
