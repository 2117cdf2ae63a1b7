package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondayAt returns a time.Time on a known Monday at the given clock time.
func mondayAt(hour, min int) time.Time {
	// 2026-01-05 is a Monday.
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"10:00", 600, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"9:30", 570, false},
		{"10", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := MinutesOfDay(tt.clock)
		if tt.wantErr {
			assert.Error(t, err, tt.clock)
			continue
		}
		require.NoError(t, err, tt.clock)
		assert.Equal(t, tt.want, got, tt.clock)
	}
}

func TestScheduleItem_ContainsHalfOpenInterval(t *testing.T) {
	item := ScheduleItem{Day: "Monday", Start: "10:00", End: "12:00", Title: "Simulation"}

	assert.True(t, item.Contains(mondayAt(11, 30)))
	assert.True(t, item.Contains(mondayAt(10, 0)), "start is inclusive")
	assert.False(t, item.Contains(mondayAt(12, 0)), "end is exclusive")
	assert.False(t, item.Contains(mondayAt(9, 59)))
}

func TestScheduleItem_ContainsWrongDay(t *testing.T) {
	item := ScheduleItem{Day: "Tuesday", Start: "10:00", End: "12:00"}

	assert.False(t, item.Contains(mondayAt(11, 0)))
}

func TestScheduleItem_MalformedTimesNeverMatch(t *testing.T) {
	item := ScheduleItem{Day: "Monday", Start: "oops", End: "12:00"}

	assert.False(t, item.Contains(mondayAt(11, 0)))
}

func TestExam_Moed(t *testing.T) {
	a := Exam{CourseName: "Simulation", Description: "בניין 100 חדר 5"}
	b := Exam{CourseName: "Simulation", Description: "מועד ב - בניין 100"}
	empty := Exam{CourseName: "Simulation"}

	assert.Equal(t, MoedA, a.Moed())
	assert.Equal(t, MoedB, b.Moed())
	assert.Equal(t, MoedA, empty.Moed())
}
