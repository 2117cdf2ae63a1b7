package derive

import (
	"testing"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday returns 2026-01-05 (a Monday) at the given clock time.
func monday(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestCurrentClass_MatchesWithinWindow(t *testing.T) {
	schedule := []domain.ScheduleItem{
		{Day: "Monday", Start: "10:00", End: "12:00", Title: "Simulation"},
	}

	got := CurrentClass(schedule, monday(11, 30))
	require.NotNil(t, got)
	assert.Equal(t, "Simulation", got.Title)
}

func TestCurrentClass_EndIsExclusive(t *testing.T) {
	schedule := []domain.ScheduleItem{
		{Day: "Monday", Start: "10:00", End: "12:00", Title: "Simulation"},
	}

	assert.Nil(t, CurrentClass(schedule, monday(12, 0)))
	assert.NotNil(t, CurrentClass(schedule, monday(10, 0)))
}

func TestCurrentClass_NoMatchOnOtherDay(t *testing.T) {
	schedule := []domain.ScheduleItem{
		{Day: "Tuesday", Start: "10:00", End: "12:00", Title: "Algorithms"},
	}

	assert.Nil(t, CurrentClass(schedule, monday(11, 0)))
}

func TestCurrentClass_FirstMatchWinsOnOverlap(t *testing.T) {
	schedule := []domain.ScheduleItem{
		{Day: "Monday", Start: "10:00", End: "12:00", Title: "First"},
		{Day: "Monday", Start: "11:00", End: "13:00", Title: "Second"},
	}

	got := CurrentClass(schedule, monday(11, 30))
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Title)
}

func TestCurrentClass_EmptySchedule(t *testing.T) {
	assert.Nil(t, CurrentClass(nil, monday(11, 0)))
}

func TestByDay(t *testing.T) {
	schedule := []domain.ScheduleItem{
		{Day: "Monday", Start: "10:00", End: "12:00", Title: "A"},
		{Day: "Tuesday", Start: "09:00", End: "10:00", Title: "B"},
		{Day: "Monday", Start: "14:00", End: "16:00", Title: "C"},
	}

	got := ByDay(schedule, "Monday")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "C", got[1].Title)
	assert.Empty(t, ByDay(schedule, "Friday"))
}
