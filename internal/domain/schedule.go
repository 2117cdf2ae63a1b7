package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScheduleItem is one weekly recurring class slot.
// Start and End are "HH:MM" times of day; End is exclusive.
type ScheduleItem struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// ScheduleDays lists weekday names in teaching-week order (Sunday first,
// matching the source institution's calendar).
var ScheduleDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// MinutesOfDay parses an "HH:MM" clock string into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minute in %q", clock)
	}
	return h*60 + m, nil
}

// Contains reports whether t falls inside the item's [Start, End) window
// on the item's weekday. Malformed times never match.
func (s *ScheduleItem) Contains(t time.Time) bool {
	if s.Day != t.Weekday().String() {
		return false
	}
	start, err := MinutesOfDay(s.Start)
	if err != nil {
		return false
	}
	end, err := MinutesOfDay(s.End)
	if err != nil {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	return now >= start && now < end
}
