package derive

import (
	"testing"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day int) *time.Time {
	t := time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func testCourses() []domain.Course {
	// Resources reference courses by MoodleID, not by the row id.
	return []domain.Course{
		{ID: 1, MoodleID: 1, Fullname: "111 - קורס אחד111 - Course One"},
		{ID: 2, MoodleID: 2, Fullname: "222 - קורס שני222 - Course Two"},
	}
}

func TestWhatsNew_FiltersCompletedResources(t *testing.T) {
	resources := []domain.Resource{
		{ID: 10, CourseID: 1, Filename: "a.pdf", TimeCreated: ts(1)},
		{ID: 11, CourseID: 1, Filename: "b.pdf", TimeCreated: ts(2)},
	}
	completed := map[int64]bool{10: true}

	groups := WhatsNew(testCourses(), resources, completed, nil)
	require.Len(t, groups, 2)
	require.Len(t, groups[0].Resources, 1)
	assert.Equal(t, "b.pdf", groups[0].Resources[0].Filename)
}

func TestWhatsNew_HiddenCourseDropped(t *testing.T) {
	resources := []domain.Resource{
		{ID: 10, CourseID: 1, Filename: "a.pdf", TimeCreated: ts(1)},
		{ID: 20, CourseID: 2, Filename: "z.pdf", TimeCreated: ts(1)},
	}
	hidden := map[int64]bool{1: true}

	groups := WhatsNew(testCourses(), resources, nil, hidden)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(2), groups[0].Course.ID)
}

func TestWhatsNew_EmptyCourseStillListed(t *testing.T) {
	groups := WhatsNew(testCourses(), nil, nil, nil)

	require.Len(t, groups, 2)
	assert.Empty(t, groups[0].Resources)
	assert.Empty(t, groups[1].Resources)
}

func TestWhatsNew_SortsNewestFirstWithMissingTimestampsOldest(t *testing.T) {
	resources := []domain.Resource{
		{ID: 1, CourseID: 1, Filename: "old.pdf", TimeCreated: ts(1)},
		{ID: 2, CourseID: 1, Filename: "undated.pdf"},
		{ID: 3, CourseID: 1, Filename: "new.pdf", TimeCreated: ts(9)},
	}

	groups := WhatsNew(testCourses(), resources, nil, nil)
	require.Len(t, groups[0].Resources, 3)
	assert.Equal(t, "new.pdf", groups[0].Resources[0].Filename)
	assert.Equal(t, "old.pdf", groups[0].Resources[1].Filename)
	assert.Equal(t, "undated.pdf", groups[0].Resources[2].Filename)
}

func TestCoursesWithResources(t *testing.T) {
	resources := []domain.Resource{
		{ID: 10, CourseID: 2, Filename: "z.pdf"},
	}

	got := CoursesWithResources(testCourses(), resources)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestBySection_GroupsWithGeneralDefault(t *testing.T) {
	resources := []domain.Resource{
		{ID: 1, CourseID: 1, Filename: "a.pdf", Section: "Week 1"},
		{ID: 2, CourseID: 1, Filename: "b.pdf"},
		{ID: 3, CourseID: 1, Filename: "c.pdf", Section: "Week 1"},
		{ID: 4, CourseID: 2, Filename: "other.pdf"},
	}

	sections := BySection(resources, 1, "General")
	require.Len(t, sections, 2)

	assert.Equal(t, "Week 1", sections[0].Label)
	assert.Len(t, sections[0].Resources, 2)
	assert.Equal(t, "General", sections[1].Label)
	assert.Len(t, sections[1].Resources, 1)
}

func TestBySection_NoCompletionFilter(t *testing.T) {
	// The materials page shows the full set; completion state is a
	// dashboard-only concern.
	resources := []domain.Resource{
		{ID: 1, CourseID: 1, Filename: "seen.pdf"},
	}

	sections := BySection(resources, 1, "General")
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Resources, 1)
}
