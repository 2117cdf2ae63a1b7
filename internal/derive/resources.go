package derive

import (
	"sort"

	"github.com/omripeer/studydeck/internal/domain"
)

// CourseGroup pairs a course with its visible new resources.
type CourseGroup struct {
	Course    domain.Course
	Resources []domain.Resource
}

// WhatsNew groups the new-resources snapshot per course for the
// dashboard. Resources reference courses by Moodle id; the hidden set
// is keyed by the course's own id. Hidden courses are dropped
// entirely; resources the user marked as seen are filtered out.
// Courses with nothing left still appear so the view can show a
// per-course empty state and notebook shortcut. Within each course,
// resources sort newest first; entries without a creation time sort
// as oldest.
func WhatsNew(courses []domain.Course, resources []domain.Resource, completed, hiddenCourses map[int64]bool) []CourseGroup {
	byCourse := make(map[int64][]domain.Resource)
	for _, r := range resources {
		if completed[r.ID] {
			continue
		}
		byCourse[r.CourseID] = append(byCourse[r.CourseID], r)
	}

	var out []CourseGroup
	for _, c := range courses {
		if hiddenCourses[c.ID] {
			continue
		}
		group := CourseGroup{Course: c, Resources: byCourse[c.MoodleID]}
		sortNewestFirst(group.Resources)
		out = append(out, group)
	}
	return out
}

// CoursesWithResources returns the courses that own at least one
// resource in the snapshot, in snapshot order. The materials page
// lists these for drill-down.
func CoursesWithResources(courses []domain.Course, resources []domain.Resource) []domain.Course {
	owning := make(map[int64]bool)
	for _, r := range resources {
		owning[r.CourseID] = true
	}
	var out []domain.Course
	for _, c := range courses {
		if owning[c.MoodleID] {
			out = append(out, c)
		}
	}
	return out
}

// Section is one labeled slice of a course's material list.
type Section struct {
	Label     string
	Resources []domain.Resource
}

// BySection groups one course's resources by section label in
// first-seen order, substituting generalLabel when a resource has no
// section. No completion or hidden filtering applies here; the
// materials page shows everything.
func BySection(resources []domain.Resource, courseID int64, generalLabel string) []Section {
	var out []Section
	index := make(map[string]int)
	for _, r := range resources {
		if r.CourseID != courseID {
			continue
		}
		label := r.Section
		if label == "" {
			label = generalLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, Section{Label: label})
		}
		out[i].Resources = append(out[i].Resources, r)
	}
	return out
}

func sortNewestFirst(resources []domain.Resource) {
	sort.SliceStable(resources, func(i, j int) bool {
		a, b := resources[i].TimeCreated, resources[j].TimeCreated
		if a == nil {
			return false // missing timestamps sort oldest
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
