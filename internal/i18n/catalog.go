package i18n

import "github.com/omripeer/studydeck/internal/domain"

// Catalog is the full set of UI strings for one language.
type Catalog struct {
	AppName string

	// Navigation
	Dashboard   string
	Assignments string
	Exams       string
	Courses     string
	Materials   string
	Notebooks   string
	Schedule    string

	// Actions
	Sync     string
	Syncing  string
	Download string
	Open     string
	Hide     string
	Show     string
	Undo     string
	Dismiss  string
	AddExam  string
	Delete   string

	// Dashboard
	WhatsNew           string
	CurrentlyInClass   string
	LiveNow            string
	PendingAssignments string
	Pending            string
	AllCaughtUp        string
	NoNewMaterials     string
	HiddenCourses      string
	MarkedDone         string
	AssignmentHidden   string

	// Assignments
	DueDate      string
	NewBadge     string
	Submitted    string
	NotSubmitted string
	Grades       string
	ShowGrades   string
	HideGrades   string

	// Exams
	NextExam  string
	MoedA     string
	MoedB     string
	Today     string
	Tomorrow  string
	DaysLeft  string // Sprintf format, one %d
	Passed    string
	NoExams   string

	// Courses
	MyCourses    string
	Progress     string
	OpenNotebook string

	// Materials
	AllCourses  string
	General     string
	DownloadZip string

	// Schedule
	WeeklySchedule string
	NoClasses      string
	Days           map[string]string

	// States
	Loading         string
	NoData          string
	ClickSyncToGo   string
	Error           string
	LastSync        string
	Location        string
	Type            string
}

var catalogs = map[domain.Language]Catalog{
	domain.LangHebrew: {
		AppName: "Moodle Organizer",

		Dashboard:   "דשבורד",
		Assignments: "מטלות",
		Exams:       "בחינות",
		Courses:     "הקורסים שלי",
		Materials:   "חומרי לימוד",
		Notebooks:   "מחברות",
		Schedule:    "מערכת שעות",

		Sync:     "סנכרון",
		Syncing:  "מסנכרן...",
		Download: "הורדה",
		Open:     "פתח",
		Hide:     "הסתר",
		Show:     "הצג",
		Undo:     "ביטול",
		Dismiss:  "סגור",
		AddExam:  "הוספת בחינה",
		Delete:   "מחיקה",

		WhatsNew:           "מה חדש",
		CurrentlyInClass:   "כעת בלמידה",
		LiveNow:            "פעיל כעת",
		PendingAssignments: "מטלות שמחכות להגשה",
		Pending:            "ממתינות",
		AllCaughtUp:        "כל הקבצים נצפו!",
		NoNewMaterials:     "אין קבצים חדשים",
		HiddenCourses:      "קורסים מוסתרים",
		MarkedDone:         "סומן כנצפה",
		AssignmentHidden:   "המטלה הוסתרה",

		DueDate:      "תאריך הגשה",
		NewBadge:     "חדש!",
		Submitted:    "הוגש",
		NotSubmitted: "לא הוגש",
		Grades:       "ציונים",
		ShowGrades:   "הצג ציונים",
		HideGrades:   "הסתר ציונים",

		NextExam: "הבחינה הבאה",
		MoedA:    "מועד א",
		MoedB:    "מועד ב",
		Today:    "היום",
		Tomorrow: "מחר",
		DaysLeft: "עוד %d ימים",
		Passed:   "עבר",
		NoExams:  "אין בחינות קרובות",

		MyCourses:    "הקורסים שלי",
		Progress:     "התקדמות",
		OpenNotebook: "פתח מחברת",

		AllCourses:  "כל הקורסים",
		General:     "כללי",
		DownloadZip: "הורדת הכל",

		WeeklySchedule: "מערכת שעות שבועית",
		NoClasses:      "אין שיעורים",
		Days: map[string]string{
			"Sunday":    "ראשון",
			"Monday":    "שני",
			"Tuesday":   "שלישי",
			"Wednesday": "רביעי",
			"Thursday":  "חמישי",
			"Friday":    "שישי",
			"Saturday":  "שבת",
		},

		Loading:       "טוען...",
		NoData:        "אין נתונים להצגה",
		ClickSyncToGo: "לחץ על כפתור הסנכרון להתחלה",
		Error:         "שגיאה",
		LastSync:      "סנכרון אחרון",
		Location:      "מיקום",
		Type:          "סוג",
	},

	domain.LangEnglish: {
		AppName: "Moodle Organizer",

		Dashboard:   "Dashboard",
		Assignments: "Assignments",
		Exams:       "Exams",
		Courses:     "My Courses",
		Materials:   "Materials",
		Notebooks:   "Notebooks",
		Schedule:    "Schedule",

		Sync:     "Sync",
		Syncing:  "Syncing...",
		Download: "Download",
		Open:     "Open",
		Hide:     "Hide",
		Show:     "Show",
		Undo:     "Undo",
		Dismiss:  "Dismiss",
		AddExam:  "Add Exam",
		Delete:   "Delete",

		WhatsNew:           "What's New",
		CurrentlyInClass:   "Currently in Class",
		LiveNow:            "Live Now",
		PendingAssignments: "Pending Assignments",
		Pending:            "pending",
		AllCaughtUp:        "All caught up!",
		NoNewMaterials:     "No new materials",
		HiddenCourses:      "Hidden Courses",
		MarkedDone:         "Marked as seen",
		AssignmentHidden:   "Assignment hidden",

		DueDate:      "Due Date",
		NewBadge:     "New!",
		Submitted:    "Submitted",
		NotSubmitted: "Not Submitted",
		Grades:       "Grades",
		ShowGrades:   "Show Grades",
		HideGrades:   "Hide Grades",

		NextExam: "Next Exam",
		MoedA:    "Moed A",
		MoedB:    "Moed B",
		Today:    "Today",
		Tomorrow: "Tomorrow",
		DaysLeft: "%d days left",
		Passed:   "Passed",
		NoExams:  "No upcoming exams",

		MyCourses:    "My Courses",
		Progress:     "Progress",
		OpenNotebook: "Open Notebook",

		AllCourses:  "All Courses",
		General:     "General",
		DownloadZip: "Download All",

		WeeklySchedule: "Weekly Schedule",
		NoClasses:      "No Classes",
		Days: map[string]string{
			"Sunday":    "Sunday",
			"Monday":    "Monday",
			"Tuesday":   "Tuesday",
			"Wednesday": "Wednesday",
			"Thursday":  "Thursday",
			"Friday":    "Friday",
			"Saturday":  "Saturday",
		},

		Loading:       "Loading...",
		NoData:        "No data to display",
		ClickSyncToGo: "Press 's' to sync and get started",
		Error:         "Error",
		LastSync:      "Last sync",
		Location:      "Location",
		Type:          "Type",
	},
}

// Lookup returns the catalog for the language, falling back to Hebrew.
func Lookup(lang domain.Language) Catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[domain.LangHebrew]
}
