package domain

import "time"

// Resource is a downloadable course file as served by the API.
type Resource struct {
	ID          int64      `json:"id"`
	CourseID    int64      `json:"course_id"`
	Filename    string     `json:"filename"`
	Mimetype    string     `json:"mimetype"`
	Filesize    int64      `json:"filesize"`
	TimeCreated *time.Time `json:"time_created"`
	DownloadURL string     `json:"download_url"`
	Section     string     `json:"section,omitempty"`
	IsNew       bool       `json:"is_new,omitempty"`
}
