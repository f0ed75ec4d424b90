package course

import "gorm.io/gorm"

// Module represents one section of a course. SortOrder defines the reading
// sequence inside the course.
type Module struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Content         string `json:"content" gorm:"type:text"` // markdown
	SortOrder       int    `json:"sort_order" gorm:"default:0"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	VideoURL        string `json:"video_url"`
	PdfURL          string `json:"pdf_url"`
	ImageURL        string `json:"image_url"`
	IsDeleted       bool   `gorm:"default:false" json:"-"`
}
