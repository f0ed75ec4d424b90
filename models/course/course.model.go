package course

import "gorm.io/gorm"

// CourseLevel defines the difficulty of a course
type CourseLevel string

const (
	LevelDebutant      CourseLevel = "debutant"
	LevelIntermediaire CourseLevel = "intermediaire"
	LevelAvance        CourseLevel = "avance"
)

// IsValidLevel reports whether s is a known course level
func IsValidLevel(s string) bool {
	switch CourseLevel(s) {
	case LevelDebutant, LevelIntermediaire, LevelAvance:
		return true
	}
	return false
}

// CourseFormat defines the primary delivery format of a course
type CourseFormat string

const (
	FormatVideo CourseFormat = "video"
	FormatPdf   CourseFormat = "pdf"
	FormatTexte CourseFormat = "texte"
	FormatQuiz  CourseFormat = "quiz"
	FormatLive  CourseFormat = "live"
)

// IsValidFormat reports whether s is a known course format
func IsValidFormat(s string) bool {
	switch CourseFormat(s) {
	case FormatVideo, FormatPdf, FormatTexte, FormatQuiz, FormatLive:
		return true
	}
	return false
}

// Course represents a learning course of the catalogue
type Course struct {
	gorm.Model
	Title           string       `json:"title" gorm:"not null"`
	Description     string       `json:"description" gorm:"type:text"`
	Level           CourseLevel  `json:"level" gorm:"type:varchar(20);default:'debutant'"`
	Sector          string       `json:"sector" gorm:"type:varchar(30);index"`
	Format          CourseFormat `json:"format" gorm:"type:varchar(20);default:'texte'"`
	DurationMinutes int          `json:"duration_minutes" gorm:"default:0"`
	ThumbnailURL    string       `json:"thumbnail_url"`
	SortOrder       int          `json:"sort_order" gorm:"default:0"`
	IsPublished     bool         `json:"is_published" gorm:"default:false"`
	IsDeleted       bool         `gorm:"default:false" json:"-"`
}
