package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress.
// One row per (user, course). Completed is equivalent to ProgressPercent >= 100
// and CompletedAt is stamped exactly once, on the transition to completed.
type Enrollment struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID        uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	ProgressPercent int        `json:"progress_percent" gorm:"default:0"` // 0..100
	Completed       bool       `json:"completed" gorm:"default:false"`
	CompletedAt     *time.Time `json:"completed_at"`
	EnrolledAt      time.Time  `json:"enrolled_at"`
	IsDeleted       bool       `gorm:"default:false" json:"-"`
}
