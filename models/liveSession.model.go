package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionStatus defines the lifecycle of a live session
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionLive      SessionStatus = "live"
	SessionEnded     SessionStatus = "ended"
	SessionCancelled SessionStatus = "cancelled"
)

// LiveSession represents a scheduled live training session
type LiveSession struct {
	gorm.Model
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text"`
	MeetingURL  string        `json:"meeting_url"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      SessionStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	IsDeleted   bool          `gorm:"default:false" json:"-"`
}
