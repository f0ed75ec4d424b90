package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost represents an article on the public blog
type BlogPost struct {
	gorm.Model
	AuthorID     uint       `json:"author_id" gorm:"index"`
	Title        string     `json:"title" gorm:"not null"`
	Slug         string     `json:"slug" gorm:"unique;not null"`
	Content      string     `json:"content" gorm:"type:text"` // markdown
	ThumbnailURL string     `json:"thumbnail_url"`
	IsPublished  bool       `json:"is_published" gorm:"default:false"`
	PublishedAt  *time.Time `json:"published_at"`
	IsDeleted    bool       `gorm:"default:false" json:"-"`
}
