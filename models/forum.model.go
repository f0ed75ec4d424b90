package models

import "gorm.io/gorm"

// ForumTopic represents a discussion thread opened by a learner
type ForumTopic struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ForumReply represents an answer within a topic
type ForumReply struct {
	gorm.Model
	TopicID   uint   `json:"topic_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Content   string `json:"content" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
