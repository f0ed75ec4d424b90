package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultPassingScore applies when a quiz has no explicit passing score
const DefaultPassingScore = 70

// QuestionType defines how a quiz question is answered
type QuestionType string

const (
	QuestionQCM        QuestionType = "qcm"
	QuestionVraiFaux   QuestionType = "vrai_faux"
	QuestionTexteLibre QuestionType = "texte_libre"
)

// IsValidQuestionType reports whether s is a known question type
func IsValidQuestionType(s string) bool {
	switch QuestionType(s) {
	case QuestionQCM, QuestionVraiFaux, QuestionTexteLibre:
		return true
	}
	return false
}

// Quiz gates the completion of one module (at most one quiz per module)
type Quiz struct {
	gorm.Model
	ModuleID     uint   `json:"module_id" gorm:"uniqueIndex;not null"`
	Title        string `json:"title" gorm:"not null"`
	PassingScore int    `json:"passing_score" gorm:"default:70"` // percentage
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}

// QuizQuestion represents one question of a quiz. Options is a JSON array of
// strings for choice questions; CorrectAnswer must equal one of them.
type QuizQuestion struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	QuestionType  QuestionType   `json:"question_type" gorm:"type:varchar(20);default:'qcm'"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"-" gorm:"not null"` // never leaked to learners
	SortOrder     int            `json:"sort_order" gorm:"default:0"`
	IsDeleted     bool           `gorm:"default:false" json:"-"`
}

// QuizAttempt records one submission of a quiz. Attempts are append-only:
// every submission inserts a new row and no row is ever updated.
type QuizAttempt struct {
	gorm.Model
	QuizID      uint           `json:"quiz_id" gorm:"index;not null"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Answers     datatypes.JSON `json:"answers"` // question id -> submitted answer
	Score       int            `json:"score"`   // 0..100
	Passed      bool           `json:"passed"`
	AttemptedAt time.Time      `json:"attempted_at"`
}
