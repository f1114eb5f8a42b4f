package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt is append-only: created once per completed quiz and never
// mutated. Kept in its own table rather than embedded on User so admin
// aggregation can range-scan it directly.
type QuizAttempt struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	QuizType       string     `gorm:"size:20;not null;default:'topic'" json:"quizType"`
	Topic          string     `gorm:"size:255" json:"topic"`
	Score          int        `gorm:"not null" json:"score"`
	TotalQuestions int        `gorm:"not null" json:"totalQuestions"`
	QuizID         *uuid.UUID `gorm:"type:uuid" json:"quizId,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"date"`
}
