package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is immutable once its Quiz is persisted. CorrectAnswer is expected
// to equal one of the four options; scoring assumes this but does not enforce it.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type Quiz struct {
	ID        uuid.UUID                     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string                        `gorm:"size:255;not null" json:"title"`
	Questions datatypes.JSONSlice[Question] `gorm:"not null" json:"questions"`
	TimeLimit int                           `gorm:"not null" json:"timeLimit"`
	CreatedBy uuid.UUID                     `gorm:"type:uuid;not null;index" json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
