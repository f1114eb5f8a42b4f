package models

import (
	"time"

	"github.com/google/uuid"
)

type LoginEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LoginTime time.Time `gorm:"not null;index" json:"loginTime"`

	CreatedAt time.Time `json:"-"`
}
