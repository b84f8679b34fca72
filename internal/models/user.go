package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the time-tracking application. Timezone holds
// an IANA zone name used to localize report dates; an empty value means UTC.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Timezone     string    `json:"timezone" gorm:"size:50;default:'UTC'"`
	DarkMode     bool      `json:"dark_mode" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Projects     []Project `json:"projects,omitempty" gorm:"foreignKey:OwnerID"`
}
