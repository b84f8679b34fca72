package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	OwnerID     uuid.UUID   `json:"owner_id" gorm:"type:uuid;not null;index"`
	Owner       *User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	TimeEntries []TimeEntry `json:"time_entries,omitempty" gorm:"foreignKey:ProjectID"`
}
