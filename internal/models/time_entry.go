package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry records one contiguous span of tracked work on a project. A nil
// EndTime means the timer is still running; at most one running entry may
// exist per project, enforced by a partial unique index on
// (project_id) WHERE end_time IS NULL.
type TimeEntry struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	Project   *Project   `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	StartTime time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime   *time.Time `json:"end_time" gorm:"index"`
}

// IsRunning reports whether the entry's timer is still open.
func (e *TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// Duration returns the closed span of the entry. The second return value is
// false while the entry is still running, since no duration can be computed.
func (e *TimeEntry) Duration() (time.Duration, bool) {
	if e.EndTime == nil {
		return 0, false
	}
	return e.EndTime.Sub(e.StartTime), true
}
