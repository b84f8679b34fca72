package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetrack-service/internal/localization"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// LastStartedFormat is the display format of a project's last start time,
// rendered in the owner's timezone.
const LastStartedFormat = "2006-01-02 03:04:05 PM"

// TimerService drives the start/stop state machine on a project's active
// entry. A project is RUNNING while exactly one of its entries has a null end
// time and IDLE otherwise; the partial unique index on time_entries keeps
// concurrent starts from ever creating a second active entry.
type TimerService struct {
	projects repository.ProjectRepository
	entries  repository.TimeEntryRepository
}

// NewTimerService creates a new TimerService on top of the given repositories.
func NewTimerService(projects repository.ProjectRepository, entries repository.TimeEntryRepository) *TimerService {
	return &TimerService{
		projects: projects,
		entries:  entries,
	}
}

// StartTimer opens a new entry on the project starting at now, attributed to
// the project owner. Starting while a timer is already running is a no-op:
// the existing active entry is returned and started is false.
func (s *TimerService) StartTimer(projectID uuid.UUID, now time.Time) (entry *models.TimeEntry, started bool, err error) {
	active, err := s.entries.FindActiveEntry(projectID)
	if err == nil {
		return active, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, errors.Wrap(err, "finding active entry")
	}

	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, false, errors.Wrap(err, "loading project")
	}

	entry = &models.TimeEntry{
		ProjectID: project.ID,
		UserID:    project.OwnerID,
		StartTime: now.UTC(),
	}
	if err := s.entries.CreateEntry(entry); err != nil {
		return nil, false, errors.Wrap(err, "creating time entry")
	}
	return entry, true, nil
}

// StopTimer closes the project's active entry at now. Stopping an idle
// project returns ErrNoActiveTimer.
func (s *TimerService) StopTimer(projectID uuid.UUID, now time.Time) (*models.TimeEntry, error) {
	active, err := s.entries.FindActiveEntry(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveTimer
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding active entry")
	}

	end := now.UTC()
	active.EndTime = &end
	if err := s.entries.UpdateEntry(active); err != nil {
		return nil, errors.Wrap(err, "closing time entry")
	}
	return active, nil
}

// IsActive reports whether the project currently has a running timer.
func (s *TimerService) IsActive(projectID uuid.UUID) (bool, error) {
	return s.entries.HasActiveEntry(projectID)
}

// LastStartedAt returns the start time of the project's most recent entry,
// converted to the owner's timezone and formatted for display. A project with
// no entries yields ErrNoTimeEntries.
func (s *TimerService) LastStartedAt(projectID uuid.UUID) (string, error) {
	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return "", errors.Wrap(err, "loading project")
	}

	latest, err := s.entries.FindLatestEntry(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoTimeEntries
	}
	if err != nil {
		return "", errors.Wrap(err, "finding latest entry")
	}

	local, err := localization.ConvertToUserTime(latest.StartTime, project.Owner)
	if err != nil {
		return "", err
	}
	log.Printf("Project %s last started at %s (UTC), %s (owner local)",
		projectID, latest.StartTime.Format(time.RFC3339), local.Format(time.RFC3339))
	return local.Format(LastStartedFormat), nil
}
