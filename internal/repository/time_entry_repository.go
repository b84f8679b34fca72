package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// TimeEntryRepository defines the storage operations needed by the timer state
// machine and the report aggregations.
type TimeEntryRepository interface {
	CreateEntry(entry *models.TimeEntry) error
	UpdateEntry(entry *models.TimeEntry) error
	FindActiveEntry(projectID uuid.UUID) (*models.TimeEntry, error)
	HasActiveEntry(projectID uuid.UUID) (bool, error)
	FindLatestEntry(projectID uuid.UUID) (*models.TimeEntry, error)
	FindEntriesInWindow(projectIDs []uuid.UUID, from, to time.Time) ([]models.TimeEntry, error)
	FindEntriesInYear(projectIDs []uuid.UUID, year int) ([]models.TimeEntry, error)
}

// TimeEntryRepositoryImpl provides methods to interact with the TimeEntry model in the database.
type TimeEntryRepositoryImpl struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new TimeEntryRepositoryImpl instance with the provided GORM database connection.
func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepositoryImpl {
	return &TimeEntryRepositoryImpl{db: db}
}

// CreateEntry creates a new TimeEntry in the database.
func (r *TimeEntryRepositoryImpl) CreateEntry(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// UpdateEntry updates an existing TimeEntry in the database.
func (r *TimeEntryRepositoryImpl) UpdateEntry(entry *models.TimeEntry) error {
	return r.db.Save(entry).Error
}

// FindActiveEntry retrieves the entry with a null end time for the given
// project. Returns gorm.ErrRecordNotFound when no timer is running.
func (r *TimeEntryRepositoryImpl) FindActiveEntry(projectID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.First(&entry, "project_id = ? AND end_time IS NULL", projectID).Error
	return &entry, err
}

// HasActiveEntry reports whether the project currently has a running timer.
func (r *TimeEntryRepositoryImpl) HasActiveEntry(projectID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TimeEntry{}).
		Where("project_id = ? AND end_time IS NULL", projectID).
		Count(&count).Error
	return count > 0, err
}

// FindLatestEntry retrieves the most recently started entry of the project.
func (r *TimeEntryRepositoryImpl) FindLatestEntry(projectID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.Where("project_id = ?", projectID).Order("start_time DESC").First(&entry).Error
	return &entry, err
}

// FindEntriesInWindow retrieves the entries of the given projects whose start
// time falls within [from, to], ordered by start time ascending. Projects and
// their owners are preloaded since the aggregations localize each entry to
// its owner's timezone.
func (r *TimeEntryRepositoryImpl) FindEntriesInWindow(projectIDs []uuid.UUID, from, to time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Preload("Project").Preload("Project.Owner").
		Where("project_id IN ?", projectIDs).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time ASC").
		Find(&entries).Error
	return entries, err
}

// FindEntriesInYear retrieves the entries of the given projects whose start
// time falls in the given UTC year, ordered by start time ascending.
func (r *TimeEntryRepositoryImpl) FindEntriesInYear(projectIDs []uuid.UUID, year int) ([]models.TimeEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var entries []models.TimeEntry
	err := r.db.Preload("Project").Preload("Project.Owner").
		Where("project_id IN ?", projectIDs).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&entries).Error
	return entries, err
}
