package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// fakeEntryRepo is an in-memory TimeEntryRepository for service tests.
type fakeEntryRepo struct {
	entries []*models.TimeEntry
}

func (f *fakeEntryRepo) CreateEntry(entry *models.TimeEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeEntryRepo) UpdateEntry(entry *models.TimeEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEntryRepo) FindActiveEntry(projectID uuid.UUID) (*models.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ProjectID == projectID && e.EndTime == nil {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntryRepo) HasActiveEntry(projectID uuid.UUID) (bool, error) {
	_, err := f.FindActiveEntry(projectID)
	return err == nil, nil
}

func (f *fakeEntryRepo) FindLatestEntry(projectID uuid.UUID) (*models.TimeEntry, error) {
	var latest *models.TimeEntry
	for _, e := range f.entries {
		if e.ProjectID != projectID {
			continue
		}
		if latest == nil || e.StartTime.After(latest.StartTime) {
			latest = e
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeEntryRepo) FindEntriesInWindow(projectIDs []uuid.UUID, from, to time.Time) ([]models.TimeEntry, error) {
	ids := make(map[uuid.UUID]bool, len(projectIDs))
	for _, id := range projectIDs {
		ids[id] = true
	}

	var out []models.TimeEntry
	for _, e := range f.entries {
		if !ids[e.ProjectID] {
			continue
		}
		if e.StartTime.Before(from) || e.StartTime.After(to) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeEntryRepo) FindEntriesInYear(projectIDs []uuid.UUID, year int) ([]models.TimeEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return f.FindEntriesInWindow(projectIDs, from, to)
}

// fakeProjectRepo is an in-memory ProjectRepository for service tests.
type fakeProjectRepo struct {
	projects map[uuid.UUID]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*models.Project)}
}

func (f *fakeProjectRepo) CreateProject(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) GetProject(id uuid.UUID) (*models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

func (f *fakeProjectRepo) ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjectRepo) UpdateProject(project *models.Project) error {
	if _, ok := f.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) DeleteProject(id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

// newTestProject builds a project whose owner is configured with the given zone.
func newTestProject(name, timezone string) *models.Project {
	owner := &models.User{
		ID:       uuid.New(),
		Username: "tester",
		Email:    "tester@example.com",
		Timezone: timezone,
	}
	return &models.Project{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: owner.ID,
		Owner:   owner,
	}
}

// addClosedEntry records a finished entry on the project.
func addClosedEntry(repo *fakeEntryRepo, project *models.Project, start, end time.Time) *models.TimeEntry {
	entry := &models.TimeEntry{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Project:   project,
		UserID:    project.OwnerID,
		StartTime: start,
		EndTime:   &end,
	}
	repo.entries = append(repo.entries, entry)
	return entry
}

// addOpenEntry records a still-running entry on the project.
func addOpenEntry(repo *fakeEntryRepo, project *models.Project, start time.Time) *models.TimeEntry {
	entry := &models.TimeEntry{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Project:   project,
		UserID:    project.OwnerID,
		StartTime: start,
	}
	repo.entries = append(repo.entries, entry)
	return entry
}
