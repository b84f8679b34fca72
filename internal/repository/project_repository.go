package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
)

// ProjectRepository defines storage operations on projects.
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id uuid.UUID) error
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepositoryImpl) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID along with its owner.
func (r *ProjectRepositoryImpl) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Owner").First(&project, "id = ?", id).Error
	return &project, err
}

// ListProjectsByOwner retrieves all Projects belonging to the given user.
func (r *ProjectRepositoryImpl) ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Owner").Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&projects).Error
	return projects, err
}

// UpdateProject updates an existing Project in the database.
func (r *ProjectRepositoryImpl) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProject deletes a Project by its ID from the database.
func (r *ProjectRepositoryImpl) DeleteProject(id uuid.UUID) error {
	// First delete all time entries of the project
	if err := r.db.Where("project_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
		return err
	}
	// Then delete the project
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
