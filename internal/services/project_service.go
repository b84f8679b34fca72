package services

import (
	"github.com/google/uuid"

	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

type ProjectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(project *models.Project) error {
	return s.repo.CreateProject(project)
}

func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	return s.repo.GetProject(id)
}

func (s *ProjectService) ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	return s.repo.ListProjectsByOwner(ownerID)
}

func (s *ProjectService) UpdateProject(project *models.Project) error {
	return s.repo.UpdateProject(project)
}

// DeleteProject removes the project and all of its time entries.
func (s *ProjectService) DeleteProject(id uuid.UUID) error {
	return s.repo.DeleteProject(id)
}
