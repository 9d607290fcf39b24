package service

import (
	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create persists a new project owned by the caller.
func (s *ProjectService) Create(project *models.Project) error {
	return s.projectRepo.Create(project)
}

// ListMine returns the caller's projects with offset/limit pagination.
func (s *ProjectService) ListMine(userID uint, skip, limit int) ([]models.Project, error) {
	return s.projectRepo.ListByUser(userID, skip, limit)
}

// Get returns one of the caller's projects.
func (s *ProjectService) Get(id, userID uint) (*models.Project, error) {
	return s.projectRepo.GetByUser(id, userID)
}

// Update applies a partial update to one of the caller's projects.
func (s *ProjectService) Update(id, userID uint, patch *models.ProjectPatch) (*models.Project, error) {
	return s.projectRepo.Patch(id, userID, patch)
}

// Delete removes one of the caller's projects, cascading to its tasks
// and their time entries.
func (s *ProjectService) Delete(id, userID uint) error {
	return s.projectRepo.Delete(id, userID)
}
