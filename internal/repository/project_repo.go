package repository

import (
	"errors"

	"freelanceflow/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. The owner id must already be set to the
// caller by the service layer.
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// ListByUser returns the caller's projects, paginated by offset/limit.
func (r *ProjectRepository) ListByUser(userID uint, skip, limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("user_id = ?", userID).
		Offset(skip).Limit(limit).
		Find(&projects).Error
	return projects, err
}

// GetByUser returns the project only when it is owned by the given user.
// A project owned by someone else yields ErrNotFound, not a forbidden
// error, so existence is not leaked.
func (r *ProjectRepository) GetByUser(id, userID uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Patch applies the non-nil fields of the patch to the ownership-scoped
// project and returns the updated record. Fields left nil keep their
// stored values.
func (r *ProjectRepository) Patch(id, userID uint, patch *models.ProjectPatch) (*models.Project, error) {
	project, err := r.GetByUser(id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.ClientName != nil {
		project.ClientName = *patch.ClientName
	}
	if patch.Budget != nil {
		project.Budget = *patch.Budget
	}

	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes an ownership-scoped project together with its tasks and
// their time entries, children first, in one transaction.
func (r *ProjectRepository) Delete(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		taskIDs := tx.Model(&models.Task{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
