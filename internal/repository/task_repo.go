package repository

import (
	"errors"

	"freelanceflow/internal/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task after verifying the target project belongs
// to the same user, and bumps the project's task counters in the same
// transaction. A project owned by someone else yields ErrNotFound.
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		err := tx.Where("id = ? AND user_id = ?", task.ProjectID, task.UserID).First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Create(task).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"total_tasks": gorm.Expr("total_tasks + 1"),
		}
		if task.Status == models.TaskCompleted {
			updates["completed_tasks"] = gorm.Expr("completed_tasks + 1")
		}
		return tx.Model(&models.Project{}).Where("id = ?", task.ProjectID).
			Updates(updates).Error
	})
}

// ListByUser returns the caller's tasks, paginated by offset/limit.
func (r *TaskRepository) ListByUser(userID uint, skip, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ?", userID).
		Offset(skip).Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// GetByUser returns the task only when it is owned by the given user.
func (r *TaskRepository) GetByUser(id, userID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Patch applies the non-nil fields of the patch to the ownership-scoped
// task. A status change into or out of completed adjusts the owning
// project's completed counter inside the same transaction.
func (r *TaskRepository) Patch(id, userID uint, patch *models.TaskPatch) (*models.Task, error) {
	var task models.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		previousStatus := task.Status

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		if patch.DueTime != nil {
			task.DueTime = patch.DueTime
		}
		if patch.EstimatedHours != nil {
			task.EstimatedHours = patch.EstimatedHours
		}

		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		return adjustCompletedCounter(tx, task.ProjectID, previousStatus, task.Status)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus mutates only the status of an ownership-scoped task.
func (r *TaskRepository) UpdateStatus(id, userID uint, status models.TaskStatus) (*models.Task, error) {
	var task models.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		previousStatus := task.Status
		task.Status = status
		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		return adjustCompletedCounter(tx, task.ProjectID, previousStatus, status)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes an ownership-scoped task and its time entries, children
// first, and decrements the project counters in the same transaction.
func (r *TaskRepository) Delete(id, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&task).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"total_tasks": gorm.Expr("total_tasks - 1"),
		}
		if task.Status == models.TaskCompleted {
			updates["completed_tasks"] = gorm.Expr("completed_tasks - 1")
		}
		return tx.Model(&models.Project{}).Where("id = ?", task.ProjectID).
			Updates(updates).Error
	})
}

func adjustCompletedCounter(tx *gorm.DB, projectID uint, previous, current models.TaskStatus) error {
	if previous == current {
		return nil
	}
	switch {
	case current == models.TaskCompleted:
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("completed_tasks", gorm.Expr("completed_tasks + 1")).Error
	case previous == models.TaskCompleted:
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("completed_tasks", gorm.Expr("completed_tasks - 1")).Error
	}
	return nil
}
