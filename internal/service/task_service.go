package service

import (
	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
)

type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create persists a new task under one of the caller's projects.
func (s *TaskService) Create(task *models.Task) error {
	return s.taskRepo.Create(task)
}

// ListMine returns the caller's tasks with offset/limit pagination.
func (s *TaskService) ListMine(userID uint, skip, limit int) ([]models.Task, error) {
	return s.taskRepo.ListByUser(userID, skip, limit)
}

// Get returns one of the caller's tasks.
func (s *TaskService) Get(id, userID uint) (*models.Task, error) {
	return s.taskRepo.GetByUser(id, userID)
}

// Update applies a partial update to one of the caller's tasks.
func (s *TaskService) Update(id, userID uint, patch *models.TaskPatch) (*models.Task, error) {
	return s.taskRepo.Patch(id, userID, patch)
}

// UpdateStatus mutates only the status of one of the caller's tasks.
func (s *TaskService) UpdateStatus(id, userID uint, status models.TaskStatus) (*models.Task, error) {
	return s.taskRepo.UpdateStatus(id, userID, status)
}

// Delete removes one of the caller's tasks, cascading to its time
// entries.
func (s *TaskService) Delete(id, userID uint) error {
	return s.taskRepo.Delete(id, userID)
}
