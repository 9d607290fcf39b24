package service

import (
	"time"

	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
)

type TimeEntryService struct {
	timeEntryRepo *repository.TimeEntryRepository
}

func NewTimeEntryService(timeEntryRepo *repository.TimeEntryRepository) *TimeEntryService {
	return &TimeEntryService{timeEntryRepo: timeEntryRepo}
}

// Create persists a new time entry under one of the caller's tasks.
func (s *TimeEntryService) Create(entry *models.TimeEntry) error {
	return s.timeEntryRepo.Create(entry)
}

// ListByTask returns the caller's time entries for one task.
func (s *TimeEntryService) ListByTask(taskID, userID uint) ([]models.TimeEntry, error) {
	return s.timeEntryRepo.ListByTask(taskID, userID)
}

// Delete removes one of the caller's time entries.
func (s *TimeEntryService) Delete(id, taskID, userID uint) error {
	return s.timeEntryRepo.Delete(id, taskID, userID)
}

// Statistics aggregates tracked time for the target user. Only the user
// themselves or an admin may read it; anyone else gets ErrForbidden.
func (s *TimeEntryService) Statistics(caller *models.User, targetUserID uint, start, end *time.Time) (*models.TimeStatistics, error) {
	if caller.ID != targetUserID && !caller.IsAdmin() {
		return nil, repository.ErrForbidden
	}
	return s.timeEntryRepo.Statistics(targetUserID, start, end)
}
