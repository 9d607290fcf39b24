package repository

import (
	"errors"
	"time"

	"freelanceflow/internal/models"

	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepo(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create inserts a new time entry after verifying the target task
// belongs to the same user.
func (r *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		err := tx.Where("id = ? AND user_id = ?", entry.TaskID, entry.UserID).First(&task).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Create(entry).Error
	})
}

// ListByTask returns the caller's time entries for one task.
func (r *TimeEntryRepository) ListByTask(taskID, userID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Find(&entries).Error
	return entries, err
}

// Delete removes an ownership-scoped time entry. Leaf entity, nothing
// cascades from it.
func (r *TimeEntryRepository) Delete(id, taskID, userID uint) error {
	result := r.db.Where("id = ? AND task_id = ? AND user_id = ?", id, taskID, userID).
		Delete(&models.TimeEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Statistics sums durations over a user's time entries, optionally
// bounded by a window. An entry counts only when it lies entirely inside
// the window: start_time >= start AND end_time <= end, no clipping.
func (r *TimeEntryRepository) Statistics(userID uint, start, end *time.Time) (*models.TimeStatistics, error) {
	query := r.db.Model(&models.TimeEntry{}).Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("start_time >= ?", *start)
	}
	if end != nil {
		query = query.Where("end_time <= ?", *end)
	}

	var stats models.TimeStatistics
	err := query.Select(
		"COALESCE(SUM(duration), 0) AS total_time, " +
			"COALESCE(SUM(CASE WHEN is_billable THEN duration ELSE 0 END), 0) AS billable_time, " +
			"COUNT(*) AS number_of_entries",
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
