package repository

import (
	"testing"

	"freelanceflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateRequiresOwnedProject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepo(db)

	owner := seedUser(t, db, "owner@x.com")
	other := seedUser(t, db, "other@x.com")
	project := seedProject(t, db, owner.ID, "p")

	// Creating under someone else's project is indistinguishable from a
	// missing project
	err := repo.Create(&models.Task{
		ProjectID: project.ID,
		UserID:    other.ID,
		Title:     "sneaky",
		Status:    models.TaskTodo,
		Priority:  models.PriorityLow,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(&models.Task{
		ProjectID: project.ID,
		UserID:    owner.ID,
		Title:     "legit",
		Status:    models.TaskTodo,
		Priority:  models.PriorityLow,
	})
	require.NoError(t, err)
}

func TestTaskCountersFollowLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepo(db)
	projects := NewProjectRepo(db)

	user := seedUser(t, db, "a@x.com")
	project := seedProject(t, db, user.ID, "p")

	task := &models.Task{
		ProjectID: project.ID,
		UserID:    user.ID,
		Title:     "t",
		Status:    models.TaskTodo,
		Priority:  models.PriorityMedium,
	}
	require.NoError(t, repo.Create(task))

	fresh, err := projects.GetByUser(project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalTasks)
	assert.Equal(t, 0, fresh.CompletedTasks)

	// Completing the task bumps the completed counter
	_, err = repo.UpdateStatus(task.ID, user.ID, models.TaskCompleted)
	require.NoError(t, err)
	fresh, err = projects.GetByUser(project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.CompletedTasks)

	// Reopening drops it again
	_, err = repo.UpdateStatus(task.ID, user.ID, models.TaskInProgress)
	require.NoError(t, err)
	fresh, err = projects.GetByUser(project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.CompletedTasks)

	// Deleting a completed task decrements both counters
	_, err = repo.UpdateStatus(task.ID, user.ID, models.TaskCompleted)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(task.ID, user.ID))
	fresh, err = projects.GetByUser(project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.TotalTasks)
	assert.Equal(t, 0, fresh.CompletedTasks)
}

func TestTaskPatchIsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepo(db)

	user := seedUser(t, db, "a@x.com")
	project := seedProject(t, db, user.ID, "p")
	task := seedTask(t, db, project.ID, user.ID, "Write docs", models.TaskTodo)

	updated, err := repo.Patch(task.ID, user.ID, &models.TaskPatch{
		Status:         taskStatusPtr(models.TaskReview),
		EstimatedHours: floatPtr(8),
	})
	require.NoError(t, err)

	assert.Equal(t, models.TaskReview, updated.Status)
	require.NotNil(t, updated.EstimatedHours)
	assert.Equal(t, 8.0, *updated.EstimatedHours)
	assert.Equal(t, "Write docs", updated.Title)
	assert.Equal(t, models.PriorityMedium, updated.Priority)
}

func TestTaskOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepo(db)

	owner := seedUser(t, db, "owner@x.com")
	other := seedUser(t, db, "other@x.com")
	project := seedProject(t, db, owner.ID, "p")
	task := seedTask(t, db, project.ID, owner.ID, "t", models.TaskTodo)

	_, err := repo.GetByUser(task.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateStatus(task.ID, other.ID, models.TaskCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(task.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskDeleteCascadesToTimeEntries(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepo(db)

	user := seedUser(t, db, "a@x.com")
	project := seedProject(t, db, user.ID, "p")
	task := seedTask(t, db, project.ID, user.ID, "t", models.TaskTodo)
	seedTimeEntry(t, db, task.ID, user.ID, timeNow(), 2, true)

	require.NoError(t, repo.Delete(task.ID, user.ID))

	var entries int64
	require.NoError(t, db.Model(&models.TimeEntry{}).Where("task_id = ?", task.ID).Count(&entries).Error)
	assert.Zero(t, entries)
}
