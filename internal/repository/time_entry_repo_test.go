package repository

import (
	"testing"
	"time"

	"freelanceflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryCreateRequiresOwnedTask(t *testing.T) {
	db := newTestDB(t)
	repo := NewTimeEntryRepo(db)

	owner := seedUser(t, db, "owner@x.com")
	other := seedUser(t, db, "other@x.com")
	project := seedProject(t, db, owner.ID, "p")
	task := seedTask(t, db, project.ID, owner.ID, "t", models.TaskTodo)

	err := repo.Create(&models.TimeEntry{
		TaskID:     task.ID,
		UserID:     other.ID,
		StartTime:  timeNow(),
		EndTime:    timeNow().Add(time.Hour),
		Duration:   1,
		IsBillable: true,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(&models.TimeEntry{
		TaskID:     task.ID,
		UserID:     owner.ID,
		StartTime:  timeNow(),
		EndTime:    timeNow().Add(time.Hour),
		Duration:   1,
		IsBillable: true,
	})
	require.NoError(t, err)
}

func TestTimeEntryDeleteScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewTimeEntryRepo(db)

	owner := seedUser(t, db, "owner@x.com")
	other := seedUser(t, db, "other@x.com")
	project := seedProject(t, db, owner.ID, "p")
	task := seedTask(t, db, project.ID, owner.ID, "t", models.TaskTodo)
	entry := seedTimeEntry(t, db, task.ID, owner.ID, timeNow(), 1, true)

	assert.ErrorIs(t, repo.Delete(entry.ID, task.ID, other.ID), ErrNotFound)
	require.NoError(t, repo.Delete(entry.ID, task.ID, owner.ID))
	assert.ErrorIs(t, repo.Delete(entry.ID, task.ID, owner.ID), ErrNotFound)
}

func TestStatisticsSeparatesBillableTime(t *testing.T) {
	db := newTestDB(t)
	repo := NewTimeEntryRepo(db)

	user := seedUser(t, db, "a@x.com")
	project := seedProject(t, db, user.ID, "p")
	task := seedTask(t, db, project.ID, user.ID, "t", models.TaskTodo)

	seedTimeEntry(t, db, task.ID, user.ID, timeNow(), 2, true)
	seedTimeEntry(t, db, task.ID, user.ID, timeNow(), 3, false)
	seedTimeEntry(t, db, task.ID, user.ID, timeNow(), 1.5, true)

	stats, err := repo.Statistics(user.ID, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 6.5, stats.TotalTime, 1e-9)
	assert.InDelta(t, 3.5, stats.BillableTime, 1e-9)
	assert.EqualValues(t, 3, stats.NumberOfEntries)
	assert.GreaterOrEqual(t, stats.TotalTime, stats.BillableTime)
}

func TestStatisticsWindowExcludesPartialOverlap(t *testing.T) {
	db := newTestDB(t)
	repo := NewTimeEntryRepo(db)

	user := seedUser(t, db, "a@x.com")
	project := seedProject(t, db, user.ID, "p")
	task := seedTask(t, db, project.ID, user.ID, "t", models.TaskTodo)

	windowStart := timeNow()
	windowEnd := windowStart.Add(4 * time.Hour)

	// Fully inside the window
	seedTimeEntry(t, db, task.ID, user.ID, windowStart.Add(time.Hour), 1, true)
	// Starts before the window: excluded entirely, no clipping
	seedTimeEntry(t, db, task.ID, user.ID, windowStart.Add(-time.Hour), 2, true)
	// Ends after the window: excluded entirely
	seedTimeEntry(t, db, task.ID, user.ID, windowEnd.Add(-30*time.Minute), 1, true)

	stats, err := repo.Statistics(user.ID, &windowStart, &windowEnd)
	require.NoError(t, err)

	assert.InDelta(t, 1, stats.TotalTime, 1e-9)
	assert.EqualValues(t, 1, stats.NumberOfEntries)
}

func TestStatisticsOtherUsersEntriesIgnored(t *testing.T) {
	db := newTestDB(t)
	repo := NewTimeEntryRepo(db)

	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")
	project := seedProject(t, db, a.ID, "p")
	task := seedTask(t, db, project.ID, a.ID, "t", models.TaskTodo)
	seedTimeEntry(t, db, task.ID, a.ID, timeNow(), 5, true)

	stats, err := repo.Statistics(b.ID, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTime)
	assert.Zero(t, stats.NumberOfEntries)
}
