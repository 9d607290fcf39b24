package repository

import (
	"fmt"
	"testing"
	"time"

	"freelanceflow/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema
// applied. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Project{},
		&models.Task{},
		&models.TimeEntry{},
	))
	require.NoError(t, db.Where("name = ?", models.RoleAdmin).
		FirstOrCreate(&models.Role{Name: models.RoleAdmin}).Error)

	return db
}

// seedUser inserts a user directly, bypassing the auth flow.
func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:         email,
		Email:            email,
		HashedPassword:   "irrelevant",
		IsActive:         true,
		RegistrationDate: time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, userID uint, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		UserID:     userID,
		Name:       name,
		StartDate:  time.Now().UTC(),
		Status:     models.ProjectPlanning,
		ClientName: "Acme",
		Budget:     1000,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedTask(t *testing.T, db *gorm.DB, projectID, userID uint, title string, status models.TaskStatus) *models.Task {
	t.Helper()

	task := &models.Task{
		ProjectID: projectID,
		UserID:    userID,
		Title:     title,
		Status:    status,
		Priority:  models.PriorityMedium,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func seedTimeEntry(t *testing.T, db *gorm.DB, taskID, userID uint, start time.Time, hours float64, billable bool) *models.TimeEntry {
	t.Helper()

	entry := &models.TimeEntry{
		TaskID:     taskID,
		UserID:     userID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours * float64(time.Hour))),
		Duration:   hours,
		IsBillable: billable,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func timeNow() time.Time { return time.Now().UTC().Truncate(time.Second) }

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func statusPtr(s models.ProjectStatus) *models.ProjectStatus { return &s }
func taskStatusPtr(s models.TaskStatus) *models.TaskStatus   { return &s }
