package models

import "time"

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project represents the projects table. Owned by exactly one user;
// task counters are maintained server-side, never taken from payloads.
type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         uint          `gorm:"not null;index" json:"user_id"`
	Name           string        `gorm:"size:255;not null" json:"name"`
	Description    string        `gorm:"type:text" json:"description"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        *time.Time    `json:"end_date"`
	Status         ProjectStatus `gorm:"size:20;default:'planning'" json:"status"`
	ClientName     string        `gorm:"size:255" json:"client_name"`
	Budget         float64       `json:"budget"`
	TotalTasks     int           `gorm:"default:0" json:"total_tasks"`
	CompletedTasks int           `gorm:"default:0" json:"completed_tasks"`
}

// TableName specifies the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// ProjectPatch lists the mutable project fields. A nil field leaves the
// stored value unchanged.
type ProjectPatch struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Status      *ProjectStatus `json:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
	ClientName  *string        `json:"client_name"`
	Budget      *float64       `json:"budget"`
}
