package models

import "time"

// TaskStatus enumerates the workflow states of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskCompleted:
		return true
	}
	return false
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents the tasks table. The owning user id is duplicated from
// the project for direct ownership checks.
type Task struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ProjectID      uint         `gorm:"not null;index" json:"project_id"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	Title          string       `gorm:"size:255;not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description"`
	Status         TaskStatus   `gorm:"size:20;default:'todo'" json:"status"`
	Priority       TaskPriority `gorm:"size:20;default:'medium'" json:"priority"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	DueTime        *time.Time   `json:"due_time"`
	EstimatedHours *float64     `json:"estimated_hours"`
}

// TableName specifies the table name for Task model
func (Task) TableName() string {
	return "tasks"
}

// TaskPatch lists the mutable task fields. A nil field leaves the stored
// value unchanged.
type TaskPatch struct {
	Title          *string       `json:"title"`
	Description    *string       `json:"description"`
	Status         *TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress review completed"`
	Priority       *TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueTime        *time.Time    `json:"due_time"`
	EstimatedHours *float64      `json:"estimated_hours"`
}
