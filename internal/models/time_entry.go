package models

import "time"

// TimeEntry represents the time_entries table. Leaf entity owned by one
// task and one user. Duration is stored in hours as entered, not derived
// from the start/end pair.
type TimeEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TaskID      uint      `gorm:"not null;index" json:"task_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Duration    float64   `json:"duration"`
	Description string    `gorm:"type:text" json:"description"`
	IsBillable  bool      `gorm:"default:true" json:"is_billable"`
}

// TableName specifies the table name for TimeEntry model
func (TimeEntry) TableName() string {
	return "time_entries"
}

// TimeStatistics aggregates tracked time over a user's entries.
// BillableTime sums only entries flagged billable, so TotalTime is
// always greater than or equal to BillableTime.
type TimeStatistics struct {
	TotalTime       float64 `json:"total_time"`
	BillableTime    float64 `json:"billable_time"`
	NumberOfEntries int64   `json:"number_of_entries"`
}
