package models

import "time"

// RoleAdmin is the role name that grants administrative privileges.
const RoleAdmin = "admin"

// User represents the users table
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Username         string     `gorm:"uniqueIndex;not null;size:255" json:"username"`
	Email            string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	HashedPassword   string     `gorm:"not null;size:255" json:"-"`
	FirstName        string     `gorm:"size:100" json:"first_name"`
	LastName         string     `gorm:"size:100" json:"last_name"`
	HourlyRate       float64    `gorm:"default:0" json:"hourly_rate"`
	ProfilePicture   *string    `gorm:"size:255" json:"profile_picture,omitempty"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	AccessToken      *string    `gorm:"size:512" json:"-"`
	TokenExpires     *time.Time `json:"-"`
	LastLogin        *time.Time `json:"last_login"`
	RegistrationDate time.Time  `json:"registration_date"`

	// Relationships
	Roles []Role `gorm:"many2many:user_role" json:"roles,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
// Roles must have been preloaded.
func (u *User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role.Name == RoleAdmin {
			return true
		}
	}
	return false
}

// Role represents the roles table. Static reference data ("admin", etc.)
// linked to users via the user_role join table.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:50" json:"name"`
}

// TableName specifies the table name for Role model
func (Role) TableName() string {
	return "roles"
}

// UserPatch lists the mutable user fields for admin updates.
// A nil field leaves the stored value unchanged; JSON null is not
// distinguished from an absent key.
type UserPatch struct {
	Username       *string  `json:"username"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Password       *string  `json:"password" binding:"omitempty,min=6"`
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	HourlyRate     *float64 `json:"hourly_rate"`
	ProfilePicture *string  `json:"profile_picture"`
	IsActive       *bool    `json:"is_active"`
}
