package repository

import (
	"errors"
	"time"

	"freelanceflow/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail finds a user by email, with roles preloaded.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).Preload("Roles").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by id, with roles preloaded.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).Preload("Roles").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The caller provides the full record,
// including the initial access token, so registration issues the token
// and persists the credential in a single write.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// StoreToken overwrites the user's current access token, its expiry, and
// the last-login timestamp in one update. At most one live token exists
// per user: a new login invalidates the previous token.
func (r *UserRepository) StoreToken(userID uint, token string, expires, lastLogin time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"access_token":  token,
			"token_expires": expires,
			"last_login":    lastLogin,
		}).Error
}

// Save persists all fields of an already-loaded user record.
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete hard-deletes a user and everything they own. Children are
// removed first inside a single transaction: time entries, tasks,
// projects, role assignments, then the user row itself.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM user_role WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// AssignRole grants the named role to a user. Used for seeding and
// admin promotion; no-op if the assignment already exists.
func (r *UserRepository) AssignRole(userID uint, roleName string) error {
	var role models.Role
	if err := r.db.Where("name = ?", roleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var user models.User
	if err := r.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return r.db.Model(&user).Association("Roles").Append(&role)
}
