package service

import (
	"fmt"
	"testing"
	"time"

	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
	"freelanceflow/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type AuthServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo *repository.UserRepository
	tokens   *utils.TokenService
	svc      *AuthService
}

func (s *AuthServiceSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.AutoMigrate(
		&models.User{}, &models.Role{}, &models.Project{}, &models.Task{}, &models.TimeEntry{},
	))

	s.db = db
	s.userRepo = repository.NewUserRepo(db)
	s.tokens = utils.NewTokenService("test-secret", time.Hour)
	s.svc = NewAuthService(s.userRepo, s.tokens)
}

func (s *AuthServiceSuite) TestRegisterIssuesAndPersistsToken() {
	resp, err := s.svc.Register("a@x.com", "password", "Ada", "Lovelace")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "bearer", resp.TokenType)
	assert.NotEmpty(s.T(), resp.AccessToken)

	user, err := s.userRepo.FindByEmail("a@x.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "a@x.com", user.Username)
	assert.True(s.T(), user.IsActive)
	require.NotNil(s.T(), user.AccessToken)
	assert.Equal(s.T(), resp.AccessToken, *user.AccessToken)
	require.NotNil(s.T(), user.TokenExpires)
	assert.True(s.T(), user.TokenExpires.After(time.Now().UTC()))

	// The stored hash is not the raw password but verifies against it
	assert.NotEqual(s.T(), "password", user.HashedPassword)
	assert.True(s.T(), utils.ComparePassword(user.HashedPassword, "password"))
}

func (s *AuthServiceSuite) TestRegisterRejectsDuplicateEmail() {
	_, err := s.svc.Register("a@x.com", "password", "", "")
	require.NoError(s.T(), err)

	_, err = s.svc.Register("a@x.com", "different", "", "")
	assert.ErrorIs(s.T(), err, repository.ErrEmailTaken)
}

func (s *AuthServiceSuite) TestLoginRejectsWrongPassword() {
	_, err := s.svc.Register("a@x.com", "password", "", "")
	require.NoError(s.T(), err)

	_, err = s.svc.Login("a@x.com", "wrong")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)

	_, err = s.svc.Login("nobody@x.com", "password")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestSecondLoginOverwritesToken() {
	first, err := s.svc.Register("a@x.com", "password", "", "")
	require.NoError(s.T(), err)

	second, err := s.svc.Login("a@x.com", "password")
	require.NoError(s.T(), err)

	user, err := s.userRepo.FindByEmail("a@x.com")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), user.AccessToken)

	// Only the newest token remains current on the record
	assert.Equal(s.T(), second.AccessToken, *user.AccessToken)
	assert.NotEqual(s.T(), first.AccessToken, *user.AccessToken)
	require.NotNil(s.T(), user.LastLogin)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
