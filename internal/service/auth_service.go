package service

import (
	"errors"
	"fmt"
	"time"

	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
	"freelanceflow/pkg/utils"
)

// ErrInvalidCredentials is returned when the email/password pair does
// not match a stored account. Handlers translate this into a 401 with a
// bearer challenge.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrTokenPersistence is returned when a freshly issued token could not
// be written to the user record. The token must then be considered
// not-issued; handlers translate this into a 500.
var ErrTokenPersistence = errors.New("error saving authentication data")

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *utils.TokenService
}

func NewAuthService(userRepo *repository.UserRepository, tokens *utils.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// TokenResponse is the envelope returned by login and register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account and issues its first access token. The
// username mirrors the email. Token and credential are written in a
// single insert, so a failed write leaves no issued token behind.
func (s *AuthService) Register(email, password, firstName, lastName string) (*TokenResponse, error) {
	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return nil, repository.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	user := &models.User{
		Username:         email,
		Email:            email,
		HashedPassword:   hashed,
		FirstName:        firstName,
		LastName:         lastName,
		IsActive:         true,
		AccessToken:      &token,
		TokenExpires:     &expiresAt,
		RegistrationDate: time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Login verifies credentials, issues a fresh token, and persists it on
// the user record, overwriting any previous token. If the credential
// write fails the issued token is abandoned and the login fails.
func (s *AuthService) Login(email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.ComparePassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	if err := s.userRepo.StoreToken(user.ID, token, expiresAt, time.Now().UTC()); err != nil {
		return nil, ErrTokenPersistence
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
