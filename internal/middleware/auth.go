package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
	"freelanceflow/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userContextKey = "currentUser"

// Authenticator resolves the current user from a bearer token. The
// presented token must decode to a known subject, equal the token stored
// on that user's record, and the stored expiry must be in the future.
type Authenticator struct {
	userRepo *repository.UserRepository
	tokens   *utils.TokenService
	logger   *zap.Logger
}

func NewAuthenticator(userRepo *repository.UserRepository, tokens *utils.TokenService, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate validates the Authorization header and stores the
// resolved user on the request context. Any failure is a 401 with a
// bearer challenge.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthenticated(c)
			return
		}
		token := parts[1]

		email, err := a.tokens.Decode(token)
		if err != nil {
			a.logger.Debug("token decode failed", zap.Error(err))
			unauthenticated(c)
			return
		}

		user, err := a.userRepo.FindByEmail(email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				unauthenticated(c)
			} else {
				a.logger.Error("user lookup failed during authentication", zap.Error(err))
				utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve user")
				c.Abort()
			}
			return
		}

		// The presented token must be the single live token on record
		// and its persisted expiry strictly in the future.
		if user.AccessToken == nil || *user.AccessToken != token {
			unauthenticated(c)
			return
		}
		if user.TokenExpires == nil || !user.TokenExpires.After(time.Now().UTC()) {
			unauthenticated(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireActiveUser rejects authenticated but deactivated accounts.
func RequireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			unauthenticated(c)
			return
		}
		if !user.IsActive {
			utils.ErrorResponse(c, http.StatusBadRequest, "Inactive user")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			unauthenticated(c)
			return
		}
		if !user.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "The user doesn't have enough privileges")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored on the context by
// Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func unauthenticated(c *gin.Context) {
	utils.UnauthorizedResponse(c, "Not authenticated")
	c.Abort()
}
