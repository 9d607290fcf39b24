package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"freelanceflow/internal/middleware"
	"freelanceflow/internal/models"
	"freelanceflow/internal/repository"
	"freelanceflow/internal/service"
	"freelanceflow/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService      *service.UserService
	timeEntryService *service.TimeEntryService
}

func NewUserHandler(userService *service.UserService, timeEntryService *service.TimeEntryService) *UserHandler {
	return &UserHandler{
		userService:      userService,
		timeEntryService: timeEntryService,
	}
}

// Me returns the caller's own record.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Get retrieves any user by id (admin only).
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update applies a partial update to any user (admin only).
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Update(uint(id), &patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete hard-deletes a user and all owned resources (admin only).
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.userService.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// TimeStatistics aggregates tracked time for a user, optionally bounded
// by a start_date/end_date window (RFC 3339). The caller must be the
// target user or an admin.
func (h *UserHandler) TimeStatistics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	start, err := parseTimeQuery(c, "start_date")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start_date")
		return
	}
	end, err := parseTimeQuery(c, "end_date")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid end_date")
		return
	}

	stats, err := h.timeEntryService.Statistics(caller, uint(id), start, end)
	if err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			utils.ErrorResponse(c, http.StatusForbidden, "Not authorized to view other user's time statistics")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute time statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
