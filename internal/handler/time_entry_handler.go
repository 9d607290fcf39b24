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

type TimeEntryHandler struct {
	timeEntryService *service.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService *service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: timeEntryService,
	}
}

type CreateTimeEntryRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Duration    float64   `json:"duration" binding:"required"`
	Description string    `json:"description"`
	IsBillable  *bool     `json:"is_billable"`
}

// Create records time against one of the caller's tasks. Entries are
// billable unless the payload says otherwise.
func (h *TimeEntryHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	billable := true
	if req.IsBillable != nil {
		billable = *req.IsBillable
	}

	entry := &models.TimeEntry{
		TaskID:      uint(taskID),
		UserID:      caller.ID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    req.Duration,
		Description: req.Description,
		IsBillable:  billable,
	}

	if err := h.timeEntryService.Create(entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create time entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List returns the caller's time entries for one task.
func (h *TimeEntryHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	entries, err := h.timeEntryService.ListByTask(uint(taskID), caller.ID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch time entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Delete removes one of the caller's time entries.
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}
	entryID, err := strconv.ParseUint(c.Param("entry_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid time entry ID")
		return
	}

	if err := h.timeEntryService.Delete(uint(entryID), uint(taskID), caller.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Time entry not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete time entry")
		return
	}

	c.Status(http.StatusNoContent)
}
