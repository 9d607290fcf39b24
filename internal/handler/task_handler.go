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

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

type CreateTaskRequest struct {
	ProjectID      uint                `json:"project_id" binding:"required"`
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress review completed"`
	Priority       models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueTime        *time.Time          `json:"due_time"`
	EstimatedHours *float64            `json:"estimated_hours"`
}

// Create persists a new task under one of the caller's projects. The
// project must belong to the caller; otherwise the request 404s without
// revealing whether the project exists.
func (h *TaskHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		req.Status = models.TaskTodo
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	task := &models.Task{
		ProjectID:      req.ProjectID,
		UserID:         caller.ID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueTime:        req.DueTime,
		EstimatedHours: req.EstimatedHours,
	}

	if err := h.taskService.Create(task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListMy returns the caller's tasks, paginated by skip/limit.
func (h *TaskHandler) ListMy(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	skip, limit := paginationParams(c)
	tasks, err := h.taskService.ListMine(caller.ID, skip, limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Get returns one of the caller's tasks.
func (h *TaskHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.taskService.Get(uint(id), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update applies a partial update to one of the caller's tasks.
func (h *TaskHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(uint(id), caller.ID, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateStatus mutates only the status of one of the caller's tasks.
// The status comes from the path and must be a known value.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	status := models.TaskStatus(c.Param("status"))
	if !status.Valid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task status")
		return
	}

	task, err := h.taskService.UpdateStatus(uint(id), caller.ID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update task status")
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes one of the caller's tasks and cascades to its time
// entries.
func (h *TaskHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(uint(id), caller.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}
