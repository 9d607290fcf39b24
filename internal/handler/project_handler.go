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

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"start_date" binding:"required"`
	EndDate     *time.Time           `json:"end_date"`
	Status      models.ProjectStatus `json:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
	ClientName  string               `json:"client_name" binding:"required"`
	Budget      float64              `json:"budget"`
}

// Create persists a new project owned by the caller. Counters and the
// owner id are set server-side, never taken from the payload.
func (h *ProjectHandler) Create(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		req.Status = models.ProjectPlanning
	}

	project := &models.Project{
		UserID:      caller.ID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		ClientName:  req.ClientName,
		Budget:      req.Budget,
	}

	if err := h.projectService.Create(project); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListMy returns the caller's projects, paginated by skip/limit.
func (h *ProjectHandler) ListMy(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	skip, limit := paginationParams(c)
	projects, err := h.projectService.ListMine(caller.ID, skip, limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Get returns one of the caller's projects; 404 when the project does
// not exist or belongs to someone else.
func (h *ProjectHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.Get(uint(id), caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// Update applies a partial update to one of the caller's projects.
func (h *ProjectHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(uint(id), caller.ID, &patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes one of the caller's projects and cascades to its tasks
// and their time entries.
func (h *ProjectHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(uint(id), caller.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	c.Status(http.StatusNoContent)
}

// paginationParams reads skip/limit query parameters. Limit defaults to
// 100 and is not capped.
func paginationParams(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}
