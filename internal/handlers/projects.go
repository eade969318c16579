package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// ProjectHandler exposes the project CRUD endpoints.
type ProjectHandler struct {
	svc *services.ProjectService
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func NewProjectHandler(db *gorm.DB) (*ProjectHandler, error) {
	svc, err := services.NewProjectService(db)
	if err != nil {
		return nil, err
	}
	return &ProjectHandler{svc: svc}, nil
}

// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	projects, total, err := h.svc.List(requestContext(c), currentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, projects, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, project)
}

// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var body createProjectRequest
	if !bindAndValidate(c, &body) {
		return
	}

	project, err := h.svc.Create(requestContext(c), currentUserID(c), services.CreateProjectInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("project", "create").Inc()
	response.Success(c, http.StatusCreated, project)
}

// PUT/PATCH /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var body updateProjectRequest
	if !bindAndValidate(c, &body) {
		return
	}

	project, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), services.UpdateProjectInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("project", "update").Inc()
	response.Success(c, http.StatusOK, project)
}

// DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("project", "delete").Inc()
	response.NoContent(c)
}
