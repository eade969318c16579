package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// TaskHandler exposes the task CRUD endpoints.
type TaskHandler struct {
	svc *services.TaskService
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Completed   bool   `json:"completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
}

type taskCompletionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

func NewTaskHandler(db *gorm.DB) (*TaskHandler, error) {
	svc, err := services.NewTaskService(db)
	if err != nil {
		return nil, err
	}
	return &TaskHandler{svc: svc}, nil
}

// GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	opts := services.ListTasksOptions{Limit: limit, Offset: offset}
	if raw := strings.TrimSpace(c.Query("completed")); raw != "" {
		completed := raw == "true" || raw == "1"
		opts.Completed = &completed
	}

	tasks, total, err := h.svc.List(requestContext(c), currentUserID(c), opts)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, tasks, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, task)
}

// POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var body createTaskRequest
	if !bindAndValidate(c, &body) {
		return
	}

	task, err := h.svc.Create(requestContext(c), currentUserID(c), services.CreateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Completed:   body.Completed,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("task", "create").Inc()
	response.Success(c, http.StatusCreated, task)
}

// PUT/PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var body updateTaskRequest
	if !bindAndValidate(c, &body) {
		return
	}

	task, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), services.UpdateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Completed:   body.Completed,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("task", "update").Inc()
	response.Success(c, http.StatusOK, task)
}

// PATCH /api/v1/tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	var body taskCompletionRequest
	if !bindAndValidate(c, &body) {
		return
	}

	task, err := h.svc.SetCompletion(requestContext(c), c.Param("id"), currentUserID(c), *body.Completed)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("task", "update").Inc()
	response.Success(c, http.StatusOK, task)
}

// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("task", "delete").Inc()
	response.NoContent(c)
}
