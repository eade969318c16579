package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// CalendarHandler exposes the calendar event CRUD endpoints.
type CalendarHandler struct {
	svc *services.CalendarService
}

type createEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	AllDay      bool      `json:"all_day"`
	TaskID      *string   `json:"task_id"`
}

type updateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	AllDay      *bool      `json:"all_day"`
	TaskID      *string    `json:"task_id"`
}

func NewCalendarHandler(db *gorm.DB) (*CalendarHandler, error) {
	svc, err := services.NewCalendarService(db)
	if err != nil {
		return nil, err
	}
	return &CalendarHandler{svc: svc}, nil
}

// GET /api/v1/calendar
func (h *CalendarHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	startDate, err := parseTimeQuery(c, "start_date")
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseTimeQuery(c, "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}

	events, total, err := h.svc.List(requestContext(c), currentUserID(c), services.ListEventsOptions{
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, events, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GET /api/v1/calendar/:id
func (h *CalendarHandler) Get(c *gin.Context) {
	event, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, event)
}

// POST /api/v1/calendar
func (h *CalendarHandler) Create(c *gin.Context) {
	var body createEventRequest
	if !bindAndValidate(c, &body) {
		return
	}

	event, err := h.svc.Create(requestContext(c), currentUserID(c), services.CreateEventInput{
		Title:       body.Title,
		Description: body.Description,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		AllDay:      body.AllDay,
		TaskID:      body.TaskID,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("calendar_event", "create").Inc()
	response.Success(c, http.StatusCreated, event)
}

// PUT/PATCH /api/v1/calendar/:id
func (h *CalendarHandler) Update(c *gin.Context) {
	var body updateEventRequest
	if !bindAndValidate(c, &body) {
		return
	}

	event, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), services.UpdateEventInput{
		Title:       body.Title,
		Description: body.Description,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		AllDay:      body.AllDay,
		TaskID:      body.TaskID,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("calendar_event", "update").Inc()
	response.Success(c, http.StatusOK, event)
}

// DELETE /api/v1/calendar/:id
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("calendar_event", "delete").Inc()
	response.NoContent(c)
}
