package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// MessageHandler exposes the flat message endpoints. Listing per
// conversation also lives under the conversation routes.
type MessageHandler struct {
	svc *services.MessageService
}

type createDirectMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	Sender         string `json:"sender" validate:"omitempty,oneof=user ai"`
	Content        string `json:"content" validate:"required,min=1,max=10000"`
}

type updateMessageRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1,max=10000"`
}

func NewMessageHandler(db *gorm.DB) (*MessageHandler, error) {
	svc, err := services.NewMessageService(db)
	if err != nil {
		return nil, err
	}
	return &MessageHandler{svc: svc}, nil
}

// POST /api/v1/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var body createDirectMessageRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.svc.Create(requestContext(c), body.ConversationID, currentUserID(c), services.CreateMessageInput{
		Sender:  body.Sender,
		Content: body.Content,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("message", "create").Inc()
	response.Success(c, http.StatusCreated, message)
}

// GET /api/v1/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	message, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, message)
}

// PUT/PATCH /api/v1/messages/:id
func (h *MessageHandler) Update(c *gin.Context) {
	var body updateMessageRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), body.Content)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("message", "update").Inc()
	response.Success(c, http.StatusOK, message)
}

// DELETE /api/v1/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("message", "delete").Inc()
	response.NoContent(c)
}
