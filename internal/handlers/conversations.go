package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// ConversationHandler exposes the conversation CRUD endpoints together with
// the nested message listing and creation.
type ConversationHandler struct {
	svc      *services.ConversationService
	messages *services.MessageService
}

type createConversationRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

type updateConversationRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
}

type createMessageRequest struct {
	Sender  string `json:"sender" validate:"omitempty,oneof=user ai"`
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

func NewConversationHandler(db *gorm.DB) (*ConversationHandler, error) {
	svc, err := services.NewConversationService(db)
	if err != nil {
		return nil, err
	}
	messages, err := services.NewMessageService(db)
	if err != nil {
		return nil, err
	}
	return &ConversationHandler{svc: svc, messages: messages}, nil
}

// GET /api/v1/conversations
func (h *ConversationHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	conversations, total, err := h.svc.List(requestContext(c), currentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, conversations, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GET /api/v1/conversations/:id
func (h *ConversationHandler) Get(c *gin.Context) {
	conversation, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, conversation)
}

// POST /api/v1/conversations
func (h *ConversationHandler) Create(c *gin.Context) {
	var body createConversationRequest
	if !bindAndValidate(c, &body) {
		return
	}

	conversation, err := h.svc.Create(requestContext(c), currentUserID(c), body.Title)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("conversation", "create").Inc()
	response.Success(c, http.StatusCreated, conversation)
}

// PUT/PATCH /api/v1/conversations/:id
func (h *ConversationHandler) Update(c *gin.Context) {
	var body updateConversationRequest
	if !bindAndValidate(c, &body) {
		return
	}

	conversation, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), body.Title)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("conversation", "update").Inc()
	response.Success(c, http.StatusOK, conversation)
}

// DELETE /api/v1/conversations/:id
func (h *ConversationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("conversation", "delete").Inc()
	response.NoContent(c)
}

// GET /api/v1/conversations/:id/messages
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	limit, offset := pageParams(c)

	messages, total, err := h.messages.ListByConversation(requestContext(c), c.Param("id"), currentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, messages, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// POST /api/v1/conversations/:id/messages
func (h *ConversationHandler) CreateMessage(c *gin.Context) {
	var body createMessageRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.messages.Create(requestContext(c), c.Param("id"), currentUserID(c), services.CreateMessageInput{
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
