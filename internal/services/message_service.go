package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

var (
	// ErrMessageNotFound indicates the requested message does not exist or is
	// not visible to the caller.
	ErrMessageNotFound = errors.New("message service: message not found")
	// ErrInvalidSender indicates a sender outside user|ai.
	ErrInvalidSender = errors.New("message service: invalid sender")
)

// MessageService manages messages. Access is always resolved through the
// owning conversation's owner.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService constructs a message service once a database handle is supplied.
func NewMessageService(db *gorm.DB) (*MessageService, error) {
	if db == nil {
		return nil, errors.New("message service: db is required")
	}
	return &MessageService{db: db}, nil
}

// CreateMessageInput captures fields for a new message within a conversation.
type CreateMessageInput struct {
	Sender  string
	Content string
}

// Create appends a message to a conversation owned by the caller.
func (s *MessageService) Create(ctx context.Context, conversationID, ownerID string, input CreateMessageInput) (*models.Message, error) {
	ctx = ensuredContext(ctx)

	conversation, err := s.ownedConversation(ctx, conversationID, ownerID)
	if err != nil {
		return nil, err
	}

	sender := input.Sender
	if sender == "" {
		sender = models.SenderUser
	}
	if !models.ValidSender(sender) {
		return nil, ErrInvalidSender
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.New("message service: content is required")
	}

	message := models.Message{
		ConversationID: conversation.ID,
		Sender:         sender,
		Content:        content,
	}

	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// Get retrieves a message by identifier. The caller must own the message's
// conversation.
func (s *MessageService) Get(ctx context.Context, id, ownerID string) (*models.Message, error) {
	ctx = ensuredContext(ctx)

	messageID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrMessageNotFound
	}

	var message models.Message
	if err := s.db.WithContext(ctx).First(&message, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if _, err := s.ownedConversation(ctx, message.ConversationID.String(), ownerID); err != nil {
		return nil, ErrMessageNotFound
	}
	return &message, nil
}

// ListByConversation returns a conversation's messages in chronological order
// with the total match count.
func (s *MessageService) ListByConversation(ctx context.Context, conversationID, ownerID string, limit, offset int) ([]models.Message, int64, error) {
	ctx = ensuredContext(ctx)

	conversation, err := s.ownedConversation(ctx, conversationID, ownerID)
	if err != nil {
		return nil, 0, err
	}

	limit, offset = normalisePage(limit, offset)

	query := s.db.WithContext(ctx).Model(&models.Message{}).Where("conversation_id = ?", conversation.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Update rewrites a message's content. The caller must own the message's
// conversation.
func (s *MessageService) Update(ctx context.Context, id, ownerID string, content *string) (*models.Message, error) {
	ctx = ensuredContext(ctx)

	message, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if content != nil {
		trimmed := strings.TrimSpace(*content)
		if trimmed == "" {
			return nil, errors.New("message service: content is required")
		}
		message.Content = trimmed
	}

	if err := s.db.WithContext(ctx).Save(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// Delete removes a message from a conversation owned by the caller.
func (s *MessageService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	message, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(message).Error
}

func (s *MessageService) ownedConversation(ctx context.Context, id, ownerID string) (*models.Conversation, error) {
	conversationID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrConversationNotFound
	}

	var conversation models.Conversation
	if err := s.db.WithContext(ctx).First(&conversation, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	if conversation.OwnerID != ownerID {
		return nil, ErrConversationNotFound
	}
	return &conversation, nil
}
