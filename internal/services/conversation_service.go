package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

// ErrConversationNotFound indicates the requested conversation does not exist
// or is not visible to the caller.
var ErrConversationNotFound = errors.New("conversation service: conversation not found")

// ConversationService manages owner-scoped chat conversations.
type ConversationService struct {
	db *gorm.DB
}

// NewConversationService constructs a conversation service once a database
// handle is supplied.
func NewConversationService(db *gorm.DB) (*ConversationService, error) {
	if db == nil {
		return nil, errors.New("conversation service: db is required")
	}
	return &ConversationService{db: db}, nil
}

// Create persists a new conversation owned by the caller.
func (s *ConversationService) Create(ctx context.Context, ownerID, title string) (*models.Conversation, error) {
	ctx = ensuredContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("conversation service: title is required")
	}
	if ownerID == "" {
		return nil, errors.New("conversation service: owner id is required")
	}

	conversation := models.Conversation{
		Title:   title,
		OwnerID: ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Get retrieves a conversation by identifier, scoped to the owner.
func (s *ConversationService) Get(ctx context.Context, id, ownerID string) (*models.Conversation, error) {
	ctx = ensuredContext(ctx)

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

// List returns the owner's conversations with the total match count.
func (s *ConversationService) List(ctx context.Context, ownerID string, limit, offset int) ([]models.Conversation, int64, error) {
	ctx = ensuredContext(ctx)

	limit, offset = normalisePage(limit, offset)

	query := s.db.WithContext(ctx).Model(&models.Conversation{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var conversations []models.Conversation
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&conversations).Error; err != nil {
		return nil, 0, err
	}

	return conversations, total, nil
}

// Update renames a conversation owned by the caller.
func (s *ConversationService) Update(ctx context.Context, id, ownerID string, title *string) (*models.Conversation, error) {
	ctx = ensuredContext(ctx)

	conversation, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, errors.New("conversation service: title is required")
		}
		conversation.Title = trimmed
	}

	if err := s.db.WithContext(ctx).Save(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

// Delete removes a conversation owned by the caller together with its messages.
func (s *ConversationService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	conversation, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", conversation.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(conversation).Error
	})
}
