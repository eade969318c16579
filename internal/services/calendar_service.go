package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

var (
	// ErrEventNotFound indicates the requested event does not exist or is not
	// visible to the caller.
	ErrEventNotFound = errors.New("calendar service: event not found")
	// ErrEventTimeOrder indicates a start time at or after the end time.
	ErrEventTimeOrder = errors.New("calendar service: start time must be before end time")
)

// CalendarService manages owner-scoped calendar events, optionally linked to tasks.
type CalendarService struct {
	db *gorm.DB
}

// NewCalendarService constructs a calendar service once a database handle is supplied.
func NewCalendarService(db *gorm.DB) (*CalendarService, error) {
	if db == nil {
		return nil, errors.New("calendar service: db is required")
	}
	return &CalendarService{db: db}, nil
}

// CreateEventInput captures fields for a new calendar event.
type CreateEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	TaskID      *string
}

// UpdateEventInput describes mutable event fields. A nil pointer indicates no change.
type UpdateEventInput struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	AllDay      *bool
	TaskID      *string
}

// ListEventsOptions filters and paginates event listings.
type ListEventsOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// Create persists a new event owned by the caller.
func (s *CalendarService) Create(ctx context.Context, ownerID string, input CreateEventInput) (*models.CalendarEvent, error) {
	ctx = ensuredContext(ctx)

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("calendar service: title is required")
	}
	if ownerID == "" {
		return nil, errors.New("calendar service: owner id is required")
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, ErrEventTimeOrder
	}

	event := models.CalendarEvent{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		AllDay:      input.AllDay,
		OwnerID:     ownerID,
	}

	if input.TaskID != nil {
		taskID, err := s.resolveTask(ctx, *input.TaskID, ownerID)
		if err != nil {
			return nil, err
		}
		event.TaskID = taskID
	}

	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Get retrieves an event by identifier, scoped to the owner.
func (s *CalendarService) Get(ctx context.Context, id, ownerID string) (*models.CalendarEvent, error) {
	ctx = ensuredContext(ctx)

	eventID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrEventNotFound
	}

	var event models.CalendarEvent
	if err := s.db.WithContext(ctx).First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if event.OwnerID != ownerID {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

// List returns the owner's events with the total match count. Range filters
// keep events overlapping the requested window.
func (s *CalendarService) List(ctx context.Context, ownerID string, opts ListEventsOptions) ([]models.CalendarEvent, int64, error) {
	ctx = ensuredContext(ctx)

	limit, offset := normalisePage(opts.Limit, opts.Offset)

	query := s.db.WithContext(ctx).Model(&models.CalendarEvent{}).Where("owner_id = ?", ownerID)
	if opts.StartDate != nil {
		query = query.Where("end_time >= ?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		query = query.Where("start_time <= ?", *opts.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.CalendarEvent
	if err := query.Order("start_time").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Update applies the provided changes to an existing event. The start/end
// ordering is re-checked against the merged result.
func (s *CalendarService) Update(ctx context.Context, id, ownerID string, input UpdateEventInput) (*models.CalendarEvent, error) {
	ctx = ensuredContext(ctx)

	event, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errors.New("calendar service: title is required")
		}
		event.Title = title
	}
	if input.Description != nil {
		event.Description = strings.TrimSpace(*input.Description)
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		event.EndTime = *input.EndTime
	}
	if input.AllDay != nil {
		event.AllDay = *input.AllDay
	}
	if input.TaskID != nil {
		if strings.TrimSpace(*input.TaskID) == "" {
			event.TaskID = nil
		} else {
			taskID, err := s.resolveTask(ctx, *input.TaskID, ownerID)
			if err != nil {
				return nil, err
			}
			event.TaskID = taskID
		}
	}

	if !event.StartTime.Before(event.EndTime) {
		return nil, ErrEventTimeOrder
	}

	if err := s.db.WithContext(ctx).Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event owned by the caller.
func (s *CalendarService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	event, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(event).Error
}

// resolveTask verifies the referenced task exists and belongs to the owner.
func (s *CalendarService) resolveTask(ctx context.Context, id, ownerID string) (*uuid.UUID, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrTaskNotFound
	}

	var task models.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.OwnerID != ownerID {
		return nil, ErrTaskNotFound
	}
	return &task.ID, nil
}
