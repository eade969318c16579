package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

// ErrTaskNotFound indicates the requested task does not exist or is not
// visible to the caller. Records owned by other users surface the same error
// so their existence never leaks through the error kind.
var ErrTaskNotFound = errors.New("task service: task not found")

// TaskService manages owner-scoped CRUD operations for tasks.
type TaskService struct {
	db *gorm.DB
}

// NewTaskService constructs a task service once a database handle is supplied.
func NewTaskService(db *gorm.DB) (*TaskService, error) {
	if db == nil {
		return nil, errors.New("task service: db is required")
	}
	return &TaskService{db: db}, nil
}

// CreateTaskInput captures required fields when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTaskInput describes mutable task fields. A nil pointer indicates no change.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// ListTasksOptions controls filtering and pagination for task listings.
type ListTasksOptions struct {
	Completed *bool
	Limit     int
	Offset    int
}

// Create persists a new task for the given owner. The owner id always comes
// from the authenticated caller, never from client input.
func (s *TaskService) Create(ctx context.Context, ownerID string, input CreateTaskInput) (*models.Task, error) {
	ctx = ensuredContext(ctx)

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("task service: title is required")
	}
	if ownerID == "" {
		return nil, errors.New("task service: owner id is required")
	}

	task := models.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Completed:   input.Completed,
		OwnerID:     ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Get retrieves a task by identifier, scoped to the owner.
func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*models.Task, error) {
	ctx = ensuredContext(ctx)

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
	return &task, nil
}

// List returns the owner's tasks after applying the optional completion
// filter, along with the total match count ignoring pagination.
func (s *TaskService) List(ctx context.Context, ownerID string, opts ListTasksOptions) ([]models.Task, int64, error) {
	ctx = ensuredContext(ctx)

	limit, offset := normalisePage(opts.Limit, opts.Offset)

	query := s.db.WithContext(ctx).Model(&models.Task{}).Where("owner_id = ?", ownerID)
	if opts.Completed != nil {
		query = query.Where("completed = ?", *opts.Completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update applies the provided changes to an existing task. Absent fields are
// left untouched; UpdatedAt is refreshed on every successful write.
func (s *TaskService) Update(ctx context.Context, id, ownerID string, input UpdateTaskInput) (*models.Task, error) {
	ctx = ensuredContext(ctx)

	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errors.New("task service: title is required")
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// SetCompletion toggles the completion flag for a task.
func (s *TaskService) SetCompletion(ctx context.Context, id, ownerID string, completed bool) (*models.Task, error) {
	ctx = ensuredContext(ctx)

	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task owned by the caller.
func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	task, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(task).Error
}
