package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/models"
)

// ErrProjectNotFound indicates the requested project does not exist or is
// not visible to the caller.
var ErrProjectNotFound = errors.New("project service: project not found")

// ProjectService manages owner-scoped CRUD operations for projects.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService constructs a project service once a database handle is supplied.
func NewProjectService(db *gorm.DB) (*ProjectService, error) {
	if db == nil {
		return nil, errors.New("project service: db is required")
	}
	return &ProjectService{db: db}, nil
}

// CreateProjectInput captures required fields when creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// UpdateProjectInput describes mutable project fields. A nil pointer indicates no change.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// Create persists a new project for the given owner.
func (s *ProjectService) Create(ctx context.Context, ownerID string, input CreateProjectInput) (*models.Project, error) {
	ctx = ensuredContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("project service: name is required")
	}
	if ownerID == "" {
		return nil, errors.New("project service: owner id is required")
	}

	project := models.Project{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		OwnerID:     ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Get retrieves a project by identifier, scoped to the owner.
func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*models.Project, error) {
	ctx = ensuredContext(ctx)

	projectID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrProjectNotFound
	}

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if project.OwnerID != ownerID {
		return nil, ErrProjectNotFound
	}
	return &project, nil
}

// List returns the owner's projects with the total match count.
func (s *ProjectService) List(ctx context.Context, ownerID string, limit, offset int) ([]models.Project, int64, error) {
	ctx = ensuredContext(ctx)

	limit, offset = normalisePage(limit, offset)

	query := s.db.WithContext(ctx).Model(&models.Project{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update applies the provided changes to an existing project.
func (s *ProjectService) Update(ctx context.Context, id, ownerID string, input UpdateProjectInput) (*models.Project, error) {
	ctx = ensuredContext(ctx)

	project, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.New("project service: name is required")
		}
		project.Name = name
	}
	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project owned by the caller.
func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	project, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(project).Error
}
