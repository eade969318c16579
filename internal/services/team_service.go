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
	// ErrTeamNotFound indicates the requested team does not exist or is not
	// visible to the caller.
	ErrTeamNotFound = errors.New("team service: team not found")
	// ErrTeamMemberExists indicates the user already belongs to the team.
	ErrTeamMemberExists = errors.New("team service: user is already a member")
	// ErrTeamMemberNotFound indicates the user does not belong to the team.
	ErrTeamMemberNotFound = errors.New("team service: member not found")
	// ErrInvalidRole indicates a role outside member|admin.
	ErrInvalidRole = errors.New("team service: invalid role")
)

// TeamService manages owner-scoped teams and their memberships.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService constructs a team service once a database handle is supplied.
func NewTeamService(db *gorm.DB) (*TeamService, error) {
	if db == nil {
		return nil, errors.New("team service: db is required")
	}
	return &TeamService{db: db}, nil
}

// CreateTeamInput captures required fields when creating a team.
type CreateTeamInput struct {
	Name        string
	Description string
}

// UpdateTeamInput describes mutable team fields. A nil pointer indicates no change.
type UpdateTeamInput struct {
	Name        *string
	Description *string
}

// Create persists a new team owned by the caller.
func (s *TeamService) Create(ctx context.Context, ownerID string, input CreateTeamInput) (*models.Team, error) {
	ctx = ensuredContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("team service: name is required")
	}
	if ownerID == "" {
		return nil, errors.New("team service: owner id is required")
	}

	team := models.Team{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		OwnerID:     ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Get retrieves a team by identifier, scoped to the owner.
func (s *TeamService) Get(ctx context.Context, id, ownerID string) (*models.Team, error) {
	ctx = ensuredContext(ctx)

	teamID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrTeamNotFound
	}

	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if team.OwnerID != ownerID {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

// List returns the owner's teams with the total match count.
func (s *TeamService) List(ctx context.Context, ownerID string, limit, offset int) ([]models.Team, int64, error) {
	ctx = ensuredContext(ctx)

	limit, offset = normalisePage(limit, offset)

	query := s.db.WithContext(ctx).Model(&models.Team{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var teams []models.Team
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update applies the provided changes to an existing team.
func (s *TeamService) Update(ctx context.Context, id, ownerID string, input UpdateTeamInput) (*models.Team, error) {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.New("team service: name is required")
		}
		team.Name = name
	}
	if input.Description != nil {
		team.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.db.WithContext(ctx).Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// Delete removes a team owned by the caller together with its memberships.
func (s *TeamService) Delete(ctx context.Context, id, ownerID string) error {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(team).Error
	})
}

// AddMember enrols a user into a team owned by the caller.
func (s *TeamService) AddMember(ctx context.Context, teamID, ownerID, userID, role string) (*models.TeamMembership, error) {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("team service: user id is required")
	}

	if role == "" {
		role = models.RoleMember
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	membership := models.TeamMembership{
		TeamID: team.ID,
		UserID: user.ID,
		Role:   role,
	}

	if err := s.db.WithContext(ctx).Create(&membership).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrTeamMemberExists
		}
		return nil, err
	}
	return &membership, nil
}

// UpdateMemberRole changes an existing member's role.
func (s *TeamService) UpdateMemberRole(ctx context.Context, teamID, ownerID, userID, role string) (*models.TeamMembership, error) {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}

	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var membership models.TeamMembership
	if err := s.db.WithContext(ctx).First(&membership, "team_id = ? AND user_id = ?", team.ID, strings.TrimSpace(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}

	membership.Role = role
	if err := s.db.WithContext(ctx).Save(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveMember withdraws a user from a team owned by the caller.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, ownerID, userID string) error {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, teamID, ownerID)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", team.ID, strings.TrimSpace(userID)).Delete(&models.TeamMembership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

// ListMembers returns the memberships of a team owned by the caller.
func (s *TeamService) ListMembers(ctx context.Context, teamID, ownerID string) ([]models.TeamMembership, error) {
	ctx = ensuredContext(ctx)

	team, err := s.Get(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}

	var memberships []models.TeamMembership
	if err := s.db.WithContext(ctx).Where("team_id = ?", team.ID).Order("joined_at").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
