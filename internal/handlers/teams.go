package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/services"
	"github.com/daylist-io/daylist/pkg/metrics"
	"github.com/daylist-io/daylist/pkg/response"
)

// TeamHandler exposes the team CRUD and membership endpoints.
type TeamHandler struct {
	svc *services.TeamService
}

type createTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type updateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type addMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=member admin"`
}

type updateMemberRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

func NewTeamHandler(db *gorm.DB) (*TeamHandler, error) {
	svc, err := services.NewTeamService(db)
	if err != nil {
		return nil, err
	}
	return &TeamHandler{svc: svc}, nil
}

// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	teams, total, err := h.svc.List(requestContext(c), currentUserID(c), limit, offset)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, teams, &response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	team, err := h.svc.Get(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, team)
}

// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var body createTeamRequest
	if !bindAndValidate(c, &body) {
		return
	}

	team, err := h.svc.Create(requestContext(c), currentUserID(c), services.CreateTeamInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team", "create").Inc()
	response.Success(c, http.StatusCreated, team)
}

// PUT/PATCH /api/v1/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var body updateTeamRequest
	if !bindAndValidate(c, &body) {
		return
	}

	team, err := h.svc.Update(requestContext(c), c.Param("id"), currentUserID(c), services.UpdateTeamInput{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team", "update").Inc()
	response.Success(c, http.StatusOK, team)
}

// DELETE /api/v1/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id"), currentUserID(c)); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team", "delete").Inc()
	response.NoContent(c)
}

// GET /api/v1/teams/:id/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.svc.ListMembers(requestContext(c), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}
	response.Success(c, http.StatusOK, members)
}

// POST /api/v1/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	var body addMemberRequest
	if !bindAndValidate(c, &body) {
		return
	}

	membership, err := h.svc.AddMember(requestContext(c), c.Param("id"), currentUserID(c), body.UserID, body.Role)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team_membership", "create").Inc()
	response.Success(c, http.StatusCreated, membership)
}

// PUT/PATCH /api/v1/teams/:id/members/:userID
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	var body updateMemberRequest
	if !bindAndValidate(c, &body) {
		return
	}

	membership, err := h.svc.UpdateMemberRole(requestContext(c), c.Param("id"), currentUserID(c), c.Param("userID"), body.Role)
	if err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team_membership", "update").Inc()
	response.Success(c, http.StatusOK, membership)
}

// DELETE /api/v1/teams/:id/members/:userID
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	if err := h.svc.RemoveMember(requestContext(c), c.Param("id"), currentUserID(c), c.Param("userID")); err != nil {
		response.Error(c, serviceError(err))
		return
	}

	metrics.ResourceWrites.WithLabelValues("team_membership", "delete").Inc()
	response.NoContent(c)
}
