package handlers

import (
	"errors"

	"github.com/daylist-io/daylist/internal/services"
	appErrors "github.com/daylist-io/daylist/pkg/errors"
)

// serviceError translates service sentinel errors into transport errors.
// Unknown errors surface as internal server errors.
func serviceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrUserNotFound):
		return appErrors.NewNotFound("user")
	case errors.Is(err, services.ErrEmailTaken):
		return appErrors.NewConflict("email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		return appErrors.ErrInvalidCredentials
	case errors.Is(err, services.ErrUserInactive):
		return appErrors.ErrForbidden
	case errors.Is(err, services.ErrTaskNotFound):
		return appErrors.NewNotFound("task")
	case errors.Is(err, services.ErrProjectNotFound):
		return appErrors.NewNotFound("project")
	case errors.Is(err, services.ErrTeamNotFound):
		return appErrors.NewNotFound("team")
	case errors.Is(err, services.ErrTeamMemberNotFound):
		return appErrors.NewNotFound("team member")
	case errors.Is(err, services.ErrTeamMemberExists):
		return appErrors.NewConflict("user is already a team member")
	case errors.Is(err, services.ErrInvalidRole):
		return appErrors.NewValidation("role must be one of: member admin")
	case errors.Is(err, services.ErrEventNotFound):
		return appErrors.NewNotFound("calendar event")
	case errors.Is(err, services.ErrEventTimeOrder):
		return appErrors.NewValidation("start_time must be before end_time")
	case errors.Is(err, services.ErrConversationNotFound):
		return appErrors.NewNotFound("conversation")
	case errors.Is(err, services.ErrMessageNotFound):
		return appErrors.NewNotFound("message")
	case errors.Is(err, services.ErrInvalidSender):
		return appErrors.NewValidation("sender must be one of: user ai")
	default:
		return appErrors.ErrInternalServer.WithInternal(err)
	}
}
