package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// UserHandler covers profile editing for the account settings page.
type UserHandler struct {
	accounts ports.AccountService
	sessions ports.SessionManager
	policy   *ImagePolicy
}

func NewUserHandler(accounts ports.AccountService, sessions ports.SessionManager, policy *ImagePolicy) *UserHandler {
	return &UserHandler{accounts: accounts, sessions: sessions, policy: policy}
}

// updateUserRequest uses pointers so absent fields stay untouched.
type updateUserRequest struct {
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
}

// Update handles PATCH /users/:id. After a successful self-update the
// session snapshot is refreshed so the header renders the new name
// without waiting for the next bootstrap.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	userID := c.Param("id")
	user, err := h.accounts.UpdateProfile(c.Request().Context(), actor, credential(c), userID, ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
		Languages: req.Languages,
	})
	if err != nil {
		return err
	}

	if actor.UserID == userID {
		h.sessions.RefreshUser(sessionID(c), user)
	}
	return c.JSON(http.StatusOK, toUserResponse(h.policy, user))
}
