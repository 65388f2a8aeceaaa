package backend

import (
	"context"
	"net/url"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// UserAPI implements ports.UserAPI against /users/*.
type UserAPI struct {
	client *Client
}

func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

// updateUserPayload carries only the fields actually being patched;
// omitted fields stay untouched server-side.
type updateUserPayload struct {
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
}

func (u *UserAPI) Update(ctx context.Context, credential, id string, in ports.UpdateUserInput) (*domain.User, error) {
	payload := updateUserPayload{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
		Avatar:    in.Avatar,
		Languages: in.Languages,
	}

	var user domain.User
	if err := u.client.patch(ctx, "users.update", "/users/"+url.PathEscape(id), credential, payload, &user); err != nil {
		return nil, mapNotFound(err, domain.ErrUserNotFound)
	}
	return &user, nil
}
