package backend

import (
	"context"
	"net/http"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// AuthAPI implements ports.AuthAPI against /auth/*.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type registerPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionEnvelope is the shape /auth/login and /auth/profile respond with;
// guide_profile is present only for users holding the guide role.
type sessionEnvelope struct {
	User         *domain.User         `json:"user"`
	GuideProfile *domain.GuideProfile `json:"guide_profile,omitempty"`
}

func (a *AuthAPI) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	var envelope struct {
		User *domain.User `json:"user"`
	}
	payload := registerPayload{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	}
	if err := a.client.post(ctx, "auth.register", "/auth/register", "", payload, &envelope); err != nil {
		if statusOf(err) == http.StatusConflict {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return envelope.User, nil
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var envelope sessionEnvelope
	credential, err := a.client.postForCredential(ctx, "auth.login", "/auth/login", loginPayload{Email: email, Password: password}, &envelope)
	if err != nil {
		switch statusOf(err) {
		case http.StatusUnauthorized, http.StatusBadRequest:
			return nil, domain.ErrInvalidCredentials
		case http.StatusNotFound:
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if envelope.User == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.LoginResult{
		Credential:   credential,
		User:         envelope.User,
		GuideProfile: envelope.GuideProfile,
	}, nil
}

func (a *AuthAPI) Logout(ctx context.Context, credential string) error {
	return a.client.post(ctx, "auth.logout", "/auth/logout", credential, nil, nil)
}

// Profile fetches the session's current user. Errors are returned raw: the
// bootstrap controller deliberately treats every failure the same way.
func (a *AuthAPI) Profile(ctx context.Context, credential string) (*domain.User, *domain.GuideProfile, error) {
	var envelope sessionEnvelope
	if err := a.client.get(ctx, "auth.profile", "/auth/profile", credential, &envelope); err != nil {
		return nil, nil, err
	}
	if envelope.User == nil {
		return nil, nil, domain.ErrNoSession
	}
	return envelope.User, envelope.GuideProfile, nil
}
