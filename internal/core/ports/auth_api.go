package ports

import (
	"context"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// RegisterInput carries the fields forwarded to POST /auth/register.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// LoginResult is everything the remote API hands back when a session is
// established. Credential is the opaque session cookie (name=value) the
// gateway must replay on subsequent calls.
type LoginResult struct {
	Credential   string
	User         *domain.User
	GuideProfile *domain.GuideProfile
}

// AuthAPI wraps the remote API's authentication endpoints.
type AuthAPI interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, credential string) error
	// Profile fetches the user owning the given session credential.
	// Guides come back with their profile embedded.
	Profile(ctx context.Context, credential string) (*domain.User, *domain.GuideProfile, error)
}

// SessionFetcher is the narrow slice of AuthAPI the bootstrap controller
// depends on. Any failure (expired session, transport error) is a single
// undifferentiated "no session" signal to the caller.
type SessionFetcher interface {
	Profile(ctx context.Context, credential string) (*domain.User, *domain.GuideProfile, error)
}
