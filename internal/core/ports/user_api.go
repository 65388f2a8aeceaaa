package ports

import (
	"context"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// UpdateUserInput holds the patchable display fields of a user.
// Nil pointers mean "leave unchanged" (PATCH semantics).
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Avatar    *string
	Languages *[]string
}

// UserAPI wraps the remote API's user endpoints.
type UserAPI interface {
	Update(ctx context.Context, credential, id string, in UpdateUserInput) (*domain.User, error)
}
