package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

type stubUserAPI struct {
	updateFn func(ctx context.Context, credential, id string, in ports.UpdateUserInput) (*domain.User, error)
}

func (s *stubUserAPI) Update(ctx context.Context, credential, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, credential, id, in)
}

func strPtr(s string) *string { return &s }

func TestAccountService_UpdateProfile_SelfOrAdmin(t *testing.T) {
	api := &stubUserAPI{
		updateFn: func(_ context.Context, _, id string, in ports.UpdateUserInput) (*domain.User, error) {
			return &domain.User{ID: id, Bio: *in.Bio}, nil
		},
	}
	svc := NewAccountService(api, zerolog.Nop())
	in := ports.UpdateUserInput{Bio: strPtr("15 seasons on the trail")}

	// Self-update succeeds.
	user, err := svc.UpdateProfile(context.Background(), ports.Actor{UserID: "u1", Role: domain.RoleGuide}, "", "u1", in)
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if user.Bio != "15 seasons on the trail" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Admins can patch anyone.
	if _, err := svc.UpdateProfile(context.Background(), ports.Actor{UserID: "a1", Role: domain.RoleAdmin}, "", "u1", in); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}

	// Everyone else is rejected before the remote call.
	_, err = svc.UpdateProfile(context.Background(), ports.Actor{UserID: "u2", Role: domain.RoleTourist}, "", "u1", in)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
