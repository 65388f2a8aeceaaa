package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// AccountService implements ports.AccountService: display-field patches
// forwarded to the remote API after an ownership check.
type AccountService struct {
	api ports.UserAPI
	log zerolog.Logger
}

func NewAccountService(api ports.UserAPI, log zerolog.Logger) *AccountService {
	return &AccountService{api: api, log: log}
}

func (s *AccountService) UpdateProfile(ctx context.Context, actor ports.Actor, credential, userID string, in ports.UpdateUserInput) (*domain.User, error) {
	if actor.UserID != userID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.api.Update(ctx, credential, userID, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("actor_id", actor.UserID).Msg("profile updated")
	return user, nil
}
