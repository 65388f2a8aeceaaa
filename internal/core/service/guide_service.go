package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

const (
	defaultGuidePageSize = 12
	maxGuidePageSize     = 50
)

// GuideService implements ports.GuideDirectory: discovery reads go through
// the directory cache, profile writes go straight to the remote API after
// ownership checks.
type GuideService struct {
	api   ports.GuideAPI
	cache ports.DirectoryCache
	log   zerolog.Logger
}

func NewGuideService(api ports.GuideAPI, cache ports.DirectoryCache, log zerolog.Logger) *GuideService {
	return &GuideService{api: api, cache: cache, log: log}
}

func (s *GuideService) List(ctx context.Context, credential string, filter ports.ListGuidesFilter) (*ports.GuideList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultGuidePageSize
	}
	if filter.Limit > maxGuidePageSize {
		filter.Limit = maxGuidePageSize
	}

	key := filter.CacheKey()
	if cached, ok := s.cache.GetGuideList(ctx, key); ok {
		return cached, nil
	}

	list, err := s.api.List(ctx, credential, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetGuideList(ctx, key, list); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache guide listing")
	}
	return list, nil
}

func (s *GuideService) Get(ctx context.Context, credential, id string) (*domain.Guide, error) {
	return s.api.Get(ctx, credential, id)
}

// ReplaceAvailability submits the full calendar for the caller's own guide
// profile. The remote API applies replace semantics; so does the session
// store afterwards (handled by the transport layer).
func (s *GuideService) ReplaceAvailability(ctx context.Context, actor ports.Actor, credential, guideID string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error) {
	if actor.Role != domain.RoleGuide || actor.GuideProfileID != guideID {
		return nil, domain.ErrForbidden
	}
	for _, e := range entries {
		if e.EndDate.Before(e.StartDate) {
			return nil, domain.ErrInvalidDateRange
		}
	}

	profile, err := s.api.ReplaceAvailability(ctx, credential, guideID, entries)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("guide_id", guideID).Int("windows", len(entries)).Msg("availability replaced")
	return profile, nil
}

func (s *GuideService) Verify(ctx context.Context, actor ports.Actor, credential, guideID string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.api.Verify(ctx, credential, guideID); err != nil {
		return err
	}
	s.log.Info().Str("guide_id", guideID).Str("admin_id", actor.UserID).Msg("guide verified")
	return nil
}

func (s *GuideService) Reject(ctx context.Context, actor ports.Actor, credential, guideID, reason string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.api.Reject(ctx, credential, guideID, reason); err != nil {
		return err
	}
	s.log.Info().Str("guide_id", guideID).Str("admin_id", actor.UserID).Msg("guide verification rejected")
	return nil
}
