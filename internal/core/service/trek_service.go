package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// TrekService implements ports.TrekCatalog. Region reads are served from
// the directory cache; template and region writes are admin-only and
// invalidate nothing (entries simply age out within the cache TTL).
type TrekService struct {
	api   ports.TrekAPI
	cache ports.DirectoryCache
	log   zerolog.Logger
}

func NewTrekService(api ports.TrekAPI, cache ports.DirectoryCache, log zerolog.Logger) *TrekService {
	return &TrekService{api: api, cache: cache, log: log}
}

func (s *TrekService) ListTemplates(ctx context.Context, credential string) ([]domain.TrekTemplate, error) {
	return s.api.ListTemplates(ctx, credential)
}

func (s *TrekService) CreateTemplate(ctx context.Context, actor ports.Actor, credential string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	tpl, err := s.api.CreateTemplate(ctx, credential, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("template_id", tpl.ID).Str("name", tpl.Name).Msg("trek template created")
	return tpl, nil
}

func (s *TrekService) UpdateTemplate(ctx context.Context, actor ports.Actor, credential, id string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.api.UpdateTemplate(ctx, credential, id, in)
}

func (s *TrekService) DeleteTemplate(ctx context.Context, actor ports.Actor, credential, id string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.api.DeleteTemplate(ctx, credential, id)
}

func (s *TrekService) ListRegions(ctx context.Context, credential string) ([]domain.Region, error) {
	if regions, ok := s.cache.GetRegions(ctx); ok {
		return regions, nil
	}

	regions, err := s.api.ListRegions(ctx, credential)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetRegions(ctx, regions); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache regions")
	}
	return regions, nil
}

func (s *TrekService) CreateRegion(ctx context.Context, actor ports.Actor, credential, name string) (*domain.Region, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.api.CreateRegion(ctx, credential, name)
}

func (s *TrekService) DeleteRegion(ctx context.Context, actor ports.Actor, credential, id string) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.api.DeleteRegion(ctx, credential, id)
}
