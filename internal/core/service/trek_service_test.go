package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

type stubTrekAPI struct {
	regionCalls int
	regions     []domain.Region
	created     *ports.TrekTemplateInput
}

func (s *stubTrekAPI) ListTemplates(context.Context, string) ([]domain.TrekTemplate, error) {
	return []domain.TrekTemplate{{ID: "t1", Name: "Everest Base Camp"}}, nil
}

func (s *stubTrekAPI) CreateTemplate(_ context.Context, _ string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	s.created = &in
	return &domain.TrekTemplate{ID: "t2", Name: in.Name}, nil
}

func (s *stubTrekAPI) UpdateTemplate(_ context.Context, _, id string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	return &domain.TrekTemplate{ID: id, Name: in.Name}, nil
}

func (s *stubTrekAPI) DeleteTemplate(context.Context, string, string) error { return nil }

func (s *stubTrekAPI) ListRegions(context.Context, string) ([]domain.Region, error) {
	s.regionCalls++
	return s.regions, nil
}

func (s *stubTrekAPI) CreateRegion(_ context.Context, _, name string) (*domain.Region, error) {
	return &domain.Region{ID: "r9", Name: name, Slug: "slug"}, nil
}

func (s *stubTrekAPI) DeleteRegion(context.Context, string, string) error { return nil }

func TestTrekService_ListRegions_UsesCache(t *testing.T) {
	api := &stubTrekAPI{regions: []domain.Region{{ID: "r1", Name: "Everest", Slug: "everest"}}}
	cache := newMemoryCache()
	svc := NewTrekService(api, cache, zerolog.Nop())

	first, err := svc.ListRegions(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := svc.ListRegions(context.Background(), "")
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}

	if api.regionCalls != 1 {
		t.Fatalf("expected one remote fetch, got %d", api.regionCalls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected region lists: %d / %d", len(first), len(second))
	}
}

func TestTrekService_WritesAreAdminOnly(t *testing.T) {
	api := &stubTrekAPI{}
	svc := NewTrekService(api, newMemoryCache(), zerolog.Nop())
	tourist := ports.Actor{UserID: "u1", Role: domain.RoleTourist}
	admin := ports.Actor{UserID: "a1", Role: domain.RoleAdmin}

	if _, err := svc.CreateTemplate(context.Background(), tourist, "", ports.TrekTemplateInput{Name: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.CreateRegion(context.Background(), tourist, "", "Annapurna"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteTemplate(context.Background(), tourist, "", "t1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	tpl, err := svc.CreateTemplate(context.Background(), admin, "", ports.TrekTemplateInput{Name: "Gokyo Lakes", RegionID: "r1", DurationDays: 12})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if tpl.Name != "Gokyo Lakes" || api.created.DurationDays != 12 {
		t.Fatalf("unexpected created template: %+v / %+v", tpl, api.created)
	}
}
