package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/trailconnect/web-gateway/internal/api/middleware"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

type stubDirectory struct {
	listFn    func(ctx context.Context, credential string, filter ports.ListGuidesFilter) (*ports.GuideList, error)
	replaceFn func(ctx context.Context, actor ports.Actor, credential, guideID string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error)
}

func (s *stubDirectory) List(ctx context.Context, credential string, filter ports.ListGuidesFilter) (*ports.GuideList, error) {
	return s.listFn(ctx, credential, filter)
}

func (s *stubDirectory) Get(context.Context, string, string) (*domain.Guide, error) {
	return nil, domain.ErrGuideNotFound
}

func (s *stubDirectory) ReplaceAvailability(ctx context.Context, actor ports.Actor, credential, guideID string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error) {
	if s.replaceFn != nil {
		return s.replaceFn(ctx, actor, credential, guideID, entries)
	}
	return nil, domain.ErrForbidden
}

func (s *stubDirectory) Verify(context.Context, ports.Actor, string, string) error {
	return nil
}

func (s *stubDirectory) Reject(context.Context, ports.Actor, string, string, string) error {
	return nil
}

type stubCatalog struct {
	regions   []domain.Region
	templates []domain.TrekTemplate
}

func (s *stubCatalog) ListTemplates(context.Context, string) ([]domain.TrekTemplate, error) {
	return s.templates, nil
}

func (s *stubCatalog) CreateTemplate(context.Context, ports.Actor, string, ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	return nil, domain.ErrForbidden
}

func (s *stubCatalog) UpdateTemplate(context.Context, ports.Actor, string, string, ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	return nil, domain.ErrForbidden
}

func (s *stubCatalog) DeleteTemplate(context.Context, ports.Actor, string, string) error {
	return domain.ErrForbidden
}

func (s *stubCatalog) ListRegions(context.Context, string) ([]domain.Region, error) {
	return s.regions, nil
}

func (s *stubCatalog) CreateRegion(context.Context, ports.Actor, string, string) (*domain.Region, error) {
	return nil, domain.ErrForbidden
}

func (s *stubCatalog) DeleteRegion(context.Context, ports.Actor, string, string) error {
	return domain.ErrForbidden
}

func dashboardContext(t *testing.T, session domain.Session) (echo.Context, func() map[string]any) {
	t.Helper()
	c, rec := newJSONContext(t, http.MethodGet, "/dashboard", "")
	c.Set(apimiddleware.ContextKeySession, session)

	return c, func() map[string]any {
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		return resp
	}
}

func TestDashboardHandler_AdminView(t *testing.T) {
	directory := &stubDirectory{
		listFn: func(_ context.Context, _ string, filter ports.ListGuidesFilter) (*ports.GuideList, error) {
			if filter.Verified == nil || *filter.Verified {
				t.Fatalf("expected unverified filter, got %+v", filter)
			}
			return &ports.GuideList{
				Items: []domain.Guide{{User: domain.User{ID: "u5"}, Profile: domain.GuideProfile{ID: "gp5"}}},
				Total: 7,
			}, nil
		},
	}
	catalog := &stubCatalog{
		regions:   []domain.Region{{ID: "r1"}, {ID: "r2"}},
		templates: []domain.TrekTemplate{{ID: "t1"}},
	}
	h := NewDashboardHandler(directory, catalog, testPolicy())

	c, body := dashboardContext(t, domain.Session{
		IsAuthenticated: true,
		User:            &domain.User{ID: "a1", Role: domain.RoleAdmin},
	})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := body()
	if resp["view"] != "admin" || resp["pending_total"] != float64(7) {
		t.Fatalf("unexpected admin payload: %+v", resp)
	}
	if resp["region_count"] != float64(2) || resp["template_count"] != float64(1) {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}

func TestDashboardHandler_TouristView(t *testing.T) {
	directory := &stubDirectory{
		listFn: func(_ context.Context, _ string, filter ports.ListGuidesFilter) (*ports.GuideList, error) {
			if filter.Verified == nil || !*filter.Verified || filter.MinRating != 4.0 || filter.Limit != 6 {
				t.Fatalf("expected featured filter, got %+v", filter)
			}
			return &ports.GuideList{Items: []domain.Guide{{User: domain.User{ID: "u9"}}}}, nil
		},
	}
	h := NewDashboardHandler(directory, &stubCatalog{regions: []domain.Region{{ID: "r1"}}}, testPolicy())

	c, body := dashboardContext(t, domain.Session{
		IsAuthenticated: true,
		User:            &domain.User{ID: "u2", Role: domain.RoleTourist},
	})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := body()
	if resp["view"] != "tourist" {
		t.Fatalf("unexpected view: %+v", resp)
	}
}

func TestDashboardHandler_GuideViewComputesEarnings(t *testing.T) {
	h := NewDashboardHandler(&stubDirectory{}, &stubCatalog{}, testPolicy())

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c, body := dashboardContext(t, domain.Session{
		IsAuthenticated: true,
		User:            &domain.User{ID: "u1", Role: domain.RoleGuide},
		GuideProfile: &domain.GuideProfile{
			ID: "gp1", DailyRate: 90,
			Availability: []domain.AvailabilityEntry{
				{StartDate: start, EndDate: start.AddDate(0, 0, 4), Status: domain.AvailabilityBooked},
			},
		},
	})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := body()
	if resp["view"] != "guide" {
		t.Fatalf("unexpected view: %+v", resp)
	}
	earnings, ok := resp["earnings"].(map[string]any)
	if !ok {
		t.Fatalf("expected earnings, got %+v", resp)
	}
	// 5 booked days at 90/day.
	if earnings["booked_days"] != float64(5) || earnings["projected_earnings"] != float64(450) {
		t.Fatalf("unexpected earnings: %+v", earnings)
	}
}

func TestDashboardHandler_UnrecognisedRoleFallsBackToGuideView(t *testing.T) {
	h := NewDashboardHandler(&stubDirectory{}, &stubCatalog{}, testPolicy())

	c, body := dashboardContext(t, domain.Session{
		IsAuthenticated: true,
		User:            &domain.User{ID: "u1", Role: "moderator"},
	})
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := body()
	if resp["view"] != "guide" {
		t.Fatalf("expected guide fallback, got %+v", resp)
	}
	if _, hasProfile := resp["profile"]; hasProfile {
		t.Fatalf("expected no profile for fallback session: %+v", resp)
	}
}
