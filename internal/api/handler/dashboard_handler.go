package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// DashboardHandler assembles the role-specific landing payload in one
// round trip, so the browser renders the shell from a single request.
type DashboardHandler struct {
	directory ports.GuideDirectory
	catalog   ports.TrekCatalog
	policy    *ImagePolicy
}

func NewDashboardHandler(directory ports.GuideDirectory, catalog ports.TrekCatalog, policy *ImagePolicy) *DashboardHandler {
	return &DashboardHandler{directory: directory, catalog: catalog, policy: policy}
}

type adminDashboardResponse struct {
	View          string          `json:"view"`
	PendingGuides []guideResponse `json:"pending_guides"`
	PendingTotal  int64           `json:"pending_total"`
	RegionCount   int             `json:"region_count"`
	TemplateCount int             `json:"template_count"`
}

type touristDashboardResponse struct {
	View           string           `json:"view"`
	FeaturedGuides []guideResponse  `json:"featured_guides"`
	Regions        []regionResponse `json:"regions"`
}

type guideEarningsResponse struct {
	BookedDays        int     `json:"booked_days"`
	ProjectedEarnings float64 `json:"projected_earnings"`
	Currency          string  `json:"currency"`
}

type guideDashboardResponse struct {
	View     string                `json:"view"`
	Profile  *guideProfileResponse `json:"profile,omitempty"`
	Earnings guideEarningsResponse `json:"earnings"`
}

// Get handles GET /dashboard. The view is picked by the role router;
// sessions with an unrecognised role land on the guide dashboard with
// an empty profile rather than an error.
func (h *DashboardHandler) Get(c echo.Context) error {
	session, ok := currentSession(c)
	if !ok || !session.IsAuthenticated {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	switch session.Route() {
	case domain.ViewAdmin:
		return h.admin(c)
	case domain.ViewTourist:
		return h.tourist(c)
	default:
		return h.guide(c, session)
	}
}

func (h *DashboardHandler) admin(c echo.Context) error {
	ctx := c.Request().Context()
	cred := credential(c)

	unverified := false
	pending, err := h.directory.List(ctx, cred, ports.ListGuidesFilter{Verified: &unverified, Page: 1, Limit: 10})
	if err != nil {
		return err
	}
	regions, err := h.catalog.ListRegions(ctx, cred)
	if err != nil {
		return err
	}
	templates, err := h.catalog.ListTemplates(ctx, cred)
	if err != nil {
		return err
	}

	items := make([]guideResponse, 0, len(pending.Items))
	for _, g := range pending.Items {
		items = append(items, toGuideResponse(h.policy, g))
	}
	return c.JSON(http.StatusOK, adminDashboardResponse{
		View:          string(domain.ViewAdmin),
		PendingGuides: items,
		PendingTotal:  pending.Total,
		RegionCount:   len(regions),
		TemplateCount: len(templates),
	})
}

func (h *DashboardHandler) tourist(c echo.Context) error {
	ctx := c.Request().Context()
	cred := credential(c)

	verified := true
	featured, err := h.directory.List(ctx, cred, ports.ListGuidesFilter{
		Verified:  &verified,
		MinRating: 4.0,
		Page:      1,
		Limit:     6,
	})
	if err != nil {
		return err
	}
	regions, err := h.catalog.ListRegions(ctx, cred)
	if err != nil {
		return err
	}

	items := make([]guideResponse, 0, len(featured.Items))
	for _, g := range featured.Items {
		items = append(items, toGuideResponse(h.policy, g))
	}
	regionItems := make([]regionResponse, 0, len(regions))
	for _, r := range regions {
		regionItems = append(regionItems, regionResponse(r))
	}
	return c.JSON(http.StatusOK, touristDashboardResponse{
		View:           string(domain.ViewTourist),
		FeaturedGuides: items,
		Regions:        regionItems,
	})
}

// guide builds its payload from the session snapshot alone: the profile
// was fetched at login or bootstrap and is kept current by the
// availability endpoint.
func (h *DashboardHandler) guide(c echo.Context, session domain.Session) error {
	profile := session.GuideProfile
	earnings := guideEarningsResponse{Currency: domain.Currency}
	if profile != nil {
		earnings.BookedDays = profile.BookedDays()
		earnings.ProjectedEarnings = float64(earnings.BookedDays) * profile.DailyRate
	}
	return c.JSON(http.StatusOK, guideDashboardResponse{
		View:     string(domain.ViewGuide),
		Profile:  toGuideProfileResponse(profile),
		Earnings: earnings,
	})
}
