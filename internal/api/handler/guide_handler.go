package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// GuideHandler exposes guide discovery plus the guide- and admin-facing
// profile operations. Errors bubble to the central HTTP error handler.
type GuideHandler struct {
	directory ports.GuideDirectory
	sessions  ports.SessionManager
	policy    *ImagePolicy
}

func NewGuideHandler(directory ports.GuideDirectory, sessions ports.SessionManager, policy *ImagePolicy) *GuideHandler {
	return &GuideHandler{directory: directory, sessions: sessions, policy: policy}
}

// List handles GET /guides with the directory filters as query params.
func (h *GuideHandler) List(c echo.Context) error {
	filter := ports.ListGuidesFilter{
		Region: c.QueryParam("region"),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "verified must be a boolean")
		}
		filter.Verified = &verified
	}
	if raw := c.QueryParam("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || rating < 0 || rating > 5 {
			return echo.NewHTTPError(http.StatusBadRequest, "min_rating must be between 0 and 5")
		}
		filter.MinRating = rating
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	list, err := h.directory.List(c.Request().Context(), credential(c), filter)
	if err != nil {
		return err
	}

	items := make([]guideResponse, 0, len(list.Items))
	for _, g := range list.Items {
		items = append(items, toGuideResponse(h.policy, g))
	}
	return c.JSON(http.StatusOK, listGuidesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Limit:      list.Limit,
			TotalPages: list.TotalPages,
		},
	})
}

// Get handles GET /guides/:id.
func (h *GuideHandler) Get(c echo.Context) error {
	guide, err := h.directory.Get(c.Request().Context(), credential(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGuideResponse(h.policy, *guide))
}

// UpdateAvailability handles PATCH /guides/:id/availability. The payload
// replaces the whole calendar; on success the session snapshot is
// updated too so the next session probe reflects the new windows.
func (h *GuideHandler) UpdateAvailability(c echo.Context) error {
	var req updateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entries := parseAvailability(req.Availability)
	profile, err := h.directory.ReplaceAvailability(c.Request().Context(), actor, credential(c), c.Param("id"), entries)
	if err != nil {
		return err
	}

	h.sessions.UpdateGuideAvailability(sessionID(c), profile.Availability)
	return c.JSON(http.StatusOK, toGuideProfileResponse(profile))
}

// Verify handles POST /guides/:id/verify (admin only).
func (h *GuideHandler) Verify(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.directory.Verify(c.Request().Context(), actor, credential(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "guide verified"})
}

// Reject handles POST /guides/:id/reject (admin only).
func (h *GuideHandler) Reject(c echo.Context) error {
	var req rejectGuideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.directory.Reject(c.Request().Context(), actor, credential(c), c.Param("id"), req.Reason); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "guide rejected"})
}
