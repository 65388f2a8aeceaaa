package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// TrekHandler exposes the trek template and region catalog. Reads are
// public; write routes sit behind the admin role gate.
type TrekHandler struct {
	catalog ports.TrekCatalog
}

func NewTrekHandler(catalog ports.TrekCatalog) *TrekHandler {
	return &TrekHandler{catalog: catalog}
}

func toTemplateResponse(t domain.TrekTemplate) trekTemplateResponse {
	return trekTemplateResponse(t)
}

// ListTemplates handles GET /treks/templates.
func (h *TrekHandler) ListTemplates(c echo.Context) error {
	templates, err := h.catalog.ListTemplates(c.Request().Context(), credential(c))
	if err != nil {
		return err
	}
	items := make([]trekTemplateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, toTemplateResponse(t))
	}
	return c.JSON(http.StatusOK, listTemplatesResponse{Data: items})
}

// CreateTemplate handles POST /treks/templates (admin only).
func (h *TrekHandler) CreateTemplate(c echo.Context) error {
	var req trekTemplateRequest
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
	template, err := h.catalog.CreateTemplate(c.Request().Context(), actor, credential(c), toTemplateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTemplateResponse(*template))
}

// UpdateTemplate handles PUT /treks/templates/:id (admin only).
func (h *TrekHandler) UpdateTemplate(c echo.Context) error {
	var req trekTemplateRequest
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
	template, err := h.catalog.UpdateTemplate(c.Request().Context(), actor, credential(c), c.Param("id"), toTemplateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTemplateResponse(*template))
}

// DeleteTemplate handles DELETE /treks/templates/:id (admin only).
func (h *TrekHandler) DeleteTemplate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteTemplate(c.Request().Context(), actor, credential(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRegions handles GET /treks/regions.
func (h *TrekHandler) ListRegions(c echo.Context) error {
	regions, err := h.catalog.ListRegions(c.Request().Context(), credential(c))
	if err != nil {
		return err
	}
	items := make([]regionResponse, 0, len(regions))
	for _, r := range regions {
		items = append(items, regionResponse(r))
	}
	return c.JSON(http.StatusOK, listRegionsResponse{Data: items})
}

// CreateRegion handles POST /treks/regions (admin only).
func (h *TrekHandler) CreateRegion(c echo.Context) error {
	var req createRegionRequest
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
	region, err := h.catalog.CreateRegion(c.Request().Context(), actor, credential(c), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, regionResponse(*region))
}

// DeleteRegion handles DELETE /treks/regions/:id (admin only).
func (h *TrekHandler) DeleteRegion(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteRegion(c.Request().Context(), actor, credential(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toTemplateInput(r trekTemplateRequest) ports.TrekTemplateInput {
	return ports.TrekTemplateInput{
		Name:         r.Name,
		RegionID:     r.RegionID,
		DurationDays: r.DurationDays,
		Difficulty:   r.Difficulty,
		MaxAltitudeM: r.MaxAltitudeM,
		Description:  r.Description,
	}
}
