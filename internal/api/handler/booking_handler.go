package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// BookingHandler prices booking intents. No booking is created here;
// the estimate is display data for the intent form.
type BookingHandler struct {
	estimator ports.Estimator
}

func NewBookingHandler(estimator ports.Estimator) *BookingHandler {
	return &BookingHandler{estimator: estimator}
}

type estimateRequest struct {
	GuideID   string   `json:"guide_id"   validate:"required"`
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Services  []string `json:"services"   validate:"dive,oneof=porter cook gear permits pickup"`
}

type priceLineResponse struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type estimateResponse struct {
	Days          int                 `json:"days"`
	DailyRate     float64             `json:"daily_rate"`
	GuideSubtotal float64             `json:"guide_subtotal"`
	Services      []priceLineResponse `json:"services"`
	PlatformFee   float64             `json:"platform_fee"`
	Total         float64             `json:"total"`
	Currency      string              `json:"currency"`
}

type serviceCatalogResponse struct {
	Data []domain.OptionalService `json:"data"`
}

// Estimate handles POST /bookings/estimate.
func (h *BookingHandler) Estimate(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	breakdown, err := h.estimator.Estimate(c.Request().Context(), credential(c), ports.EstimateInput{
		GuideID:   req.GuideID,
		StartDate: start,
		EndDate:   end,
		Services:  req.Services,
	})
	if err != nil {
		return err
	}

	lines := make([]priceLineResponse, 0, len(breakdown.Services))
	for _, l := range breakdown.Services {
		lines = append(lines, priceLineResponse(l))
	}
	return c.JSON(http.StatusOK, estimateResponse{
		Days:          breakdown.Days,
		DailyRate:     breakdown.DailyRate,
		GuideSubtotal: breakdown.GuideSubtotal,
		Services:      lines,
		PlatformFee:   breakdown.PlatformFee,
		Total:         breakdown.Total,
		Currency:      breakdown.Currency,
	})
}

// Services handles GET /bookings/services: the static add-on catalog
// the intent form renders its checkboxes from.
func (h *BookingHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceCatalogResponse{Data: domain.OptionalServices})
}
