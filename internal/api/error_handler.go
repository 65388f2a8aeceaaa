package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/infrastructure/backend"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Marketplace API rejections keep their status and backend-provided
	// message for the codes the UI acts on. Anything else from upstream
	// is an outage from the browser's point of view.
	var ae *backend.APIError
	if errors.As(err, &ae) {
		switch ae.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict:
			return ae.StatusCode, ae.Message
		}
		log.Warn().
			Int("upstream_status", ae.StatusCode).
			Str("path", c.Path()).
			Msg("unexpected marketplace API status")
		return http.StatusBadGateway, "marketplace API unavailable"
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrGuideNotFound):
		return http.StatusNotFound, "guide not found"
	case errors.Is(err, domain.ErrTrekNotFound):
		return http.StatusNotFound, "trek not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrNoGuideProfile):
		return http.StatusUnprocessableEntity, "session has no guide profile"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, "end date must not precede start date"
	case errors.Is(err, domain.ErrUnknownService):
		return http.StatusUnprocessableEntity, "unknown optional service"
	case errors.Is(err, domain.ErrInvalidDailyRate):
		return http.StatusUnprocessableEntity, "guide has no usable daily rate"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, "marketplace API unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
