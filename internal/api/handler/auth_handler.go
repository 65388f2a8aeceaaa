package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/trailconnect/web-gateway/internal/api/middleware"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// AuthHandler owns the session lifecycle: register, login, logout, and
// the session probe the browser calls on every page load.
type AuthHandler struct {
	sessions  ports.SessionManager
	policy    *ImagePolicy
	cookieTTL time.Duration
	secure    bool
}

func NewAuthHandler(sessions ports.SessionManager, policy *ImagePolicy, cookieTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, policy: policy, cookieTTL: cookieTTL, secure: secure}
}

// Register creates a new account. No session is established; the
// browser is expected to follow up with a login.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusBadRequest
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, toUserResponse(h.policy, user))
}

// Login authenticates against the remote API and sets the gateway
// session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	started, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBackendUnavailable):
			status = http.StatusBadGateway
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	c.SetCookie(h.sessionCookie(started.Token, h.cookieTTL))
	return c.JSON(http.StatusOK, toSessionResponse(h.policy, started.Session))
}

// Logout drops the session on both sides and expires the cookie. Always
// answers 200: a logout with no session is already in the desired state.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := sessionID(c); sid != "" {
		_ = h.sessions.Logout(c.Request().Context(), sid, credential(c))
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Profile reports the snapshot recovered by the middleware, view
// included. Anonymous visitors get {"is_authenticated": false}.
func (h *AuthHandler) Profile(c echo.Context) error {
	session, _ := currentSession(c)
	return c.JSON(http.StatusOK, toSessionResponse(h.policy, session))
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     apimiddleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
