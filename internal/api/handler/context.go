package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/trailconnect/web-gateway/internal/api/middleware"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// currentSession returns the snapshot injected by the Session middleware.
// ok is false for anonymous requests.
func currentSession(c echo.Context) (domain.Session, bool) {
	session, ok := c.Get(apimiddleware.ContextKeySession).(domain.Session)
	return session, ok
}

func sessionID(c echo.Context) string {
	sid, _ := c.Get(apimiddleware.ContextKeySessionID).(string)
	return sid
}

// credential returns the backend session cookie pair to replay; empty for
// anonymous requests, which public discovery endpoints accept.
func credential(c echo.Context) string {
	cred, _ := c.Get(apimiddleware.ContextKeyCredential).(string)
	return cred
}

// ctxActor derives the service-layer actor from the session and performs
// a fast-fail check before any service call: an unauthenticated session
// must never reach role-dependent logic (including the guide-view
// fallback of the role router).
func ctxActor(c echo.Context) (ports.Actor, error) {
	session, ok := currentSession(c)
	if !ok || !session.IsAuthenticated || session.User == nil {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	actor := ports.Actor{UserID: session.User.ID, Role: session.User.Role}
	if session.GuideProfile != nil {
		actor.GuideProfileID = session.GuideProfile.ID
	}
	return actor, nil
}
