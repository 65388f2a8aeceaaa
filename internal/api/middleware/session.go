package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// CookieName is the gateway session cookie holding the signed token.
const CookieName = "tc_session"

// Context keys populated for downstream handlers.
const (
	ContextKeySession    = "session"
	ContextKeySessionID  = "sid"
	ContextKeyCredential = "api_token"
)

// Session recovers the caller's session from the gateway cookie: it
// validates the signed token, resumes (and, on first sight, bootstraps)
// the matching session store, and puts the snapshot into the request
// context. Requests without a valid cookie simply run anonymously: an
// expired or tampered token is indistinguishable from a logged-out
// visitor, matching how a failed bootstrap is treated everywhere else.
func Session(jwtSecret string, sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sid, _ := claims["sid"].(string)
			credential, _ := claims["api_token"].(string)
			if sid == "" {
				return next(c)
			}

			snapshot := sessions.Resume(c.Request().Context(), sid, credential)

			c.Set(ContextKeySession, snapshot)
			c.Set(ContextKeySessionID, sid)
			c.Set(ContextKeyCredential, credential)

			return next(c)
		}
	}
}
