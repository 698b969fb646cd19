package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/flash"
)

// SessionCookieName is the HTTP cookie carrying the logged-in username.
const SessionCookieName = "vidjot"

// RequireAuthenticated returns middleware that lets a request through only
// when the session cookie is present with a non-empty value. Otherwise it
// writes an error flash and redirects to the login page; the wrapped
// handler never runs.
func RequireAuthenticated(flashes *flash.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionUsername(c) == "" {
				setGateFlash(c, flashes, "Please log in first...")
				return c.Redirect(http.StatusSeeOther, "/users/login")
			}
			return next(c)
		}
	}
}

// RequireAnonymous returns middleware that lets a request through only when
// no session cookie is present. Logged-in visitors are flashed an error and
// redirected to the home page; the wrapped handler never runs.
func RequireAnonymous(flashes *flash.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionUsername(c) != "" {
				setGateFlash(c, flashes, "You don't have permission to visit this page...")
				return c.Redirect(http.StatusSeeOther, "/")
			}
			return next(c)
		}
	}
}

// setGateFlash writes the gate's error flash. A flash store failure must
// not block the redirect, so it is only logged.
func setGateFlash(c echo.Context, flashes *flash.Store, message string) {
	if err := flashes.Set(c, flash.CategoryError, message); err != nil {
		slog.Warn("failed to set gate flash",
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}
}

// SessionUsername reads the logged-in username from the session cookie.
// Returns "" for anonymous visitors.
func SessionUsername(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// setSessionCookie sets the session cookie on the response. The cookie is
// HttpOnly (JS can't read it), Secure behind TLS, and SameSite=Lax.
func setSessionCookie(c echo.Context, username string, maxAge time.Duration) {
	req := c.Request()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    username,
		Path:     "/",
		HttpOnly: true,
		Secure:   req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

// clearSessionCookie removes the session cookie by setting MaxAge to -1.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
