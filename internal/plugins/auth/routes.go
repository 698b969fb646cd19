package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/flash"
	"github.com/vidjot/vidjot/internal/middleware"
)

// RegisterRoutes sets up all identity routes on the given Echo instance.
// Login and register are anonymous-only; logout needs a session. The two
// guards are exported for other plugins to use on their route groups.
//
// POST endpoints are rate-limited to slow brute-force and credential
// stuffing: 10 attempts per IP per minute for login, 5 for register.
func RegisterRoutes(e *echo.Echo, h *Handler, flashes *flash.Store) {
	anonymous := RequireAnonymous(flashes)

	e.GET("/users/login", h.LoginForm, anonymous)
	e.POST("/users/login", h.Login, anonymous, middleware.RateLimit(10, time.Minute))
	e.GET("/users/register", h.RegisterForm, anonymous)
	e.POST("/users/register", h.Register, anonymous, middleware.RateLimit(5, time.Minute))

	e.GET("/users/logout", h.Logout, RequireAuthenticated(flashes))
}
