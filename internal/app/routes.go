package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/middleware"
	"github.com/vidjot/vidjot/internal/plugins/auth"
	"github.com/vidjot/vidjot/internal/plugins/ideas"
	"github.com/vidjot/vidjot/internal/templates/layouts"
	"github.com/vidjot/vidjot/internal/templates/pages"
)

// RegisterRoutes sets up all application routes. It registers public routes
// directly and delegates to each plugin's route registration function.
//
// This is the single place where all routes are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// The layout injector copies per-request data (session user, pending
	// flash messages, active path) into the Go context right before a page
	// renders. Consuming the flashes here is what makes them read-once:
	// a message written before a redirect is cleared by the next render.
	middleware.LayoutInjector = func(c echo.Context, ctx context.Context) context.Context {
		if username := auth.SessionUsername(c); username != "" {
			ctx = layouts.SetUsername(ctx, username)
		}

		errMsg, successMsg, err := a.Flashes.Consume(c)
		if err != nil {
			slog.Warn("failed to consume flash messages", slog.Any("error", err))
		}
		if errMsg != "" {
			ctx = layouts.SetFlashError(ctx, errMsg)
		}
		if successMsg != "" {
			ctx = layouts.SetFlashSuccess(ctx, successMsg)
		}

		return layouts.SetActivePath(ctx, c.Request().URL.Path)
	}

	// --- Public Routes (no gate) ---

	// Landing page.
	e.GET("/", func(c echo.Context) error {
		return middleware.Render(c, http.StatusOK, pages.Landing())
	})

	// About page.
	e.GET("/about", func(c echo.Context) error {
		return middleware.Render(c, http.StatusOK, pages.About())
	})

	// Health check endpoint for Docker health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Plugin Routes ---

	// auth plugin: login, register (anonymous-only), logout (authenticated).
	userRepo := auth.NewUserRepository(a.DB)
	authSvc := auth.NewAuthService(userRepo)
	authHandler := auth.NewHandler(authSvc, a.Flashes, a.Config.Session.CookieMaxAge)
	auth.RegisterRoutes(e, authHandler, a.Flashes)

	// ideas plugin: the whole lifecycle sits behind the authenticated gate.
	ideaRepo := ideas.NewIdeaRepository(a.DB)
	ideaSvc := ideas.NewIdeaService(ideaRepo)
	ideaHandler := ideas.NewHandler(ideaSvc, a.Flashes)
	ideas.RegisterRoutes(e, ideaHandler, a.Flashes)
}
