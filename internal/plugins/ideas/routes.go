package ideas

import (
	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/flash"
	"github.com/vidjot/vidjot/internal/plugins/auth"
)

// RegisterRoutes sets up all idea routes. Every route sits behind the
// authenticated gate -- anonymous visitors are bounced to the login page
// before any handler runs.
func RegisterRoutes(e *echo.Echo, h *Handler, flashes *flash.Store) {
	g := e.Group("/ideas", auth.RequireAuthenticated(flashes))

	g.GET("", h.List)
	g.GET("/add", h.AddForm)
	g.POST("/add", h.Add)
	g.GET("/edit/:id", h.EditForm)
	g.POST("/edit/:id", h.Edit)
	g.GET("/delete/:id", h.Delete)
}
