package ideas

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/apperror"
	"github.com/vidjot/vidjot/internal/flash"
	"github.com/vidjot/vidjot/internal/middleware"
)

// Handler handles HTTP requests for the idea lifecycle. Handlers are thin:
// bind, call the service, flash + redirect or render.
type Handler struct {
	service IdeaService
	flashes *flash.Store
}

// NewHandler creates a new ideas handler with the given dependencies.
func NewHandler(service IdeaService, flashes *flash.Store) *Handler {
	return &Handler{service: service, flashes: flashes}
}

// List renders all ideas, newest first (GET /ideas).
func (h *Handler) List(c echo.Context) error {
	ideas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return middleware.Render(c, http.StatusOK, ListPage(ideas))
}

// AddForm renders the empty add form (GET /ideas/add).
func (h *Handler) AddForm(c echo.Context) error {
	return middleware.Render(c, http.StatusOK, AddPage())
}

// Add creates a new idea from the form submission (POST /ideas/add).
func (h *Handler) Add(c echo.Context) error {
	var req IdeaRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	_, err := h.service.Create(c.Request().Context(), CreateIdeaInput{
		Title:   req.Title,
		Details: req.Details,
	})
	if err != nil {
		if apperror.SafeCode(err) == http.StatusUnprocessableEntity {
			h.flash(c, flash.CategoryError, apperror.SafeMessage(err))
			return c.Redirect(http.StatusSeeOther, "/ideas/add")
		}
		return err
	}

	h.flash(c, flash.CategorySuccess, "Your idea has been saved")
	return c.Redirect(http.StatusSeeOther, "/ideas")
}

// EditForm renders the edit form pre-filled with the idea's current text
// (GET /ideas/edit/:id). An unknown ID gets the 404 page.
func (h *Handler) EditForm(c echo.Context) error {
	id, err := ideaID(c)
	if err != nil {
		return err
	}

	idea, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return middleware.Render(c, http.StatusOK, EditPage(idea))
}

// Edit replaces an idea's title and details (POST /ideas/edit/:id).
func (h *Handler) Edit(c echo.Context) error {
	id, err := ideaID(c)
	if err != nil {
		return err
	}

	var req IdeaRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if err := h.service.Update(c.Request().Context(), id, UpdateIdeaInput{
		Title:   req.Title,
		Details: req.Details,
	}); err != nil {
		if apperror.SafeCode(err) == http.StatusUnprocessableEntity {
			h.flash(c, flash.CategoryError, apperror.SafeMessage(err))
			return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/ideas/edit/%d", id))
		}
		return err
	}

	h.flash(c, flash.CategorySuccess, "Your idea has been updated")
	return c.Redirect(http.StatusSeeOther, "/ideas")
}

// Delete removes an idea (GET /ideas/delete/:id). Deleting an ID that was
// already gone still reports success -- the list ends up the same.
func (h *Handler) Delete(c echo.Context) error {
	id, err := ideaID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.flash(c, flash.CategorySuccess, "Your idea has been deleted")
	return c.Redirect(http.StatusSeeOther, "/ideas")
}

// ideaID parses the :id route parameter.
func ideaID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewBadRequest("invalid idea id")
	}
	return id, nil
}

// flash writes a flash message, logging instead of failing the request if
// the flash store is unreachable.
func (h *Handler) flash(c echo.Context, category, message string) {
	if err := h.flashes.Set(c, category, message); err != nil {
		slog.Warn("failed to set flash",
			slog.String("category", category),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}
}
