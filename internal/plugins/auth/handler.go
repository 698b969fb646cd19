package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidjot/vidjot/internal/apperror"
	"github.com/vidjot/vidjot/internal/flash"
	"github.com/vidjot/vidjot/internal/middleware"
)

// Handler handles HTTP requests for identity operations (login, register,
// logout). Handlers are thin: they bind the request, call the service, and
// translate the outcome into a flash plus redirect. No business logic lives
// here.
type Handler struct {
	service      AuthService
	flashes      *flash.Store
	cookieMaxAge time.Duration
}

// NewHandler creates a new auth handler with the given dependencies.
func NewHandler(service AuthService, flashes *flash.Store, cookieMaxAge time.Duration) *Handler {
	return &Handler{
		service:      service,
		flashes:      flashes,
		cookieMaxAge: cookieMaxAge,
	}
}

// LoginForm renders the login page (GET /users/login).
func (h *Handler) LoginForm(c echo.Context) error {
	return middleware.Render(c, http.StatusOK, LoginPage())
}

// Login processes the login form submission (POST /users/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if req.Email == "" || req.Password == "" {
		h.flash(c, flash.CategoryError, "Please fill out all the required fields")
		return c.Redirect(http.StatusSeeOther, "/users/login")
	}

	user, err := h.service.Login(c.Request().Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if apperror.SafeCode(err) == http.StatusUnauthorized {
			// Unknown email or wrong password -- flash the specific
			// message and send the visitor back to the form.
			h.flash(c, flash.CategoryError, apperror.SafeMessage(err))
			return c.Redirect(http.StatusSeeOther, "/users/login")
		}
		// Store fault -- let the central error handler render a 500 page.
		return err
	}

	setSessionCookie(c, user.Username, h.cookieMaxAge)
	h.flash(c, flash.CategorySuccess, "You are now logged in")
	return c.Redirect(http.StatusSeeOther, "/ideas")
}

// RegisterForm renders the registration page (GET /users/register).
func (h *Handler) RegisterForm(c echo.Context) error {
	return middleware.Render(c, http.StatusOK, RegisterPage())
}

// Register processes the registration form submission (POST /users/register).
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		h.flash(c, flash.CategoryError, "Please fill out all the required fields")
		return c.Redirect(http.StatusSeeOther, "/users/register")
	}

	_, err := h.service.Register(c.Request().Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if apperror.SafeCode(err) == http.StatusConflict {
			h.flash(c, flash.CategoryError, apperror.SafeMessage(err))
			return c.Redirect(http.StatusSeeOther, "/users/register")
		}
		return err
	}

	h.flash(c, flash.CategorySuccess, "Your account has been created")
	return c.Redirect(http.StatusSeeOther, "/users/login")
}

// Logout clears the session cookie (GET /users/logout). There is no
// server-side session to destroy -- the cookie is the whole session.
func (h *Handler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	h.flash(c, flash.CategorySuccess, "You have been logged out")
	return c.Redirect(http.StatusSeeOther, "/users/login")
}

// flash writes a flash message, logging instead of failing the request if
// the flash store is unreachable. The redirect matters more than the banner.
func (h *Handler) flash(c echo.Context, category, message string) {
	if err := h.flashes.Set(c, category, message); err != nil {
		slog.Warn("failed to set flash",
			slog.String("category", category),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}
}
