// data.go provides typed context helpers for passing layout data from
// handlers/middleware to page templates. This avoids importing plugin
// types in the layouts package -- only simple types are stored.
//
// Data flow: Handler/Middleware -> Echo Context -> LayoutInjector -> Go Context -> templates
package layouts

import "context"

// ctxKey is a private type for context keys to prevent collisions.
type ctxKey string

const (
	keyUsername     ctxKey = "layout_username"
	keyFlashError   ctxKey = "layout_flash_error"
	keyFlashSuccess ctxKey = "layout_flash_success"
	keyActivePath   ctxKey = "layout_active_path"
)

// --- Setters (called by the layout injector in app/routes.go) ---

// SetUsername stores the logged-in user's name in context.
func SetUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyUsername, name)
}

// SetFlashError stores an error flash message for the current render.
func SetFlashError(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, keyFlashError, msg)
}

// SetFlashSuccess stores a success flash message for the current render.
func SetFlashSuccess(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, keyFlashSuccess, msg)
}

// SetActivePath stores the current request path for nav highlighting.
func SetActivePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, keyActivePath, path)
}

// --- Getters (called when building the page chrome) ---

// GetUsername returns the logged-in user's name, or "" for anonymous visitors.
func GetUsername(ctx context.Context) string {
	name, _ := ctx.Value(keyUsername).(string)
	return name
}

// GetFlashError returns a pending error flash message, or "".
func GetFlashError(ctx context.Context) string {
	msg, _ := ctx.Value(keyFlashError).(string)
	return msg
}

// GetFlashSuccess returns a pending success flash message, or "".
func GetFlashSuccess(ctx context.Context) string {
	msg, _ := ctx.Value(keyFlashSuccess).(string)
	return msg
}

// GetActivePath returns the current request path for nav highlighting.
func GetActivePath(ctx context.Context) string {
	path, _ := ctx.Value(keyActivePath).(string)
	return path
}

// IsAuthenticated returns true if the current request carries a session.
func IsAuthenticated(ctx context.Context) bool {
	return GetUsername(ctx) != ""
}
