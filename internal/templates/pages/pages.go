// Package pages holds the site-level pages that don't belong to a plugin:
// the landing page, the about page, and the error page rendered by the
// central error handler. Plugin-specific pages live in their plugin package.
package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/vidjot/vidjot/internal/templates/layouts"
)

//go:embed *.tmpl
var files embed.FS

var tmpl = template.Must(template.ParseFS(files, "*.tmpl"))

// page adapts a named template into a component the render helper can write.
func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tmpl.ExecuteTemplate(w, name, data)
	})
}

// Landing renders the home page.
func Landing() templ.Component {
	return layouts.Base("Home", page("home.tmpl", nil))
}

// About renders the about page.
func About() templ.Component {
	return layouts.Base("About", page("about.tmpl", nil))
}

// errorData is the data for the error page template.
type errorData struct {
	Code    int
	Message string
}

// ErrorPage renders a uniform error page for the given status code and
// user-safe message. Used by the central error handler for all unrecovered
// failures.
func ErrorPage(code int, message string) templ.Component {
	return layouts.Base(fmt.Sprintf("Error %d", code), page("error.tmpl", errorData{
		Code:    code,
		Message: message,
	}))
}
