package auth

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/vidjot/vidjot/internal/templates/layouts"
)

//go:embed *.tmpl
var viewFiles embed.FS

var viewTmpl = template.Must(template.ParseFS(viewFiles, "*.tmpl"))

// view adapts a named template into a component the render helper can write.
func view(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return viewTmpl.ExecuteTemplate(w, name, data)
	})
}

// LoginPage renders the login form.
func LoginPage() templ.Component {
	return layouts.Base("Log In", view("login.tmpl", nil))
}

// RegisterPage renders the registration form.
func RegisterPage() templ.Component {
	return layouts.Base("Register", view("register.tmpl", nil))
}
