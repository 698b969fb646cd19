// Package layouts renders the shared site chrome (head, nav, flash banners,
// footer) around page content. Pages compose with Base so the chrome lives
// in exactly one place.
package layouts

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed layout.tmpl
var layoutFS embed.FS

// layoutTmpl holds the layout_top and layout_bottom template definitions.
var layoutTmpl = template.Must(template.ParseFS(layoutFS, "layout.tmpl"))

// chrome is the data the layout templates render: page title, session user,
// one-shot flash messages, and the active path for nav highlighting.
type chrome struct {
	Title        string
	Username     string
	FlashError   string
	FlashSuccess string
	ActivePath   string
}

// Base wraps a content component with the site chrome. Layout data (user,
// flashes, active path) is read from the Go context populated by the
// LayoutInjector in middleware.Render.
func Base(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data := chrome{
			Title:        title,
			Username:     GetUsername(ctx),
			FlashError:   GetFlashError(ctx),
			FlashSuccess: GetFlashSuccess(ctx),
			ActivePath:   GetActivePath(ctx),
		}

		if err := layoutTmpl.ExecuteTemplate(w, "layout_top", data); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		return layoutTmpl.ExecuteTemplate(w, "layout_bottom", data)
	})
}
