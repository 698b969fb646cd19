package ideas

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

// ListPage renders the idea list, newest first.
func ListPage(ideas []Idea) templ.Component {
	return layouts.Base("Ideas", view("list.tmpl", ideas))
}

// AddPage renders the empty add form.
func AddPage() templ.Component {
	return layouts.Base("Add Idea", view("add.tmpl", nil))
}

// EditPage renders the edit form pre-filled with the idea's current text.
func EditPage(idea *Idea) templ.Component {
	return layouts.Base("Edit Idea", view("edit.tmpl", idea))
}
