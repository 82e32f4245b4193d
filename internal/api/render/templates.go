// Package render plugs html/template into echo's Renderer hook.
package render

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// Templates is an echo.Renderer over every *.html file of one directory,
// parsed once at startup. Each file is addressed by its base name; shared
// fragments are declared with {{define}} in any of them.
type Templates struct {
	set *template.Template
}

// Load parses dir/*.html.
func Load(dir string) (*Templates, error) {
	set, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return &Templates{set: set}, nil
}

// Has reports whether a template with the given name was loaded.
func (t *Templates) Has(name string) bool {
	return t.set.Lookup(name) != nil
}

func (t *Templates) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return t.set.ExecuteTemplate(w, name, data)
}
