// Package view renders the server-side pages. Templates are embedded and
// parsed once; each page is executed through the shared layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by Render.
const (
	PageSignIn    = "signin"
	PageFarmNew   = "farm_new"
	PageBoundary  = "boundary"
	PageDashboard = "dashboard"
)

var pages = []string{PageSignIn, PageFarmNew, PageBoundary, PageDashboard}

var funcs = template.FuncMap{
	"fixed": func(v float64, places int) string {
		return strconv.FormatFloat(v, 'f', places, 64)
	},
	"inc": func(i int) int { return i + 1 },
}

type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{templates: map[string]*template.Template{}}
	for _, p := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+p+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.templates[p] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
