// Package web holds the embedded HTML pages and the header view model.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templates embed.FS

// Page names accepted by Renderer.
const (
	PageHome      = "home"
	PageDemo      = "demo"
	PageSettings  = "settings"
	PagePartners  = "partners"
	PageContact   = "contact"
	PageDashboard = "dashboard"
	PageSignIn    = "signin"
	PageSignUp    = "signup"
)

var pages = []string{PageHome, PageDemo, PageSettings, PagePartners, PageContact, PageDashboard, PageSignIn, PageSignUp}

// View is the data every page template receives.
type View struct {
	Nav      Nav
	DarkMode bool
	Language string
	Data     any
}

// Renderer implements gin's render.HTMLRender so handlers can call c.HTML
// with a page name.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(name).ParseFS(templates,
			"templates/layout.html",
			"templates/auth_script.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page %q", name))
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}
