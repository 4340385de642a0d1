// Package view renders the server-side HTML pages of both applications.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

const (
	Explorer = "explorer"
	Website  = "website"

	extrasFile = "extras.tmpl"
)

//go:embed templates
var templateFS embed.FS

// Base is embedded in every page's data.
type Base struct {
	Lang        string
	Dir         string
	CoinName    string
	CoinSymbol  string
	CurrentPage string
}

// Renderer implements gin's render.HTMLRender with one template set per
// page, each parsed together with the shared extras.tmpl.
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses templates/<app>. Each page file must {{define}} a template
// named after the file.
func New(app string) (*Renderer, error) {
	dir := path.Join("templates", app)
	entries, err := fs.ReadDir(templateFS, dir)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", app, err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	funcs := FuncMap()
	for _, e := range entries {
		if e.IsDir() || e.Name() == extrasFile || path.Ext(e.Name()) != ".tmpl" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".tmpl")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			path.Join(dir, e.Name()),
			path.Join(dir, extrasFile),
		)
		if err != nil {
			return nil, fmt.Errorf("view %s/%s: %w", app, name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Instance is called by gin's c.HTML.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		return missing(name)
	}
	return render.HTML{Template: t, Name: name, Data: data}
}

// Pages lists the parsed page names.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

type missing string

func (m missing) Render(http.ResponseWriter) error {
	return fmt.Errorf("view: no template %q", string(m))
}

func (m missing) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
