// File path: internal/web/render.go

// Package web renders the server-side HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageHome      = "home"
	PageIdentify  = "identify"
	PageDegassing = "degassing"
)

var pageNames = []string{PageHome, PageIdentify, PageDegassing}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		tmpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes page with data into w. The page is rendered into a buffer
// first so a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	if r == nil {
		return fmt.Errorf("renderer not initialised")
	}
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet and script directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"typeColor": func(t catalog.CylinderType) string { return catalog.TypeColor(t) },
		"statusColor": func(s catalog.Status) string {
			return catalog.StatusColor(s)
		},
		"degassingColor": func(s catalog.DegassingStatus) string {
			return catalog.DegassingColor(s)
		},
		"categoryLabel": site.CategoryLabel,
		"add":           func(a, b int) int { return a + b },
		"stars": func(n int) string {
			if n < 0 {
				n = 0
			}
			if n > 5 {
				n = 5
			}
			return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
		},
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}
}
