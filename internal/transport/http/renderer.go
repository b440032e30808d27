package http

import (
	"fmt"
	"html/template"
	"io"

	"miyalefilms/web"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer plugs the embedded templates into echo.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("http.NewTemplateRenderer: %w", err)
	}

	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
