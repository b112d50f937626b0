package templates

import (
	"bytes"
	"io"

	"golang.org/x/tools/imports"

	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/models"
)

// Renderer executes named templates against a GenerationScope
type Renderer struct {
	registry *TemplateRegistry
	format   bool
}

// NewRenderer creates a renderer that gofmt's its Go output
func NewRenderer(registry *TemplateRegistry) *Renderer {
	return &Renderer{
		registry: registry,
		format:   true,
	}
}

// SetFormat toggles formatting of the rendered output
func (r *Renderer) SetFormat(format bool) {
	r.format = format
}

// Render executes the named template and writes the complete result to w.
// Nothing is written unless rendering and formatting succeed.
func (r *Renderer) Render(w io.Writer, name string, scope *models.GenerationScope) error {
	if scope == nil {
		return loggenerrors.Render(name, "execute", nil).WithContext("reason", "scope cannot be nil")
	}

	tmpl, err := r.registry.Parse(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, scope); err != nil {
		return loggenerrors.Render(name, "execute", err)
	}

	out := buf.Bytes()
	if r.format {
		formatted, err := imports.Process(scope.SuperTypeName+".go", out, &imports.Options{
			FormatOnly: true,
			Comments:   true,
			TabIndent:  true,
			TabWidth:   8,
		})
		if err != nil {
			return loggenerrors.Render(name, "format", err)
		}
		out = formatted
	}

	if _, err := w.Write(out); err != nil {
		return loggenerrors.IO("write", "output", err)
	}
	return nil
}
