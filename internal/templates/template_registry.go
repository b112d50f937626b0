package templates

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/models"
	"github.com/toyz/loggen/internal/utils"
)

// DefaultTemplate is the name of the built-in logging wrapper template
const DefaultTemplate = "logging-wrapper"

//go:embed logging_wrapper.go.tmpl
var loggingWrapperTemplate string

// Reserved returns the struct fields and imports a built-in template declares
// next to the overridden methods. ok is false for templates it knows nothing
// about.
func Reserved(name string) (fields []string, imports map[string]string, ok bool) {
	if name != DefaultTemplate {
		return nil, nil, false
	}
	return []string{"logger"}, map[string]string{"slog": "log/slog", "time": "time"}, true
}

// TemplateRegistry provides a centralized way to access named templates
type TemplateRegistry struct {
	templates *utils.Registry[string, string]
}

// NewTemplateRegistry creates a registry holding the built-in templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: utils.NewRegistry[string, string](),
	}
	registry.Register(DefaultTemplate, loggingWrapperTemplate)
	return registry
}

// Register adds or replaces a template
func (tr *TemplateRegistry) Register(name, text string) {
	tr.templates.Register(name, text)
}

// LoadFile registers the template stored at path under its base name and
// returns that name
func (tr *TemplateRegistry) LoadFile(path string) (string, error) {
	name := filepath.Base(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", loggenerrors.Render(name, "load", err).WithContext("path", path)
	}
	tr.Register(name, string(content))
	return name, nil
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	return tr.templates.Get(name)
}

// Names lists the registered template names
func (tr *TemplateRegistry) Names() []string {
	return utils.SortedKeys(tr.templates)
}

// Parse compiles the named template with the helper functions
func (tr *TemplateRegistry) Parse(name string) (*template.Template, error) {
	text, exists := tr.Get(name)
	if !exists {
		return nil, loggenerrors.Render(name, "load", nil).
			WithSuggestion("available templates: " + strings.Join(tr.Names(), ", "))
	}
	tmpl, err := template.New(name).Funcs(FuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, loggenerrors.Render(name, "parse", err)
	}
	return tmpl, nil
}

// FuncMap returns the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"quote":       strconv.Quote,
		"lower":       toCamelCase,
		"deref":       deref,
		"withImports": withImports,
	}
}

// toCamelCase lowercases the first letter
func toCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// withImports merges fixed import paths the template needs into the scope's set
func withImports(set *models.ImportSet, extra ...string) []models.ImportDescriptor {
	merged := models.NewImportSet()
	if set != nil {
		for _, imp := range set.Sorted() {
			merged.Add(imp.QualifiedName)
		}
	}
	merged.AddAll(extra...)
	return merged.Sorted()
}
