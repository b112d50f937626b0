package cli

import (
	"context"
	"io"
	"os"
	"time"

	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/generator"
	"github.com/toyz/loggen/internal/introspect"
	"github.com/toyz/loggen/internal/models"
	"github.com/toyz/loggen/internal/templates"
	"github.com/toyz/loggen/internal/utils"
)

// GenerationSummary contains statistics about a finished run
type GenerationSummary struct {
	TypeName    string
	Destination string
	Template    string
	Output      string
	Methods     int
	Imports     int
	Excluded    []generator.Exclusion
	Elapsed     time.Duration
}

// Generator coordinates a generation run: resolve, classify, render, write
type Generator struct {
	moduleResolver *ModuleResolver
	diagnostics    *utils.DiagnosticSystem
	stdout         io.Writer
	summary        GenerationSummary
}

// NewGenerator creates a generator that writes code to os.Stdout
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		moduleResolver: NewModuleResolver(),
		diagnostics:    diagnostics,
		stdout:         os.Stdout,
	}
}

// SetStdout replaces the writer used for stdout output
func (g *Generator) SetStdout(w io.Writer) {
	g.stdout = w
}

// GetSummary returns the summary of the last successful run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run(ctx context.Context, cfg Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{TypeName: cfg.TypeName}

	if err := cfg.Validate(); err != nil {
		return err
	}
	g.diagnostics.Section("Wrapping " + cfg.TypeName)

	destination, err := g.moduleResolver.ResolveDestination(&cfg)
	if err != nil {
		return loggenerrors.Configuration("package-path", err.Error()).
			WithSuggestion("pass --package-path explicitly")
	}
	g.diagnostics.Debug("Destination package path: %q", destination)

	registry := templates.NewTemplateRegistry()
	templateName, err := g.selectTemplate(registry, cfg)
	if err != nil {
		return err
	}

	scope, err := g.classify(ctx, cfg, destination, templateName)
	if err != nil {
		return err
	}

	renderer := templates.NewRenderer(registry)
	renderer.SetFormat(!cfg.NoFormat)

	sink, err := openSink(cfg.Output, g.stdout)
	if err != nil {
		return err
	}
	if err := renderer.Render(sink, templateName, scope); err != nil {
		sink.Close(true)
		return err
	}
	if err := sink.Close(false); err != nil {
		return err
	}

	g.summary.Destination = destination
	g.summary.Template = templateName
	g.summary.Output = sink.path
	g.summary.Methods = len(scope.Methods)
	g.summary.Imports = scope.Imports.Len()
	g.summary.Elapsed = time.Since(startTime)
	g.diagnostics.Success("Wrote %s", sink.path)
	g.diagnostics.Verbose("Generation finished in %v", g.summary.Elapsed)
	return nil
}

// classify loads the type and builds its generation scope
func (g *Generator) classify(ctx context.Context, cfg Config, destination, templateName string) (*models.GenerationScope, error) {
	loader := introspect.NewLoader(cfg.Dir, introspect.Options{
		DestinationPath: destination,
		Promoted:        cfg.Promoted,
	})

	classifier := generator.NewClassifierWithResolver(cfg.Package, loader)
	if err := classifier.SetSkipPatterns(cfg.Skip); err != nil {
		return nil, loggenerrors.Configuration("skip", err.Error())
	}
	if fields, imports, ok := templates.Reserved(templateName); ok {
		classifier.Reserve(fields, imports)
	}

	g.diagnostics.Info("Loading %s", cfg.TypeName)
	scope, excluded, err := classifier.ClassifyName(ctx, cfg.TypeName)
	if err != nil {
		return nil, err
	}

	g.diagnostics.Indent()
	g.diagnostics.PhaseItem("%d methods eligible for override", len(scope.Methods))
	for _, ex := range excluded {
		switch ex.Reason {
		case generator.ExcludedUnnameable, generator.ExcludedReserved, generator.ExcludedImportClash:
			g.diagnostics.Warn("%s not wrapped: %s", ex.Method, ex.Reason)
		default:
			g.diagnostics.List("%s excluded (%s)", ex.Method, ex.Reason)
		}
	}
	g.diagnostics.Unindent()

	g.summary.Excluded = excluded
	return scope, nil
}

// selectTemplate registers the template file if any and picks the template to render
func (g *Generator) selectTemplate(registry *templates.TemplateRegistry, cfg Config) (string, error) {
	name := templates.DefaultTemplate
	if cfg.TemplatePath != "" {
		loaded, err := registry.LoadFile(cfg.TemplatePath)
		if err != nil {
			return "", err
		}
		name = loaded
	}
	if cfg.TemplateName != "" {
		name = cfg.TemplateName
	}
	g.diagnostics.Debug("Rendering template %q", name)
	return name, nil
}
