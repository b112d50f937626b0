package cli

import (
	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/introspect"
	"github.com/toyz/loggen/internal/utils"
)

// Config holds the configuration for one generation run
type Config struct {
	// TypeName is the fully-qualified type to wrap, e.g. io.Reader
	TypeName string

	// Package is the package clause of the generated file
	Package string

	// PackagePath is the import path of the generated package. When empty it
	// is derived from the go.mod enclosing Output.
	PackagePath string

	// Dir is where the go tool runs to resolve TypeName ("" = working directory)
	Dir string

	// TemplatePath loads an extra template from disk
	TemplatePath string

	// TemplateName selects the template to render. Defaults to the file
	// loaded from TemplatePath, else the built-in logging wrapper.
	TemplateName string

	// Output is the destination file; "" or "-" writes to stdout
	Output string

	// Promoted includes methods promoted from embedded types
	Promoted bool

	// Skip holds glob patterns of method names to leave out
	Skip []string

	// NoFormat disables gofmt of the rendered output
	NoFormat bool

	Verbose bool
	Quiet   bool
}

// ToStdout reports whether output goes to stdout
func (c *Config) ToStdout() bool {
	return c.Output == "" || c.Output == "-"
}

// Validate checks the configuration before a run
func (c *Config) Validate() error {
	typeName := utils.NewValidatorChain(
		utils.NotEmpty("type"),
		utils.Custom("type", "must be of the form <import path>.<TypeName>", func(name string) bool {
			_, _, ok := introspect.SplitQualifiedName(name)
			return ok
		}),
	)
	if err := typeName.Validate(c.TypeName); err != nil {
		return configurationError(err).
			WithSuggestion("pass the type as <import path>.<TypeName>, e.g. io.Reader")
	}

	packageName := utils.NewValidatorChain(utils.NotEmpty("package"), utils.IsValidGoIdentifier("package"))
	if err := packageName.Validate(c.Package); err != nil {
		return configurationError(err)
	}

	if c.Verbose && c.Quiet {
		return loggenerrors.Configuration("flags", "--verbose and --quiet are mutually exclusive")
	}
	return nil
}

// configurationError converts a field validation failure
func configurationError(err error) *loggenerrors.BaseError {
	verr, ok := err.(utils.ValidationError)
	if !ok {
		return loggenerrors.Configuration("config", err.Error())
	}
	return loggenerrors.Configuration(verr.Field, verr.Message).WithContext("value", verr.Value)
}
