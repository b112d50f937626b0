package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/introspect"
	"github.com/toyz/loggen/internal/models"
)

// ExclusionReason says why a declared method was left out of the scope
type ExclusionReason string

const (
	ExcludedRoot        ExclusionReason = "predeclared root method"
	ExcludedStatic      ExclusionReason = "static"
	ExcludedPrivate     ExclusionReason = "private"
	ExcludedFinal       ExclusionReason = "final"
	ExcludedDirective   ExclusionReason = "skip directive"
	ExcludedSkipPattern ExclusionReason = "skip pattern"
	ExcludedUnnameable  ExclusionReason = "unnameable type in signature"
	ExcludedReserved    ExclusionReason = "name reserved by the template"
	ExcludedImportClash ExclusionReason = "package name clash"
)

// Exclusion records one method the classifier dropped
type Exclusion struct {
	Method string
	Reason ExclusionReason
}

// Classifier turns a type handle into a GenerationScope
type Classifier struct {
	packageName string
	roots       introspect.MethodSet
	skip        []glob.Glob
	resolver    Resolver
	// names the template declares beside the overridden methods
	reservedFields   map[string]bool
	reservedPackages map[string]string
}

// NewClassifier creates a classifier that generates into packageName and
// filters the universe root methods
func NewClassifier(packageName string) *Classifier {
	return &Classifier{
		packageName: packageName,
		roots:       introspect.RootMethods(),
	}
}

// NewClassifierWithResolver creates a classifier that can resolve type names
func NewClassifierWithResolver(packageName string, resolver Resolver) *Classifier {
	c := NewClassifier(packageName)
	c.resolver = resolver
	return c
}

// SetRootMethods replaces the root method identity set
func (c *Classifier) SetRootMethods(roots introspect.MethodSet) {
	c.roots = roots
}

// SetSkipPatterns compiles glob patterns matched against method names
func (c *Classifier) SetSkipPatterns(patterns []string) error {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return fmt.Errorf("invalid skip pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	c.skip = compiled
	return nil
}

// Reserve declares the struct fields and imports a template adds to every
// wrapper. Methods named like a field, or like the embedded supertype, and
// methods whose signature needs a different package under a reserved name
// are left out.
func (c *Classifier) Reserve(fields []string, packages map[string]string) {
	c.reservedFields = make(map[string]bool, len(fields))
	for _, f := range fields {
		c.reservedFields[f] = true
	}
	c.reservedPackages = packages
}

// ClassifyName resolves qualifiedName and classifies it
func (c *Classifier) ClassifyName(ctx context.Context, qualifiedName string) (*models.GenerationScope, []Exclusion, error) {
	if c.resolver == nil {
		return nil, nil, fmt.Errorf("classifier has no resolver")
	}
	ti, err := c.resolver.Resolve(ctx, qualifiedName)
	if err != nil {
		return nil, nil, err
	}
	if name, path := selfPackage(ti.Self()); name != "" {
		if reserved, ok := c.reservedPackages[name]; ok && reserved != path {
			return nil, nil, loggenerrors.UnsupportedType(ti.QualifiedName(),
				fmt.Sprintf("package name %s is taken by %q in the template", name, reserved))
		}
	}
	scope, excluded := c.ClassifyWithReport(ti)
	return scope, excluded, nil
}

// Classify builds the GenerationScope for ti
func (c *Classifier) Classify(ti introspect.TypeInfo) *models.GenerationScope {
	scope, _ := c.ClassifyWithReport(ti)
	return scope
}

// ClassifyWithReport builds the GenerationScope for ti and reports every
// declared method it left out
func (c *Classifier) ClassifyWithReport(ti introspect.TypeInfo) (*models.GenerationScope, []Exclusion) {
	self := ti.Self()
	scope := &models.GenerationScope{
		Package:            c.packageName,
		InheritanceKeyword: models.InheritanceExtends,
		SuperTypeName:      ti.Name(),
		SuperTypeRef:       self.Name,
		Methods:            make([]*models.MethodDescriptor, 0),
		Imports:            models.NewImportSet(),
	}
	if ti.IsInterfaceLike() {
		scope.InheritanceKeyword = models.InheritanceImplements
	}

	packages := make(map[string]string, len(c.reservedPackages)+1)
	for name, path := range c.reservedPackages {
		packages[name] = path
	}
	if name, path := selfPackage(self); name != "" {
		packages[name] = path
	}

	var excluded []Exclusion
	for _, m := range ti.DeclaredMethods() {
		reason, skip := c.exclusion(m)
		if !skip && c.reserved(ti.Name(), m.Name) {
			reason, skip = ExcludedReserved, true
		}
		// only methods already kept claim package names
		if !skip && clashes(packages, m.Packages) {
			reason, skip = ExcludedImportClash, true
		}
		if skip {
			excluded = append(excluded, Exclusion{Method: m.Name, Reason: reason})
			continue
		}
		for name, path := range m.Packages {
			packages[name] = path
		}
		scope.Methods = append(scope.Methods, c.describe(m, scope.Imports))
	}

	// The wrapper always references its supertype.
	scope.Imports.AddAll(self.Imports...)

	return scope, excluded
}

// exclusion applies the filters in order: root identity first, then the
// non-overridable modifiers, then user exclusions
func (c *Classifier) exclusion(m introspect.MethodInfo) (ExclusionReason, bool) {
	switch {
	case c.roots.Contains(m.Identity):
		return ExcludedRoot, true
	case m.Static:
		return ExcludedStatic, true
	case m.Private:
		return ExcludedPrivate, true
	case m.Unnameable != "":
		return ExcludedUnnameable, true
	case m.Final:
		return ExcludedFinal, true
	case m.Skip:
		return ExcludedDirective, true
	}
	for _, g := range c.skip {
		if g.Match(m.Name) {
			return ExcludedSkipPattern, true
		}
	}
	return "", false
}

func (c *Classifier) reserved(superTypeName, method string) bool {
	if c.reservedFields == nil {
		return false
	}
	return method == superTypeName || c.reservedFields[method]
}

// clashes reports whether a method needs a package under a name the wrapper
// already imports from another path
func clashes(known, needed map[string]string) bool {
	for name, path := range needed {
		if other, ok := known[name]; ok && other != path {
			return true
		}
	}
	return false
}

// selfPackage returns the package name and path of a qualified supertype
// reference such as "*shapes.Base"
func selfPackage(self introspect.TypeRef) (string, string) {
	if len(self.Imports) == 0 {
		return "", ""
	}
	name, _, ok := strings.Cut(strings.TrimPrefix(self.Name, "*"), ".")
	if !ok {
		return "", ""
	}
	return name, self.Imports[0]
}

func (c *Classifier) describe(m introspect.MethodInfo, imports *models.ImportSet) *models.MethodDescriptor {
	var returnType *string
	if m.Result != nil {
		name := m.Result.Name
		returnType = &name
		imports.AddAll(m.Result.Imports...)
	}

	paramTypes := make([]string, len(m.Params))
	for i, p := range m.Params {
		paramTypes[i] = p.Name
		imports.AddAll(p.Imports...)
	}

	return models.NewMethodDescriptor(m.Visibility, m.Name, returnType, paramTypes, m.Variadic)
}
