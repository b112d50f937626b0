package introspect

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/tools/go/packages"

	loggenerrors "github.com/toyz/loggen/internal/errors"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Loader resolves fully-qualified type names through go/packages
type Loader struct {
	dir  string
	opts Options
}

// NewLoader creates a loader that runs the go tool in dir ("" = working directory)
func NewLoader(dir string, opts Options) *Loader {
	return &Loader{dir: dir, opts: opts}
}

// SplitQualifiedName splits "<import path>.<TypeName>" at the last dot
func SplitQualifiedName(qualifiedName string) (pkgPath, name string, ok bool) {
	slash := strings.LastIndex(qualifiedName, "/")
	dot := strings.LastIndex(qualifiedName, ".")
	if dot <= slash || dot == 0 || dot == len(qualifiedName)-1 {
		return "", "", false
	}
	return qualifiedName[:dot], qualifiedName[dot+1:], true
}

// Load resolves and inspects the named type
func (l *Loader) Load(ctx context.Context, qualifiedName string) (*GoType, error) {
	pkgPath, name, ok := SplitQualifiedName(qualifiedName)
	if !ok {
		return nil, loggenerrors.TypeNotFound(qualifiedName, fmt.Errorf("expected <import path>.<TypeName>"))
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     l.dir,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, loggenerrors.TypeNotFound(qualifiedName, err)
	}
	if len(pkgs) != 1 {
		return nil, loggenerrors.TypeNotFound(qualifiedName, fmt.Errorf("pattern %q matched %d packages", pkgPath, len(pkgs)))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, loggenerrors.TypeNotFound(qualifiedName, pkg.Errors[0])
	}
	if pkg.Types == nil {
		return nil, loggenerrors.TypeNotFound(qualifiedName, fmt.Errorf("no type information for %s", pkgPath))
	}

	return Inspect(pkg.Types, pkg.Fset, pkg.Syntax, name, l.opts)
}

// Resolve is Load returning the TypeInfo capability
func (l *Loader) Resolve(ctx context.Context, qualifiedName string) (TypeInfo, error) {
	g, err := l.Load(ctx, qualifiedName)
	if err != nil {
		return nil, err
	}
	return g, nil
}
