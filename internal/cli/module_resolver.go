package cli

import (
	"path/filepath"

	"github.com/toyz/loggen/internal/utils"
)

// ModuleResolver works out the import path of the package being generated
type ModuleResolver struct {
	gomod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		gomod: utils.NewGoModParser(),
	}
}

// ResolveDestination returns the explicit package path if set, else the
// import path of Output's directory inside its module. Stdout output and
// files outside any module resolve to "", which qualifies every type.
func (r *ModuleResolver) ResolveDestination(cfg *Config) (string, error) {
	if cfg.PackagePath != "" {
		return cfg.PackagePath, nil
	}
	if cfg.ToStdout() {
		return "", nil
	}

	dir := filepath.Dir(cfg.Output)
	if _, err := r.gomod.FindGoModFile(dir); err != nil {
		return "", nil
	}
	return r.gomod.ImportPathFor(dir)
}
