package cli

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/toyz/loggen/internal/generator"
)

// fixtureUniverse type-checks the fixture packages and everything the
// wrappers import in one graph, so identical types share one object
func fixtureUniverse(t *testing.T) map[string]*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Context: context.Background(),
		Dir:     fixtureDir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes,
	}
	roots, err := packages.Load(cfg,
		"example.com/fixture/shapes", "example.com/fixture/vault", "log/slog", "time")
	require.NoError(t, err)

	all := make(map[string]*packages.Package)
	packages.Visit(roots, nil, func(p *packages.Package) {
		all[p.PkgPath] = p
	})
	for _, root := range roots {
		require.Empty(t, root.Errors, root.PkgPath)
	}
	return all
}

type universeImporter map[string]*packages.Package

func (u universeImporter) Import(path string) (*types.Package, error) {
	if p, ok := u[path]; ok {
		return p.Types, nil
	}
	return nil, fmt.Errorf("%s is not in the fixture universe", path)
}

// typeCheck checks generated code as one more file of pkgPath. Files already
// belonging to pkgPath are parsed and checked with it.
func typeCheck(t *testing.T, universe map[string]*packages.Package, pkgPath string, generated []byte) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	var files []*ast.File
	if existing, ok := universe[pkgPath]; ok {
		for _, name := range existing.GoFiles {
			f, err := parser.ParseFile(fset, name, nil, 0)
			require.NoError(t, err)
			files = append(files, f)
		}
	}
	f, err := parser.ParseFile(fset, "wrapper.go", generated, 0)
	require.NoError(t, err, string(generated))
	files = append(files, f)

	conf := types.Config{Importer: universeImporter(universe)}
	pkg, err := conf.Check(pkgPath, fset, files, nil)
	require.NoError(t, err, string(generated))
	return pkg
}

func generate(t *testing.T, cfg Config) ([]byte, GenerationSummary) {
	t.Helper()
	var out bytes.Buffer
	g, diag := newTestGenerator(&out)
	require.NoError(t, g.Run(context.Background(), cfg), diag.String())
	return out.Bytes(), g.GetSummary()
}

func TestGeneratedWrappersTypeCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}
	universe := fixtureUniverse(t)

	t.Run("interface", func(t *testing.T) {
		code, _ := generate(t, Config{TypeName: "example.com/fixture/shapes.Shape", Package: "logging", Dir: fixtureDir})
		pkg := typeCheck(t, universe, "example.com/fixture/logging", code)

		wrapper := pkg.Scope().Lookup("LoggingShape")
		require.NotNil(t, wrapper)
		shape := universe["example.com/fixture/shapes"].Types.Scope().Lookup("Shape").Type()
		iface := shape.Underlying().(*types.Interface)
		assert.True(t, types.Implements(types.NewPointer(wrapper.Type()), iface))
	})

	t.Run("struct", func(t *testing.T) {
		code, _ := generate(t, Config{TypeName: "example.com/fixture/shapes.Base", Package: "logging", Dir: fixtureDir})
		pkg := typeCheck(t, universe, "example.com/fixture/logging", code)
		assert.NotNil(t, pkg.Scope().Lookup("NewLoggingBase"))
	})

	t.Run("unnameable and reserved methods from another package", func(t *testing.T) {
		code, summary := generate(t, Config{TypeName: "example.com/fixture/vault.Vault", Package: "logging", Dir: fixtureDir})
		typeCheck(t, universe, "example.com/fixture/logging", code)

		assert.Equal(t, 1, summary.Methods)
		assert.Contains(t, string(code), "func (w *LoggingVault) Name() string")
		assert.ElementsMatch(t, []generator.Exclusion{
			{Method: "NewVault", Reason: generator.ExcludedStatic},
			{Method: "render", Reason: generator.ExcludedPrivate},
			{Method: "logger", Reason: generator.ExcludedPrivate},
			{Method: "Reveal", Reason: generator.ExcludedUnnameable},
			{Method: "Take", Reason: generator.ExcludedUnnameable},
			{Method: "Vault", Reason: generator.ExcludedReserved},
		}, summary.Excluded)
	})

	t.Run("same package", func(t *testing.T) {
		code, summary := generate(t, Config{
			TypeName:    "example.com/fixture/vault.Vault",
			Package:     "vault",
			PackagePath: "example.com/fixture/vault",
			Dir:         fixtureDir,
		})
		typeCheck(t, universe, "example.com/fixture/vault", code)

		assert.Contains(t, string(code), "func (w *LoggingVault) Reveal() secret")
		assert.Contains(t, string(code), "func (w *LoggingVault) render(arg0 *template.Template)")
		assert.ElementsMatch(t, []generator.Exclusion{
			{Method: "NewVault", Reason: generator.ExcludedStatic},
			{Method: "logger", Reason: generator.ExcludedReserved},
			{Method: "Vault", Reason: generator.ExcludedReserved},
		}, summary.Excluded)
		assert.Equal(t, 4, summary.Methods)
	})
}
