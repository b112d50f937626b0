package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(content), 0644))
	return root
}

func TestGoModParser_ParseModuleName(t *testing.T) {
	root := writeModule(t, "module example.com/app\n\ngo 1.22\n")
	p := NewGoModParser()

	name, err := p.ParseModuleName(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", name)

	// Cached result survives the file disappearing
	require.NoError(t, os.Remove(filepath.Join(root, "go.mod")))
	name, err = p.ParseModuleName(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", name)
}

func TestGoModParser_ParseModuleNameErrors(t *testing.T) {
	p := NewGoModParser()

	_, err := p.ParseModuleName("main.go")
	assert.ErrorContains(t, err, "not a go.mod file")

	_, err = p.ParseModuleName(filepath.Join(t.TempDir(), "go.mod"))
	assert.ErrorContains(t, err, "failed to read go.mod file")

	root := writeModule(t, "go 1.22\n")
	_, err = p.ParseModuleName(filepath.Join(root, "go.mod"))
	assert.ErrorContains(t, err, "no module declaration")
}

func TestGoModParser_ImportPathFor(t *testing.T) {
	root := writeModule(t, "module example.com/app\n")
	nested := filepath.Join(root, "internal", "wrap")
	require.NoError(t, os.MkdirAll(nested, 0755))
	p := NewGoModParser()

	got, err := p.ImportPathFor(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app", got)

	got, err = p.ImportPathFor(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/app/internal/wrap", got)

	found, err := p.FindGoModFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "go.mod"), found)
}
