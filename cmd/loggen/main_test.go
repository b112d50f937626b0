package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../internal/introspect/testdata/fixture"

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"loggen"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLI_Help(t *testing.T) {
	code, stdout, _ := runCLI("--help")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "loggen")
	assert.Contains(t, stdout, "--package")
	assert.Contains(t, stdout, "--skip")
}

func TestCLI_UsageErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "no arguments", args: nil, expected: "exactly one type name is required"},
		{name: "two arguments", args: []string{"-p", "wrap", "io.Reader", "io.Writer"}, expected: "exactly one type name is required"},
		{name: "unqualified type", args: []string{"-p", "wrap", "Reader"}, expected: "must be of the form"},
		{name: "missing package", args: []string{"io.Reader"}, expected: "invalid package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tt.args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "ConfigurationError")
			assert.Contains(t, stderr, tt.expected)
		})
	}
}

func TestCLI_GeneratesToStdout(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}
	code, stdout, stderr := runCLI("--package", "logging", "--dir", fixtureDir, "example.com/fixture/shapes.Shape")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "package logging")
	assert.Contains(t, stdout, "type LoggingShape struct")
	assert.Contains(t, stderr, "Generation complete")
	assert.NotContains(t, stderr, "package logging")
}

func TestCLI_GeneratesToFile(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}
	target := filepath.Join(t.TempDir(), "shape_logging.go")
	code, stdout, stderr := runCLI("-q", "-p", "logging", "-o", target, "--dir", fixtureDir, "--skip", "Area", "example.com/fixture/shapes.Shape")

	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), ") Render(")
	assert.NotContains(t, string(content), ") Area(")
}

func TestCLI_TypeNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go tool")
	}
	code, stdout, stderr := runCLI("-p", "logging", "--dir", fixtureDir, "example.com/fixture/shapes.Circle")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "TypeNotFoundError")
}
