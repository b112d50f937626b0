package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticSystem_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   DiagnosticLevel
		present []string
		absent  []string
	}{
		{
			name:   "quiet hides progress",
			level:  DiagnosticError,
			absent: []string{"[WARN]", "[INFO]", "[SUCCESS]", "[DEBUG]", "Wrapping"},
		},
		{
			name:    "warn shows warnings only",
			level:   DiagnosticWarn,
			present: []string{"[WARN] careful"},
			absent:  []string{"[INFO]", "Wrapping"},
		},
		{
			name:    "info hides verbose and debug",
			level:   DiagnosticInfo,
			present: []string{"Wrapping io.Reader", "[WARN] careful", "[INFO] loading io.Reader", "[SUCCESS] done"},
			absent:  []string{"[VERBOSE]", "[DEBUG]", "- item"},
		},
		{
			name:    "debug shows everything",
			level:   DiagnosticDebug,
			present: []string{"[VERBOSE] detail", "[DEBUG] trace", "- item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := NewDiagnosticSystemWithWriter(tt.level, &buf, false)

			d.Section("Wrapping io.Reader")
			d.Warn("careful")
			d.Info("loading %s", "io.Reader")
			d.Success("done")
			d.Verbose("detail")
			d.Debug("trace")
			d.List("item")

			out := buf.String()
			for _, s := range tt.present {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestDiagnosticSystem_IndentAndPhase(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(DiagnosticInfo, &buf, false)

	d.Indent()
	d.PhaseItem("classified %d methods", 3)
	d.Unindent()
	d.Unindent()
	d.Info("flat")

	assert.Equal(t, "  ✓ classified 3 methods\n[INFO] flat\n", buf.String())
}

func TestDiagnosticSystem_SectionFollowsIndent(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(DiagnosticInfo, &buf, false)

	d.Section("Wrapping shapes.Shape")
	d.Indent()
	d.Section("methods")

	assert.Equal(t, "Wrapping shapes.Shape\n  methods\n", buf.String())
}

func TestDiagnosticSystem_SummaryIsSorted(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(DiagnosticInfo, &buf, false)

	d.Summary("Done", map[string]interface{}{"Methods": 2, "Imports": 4})

	assert.Equal(t, "\nDone\n   Imports: 4\n   Methods: 2\n", buf.String())
}

func TestDiagnosticSystem_Colors(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystemWithWriter(DiagnosticInfo, &buf, true)

	d.Info("hello")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "hello")
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors())

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors())

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, ShouldUseColors())
}
