package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel orders how much progress output is shown
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem writes progress for humans. It never touches stdout, which
// may be carrying the generated code.
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	indent    int
}

// NewDiagnosticSystemWithWriter creates a diagnostic system on output.
// Timestamps are shown from DiagnosticVerbose up.
func NewDiagnosticSystemWithWriter(level DiagnosticLevel, output io.Writer, useColors bool) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: useColors,
		showTime:  level >= DiagnosticVerbose,
		output:    output,
	}
}

func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	d.tagged(DiagnosticWarn, "WARN", color.FgYellow, format, args...)
}

func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	d.tagged(DiagnosticInfo, "INFO", color.FgBlue, format, args...)
}

func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	d.tagged(DiagnosticInfo, "SUCCESS", color.FgGreen, format, args...)
}

func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	d.tagged(DiagnosticVerbose, "VERBOSE", color.FgHiBlack, format, args...)
}

func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	d.tagged(DiagnosticDebug, "DEBUG", color.FgMagenta, format, args...)
}

// Section prints an untagged heading
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		d.paint(color.FgCyan, color.Bold).Fprintf(d.output, "%s%s\n", d.getIndent(), title)
	}
}

// List prints a bullet, verbose only
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "%s- %s\n", d.getIndent(), fmt.Sprintf(format, args...))
	}
}

// PhaseItem prints a finished step
func (d *DiagnosticSystem) PhaseItem(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.paint(color.FgGreen).Fprint(d.output, d.getIndent()+"✓ ")
		fmt.Fprintln(d.output, fmt.Sprintf(format, args...))
	}
}

func (d *DiagnosticSystem) Indent() { d.indent++ }

func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary prints title and one line per stat, keys sorted
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(d.output, "\n%s\n", title)
	for _, key := range keys {
		fmt.Fprintf(d.output, "   %s: %v\n", key, stats[key])
	}
}

func (d *DiagnosticSystem) tagged(min DiagnosticLevel, tag string, attr color.Attribute, format string, args ...interface{}) {
	if d.level < min {
		return
	}
	var line strings.Builder
	line.WriteString(d.getIndent())
	if d.showTime {
		line.WriteString(time.Now().Format("15:04:05 "))
	}
	line.WriteString(d.paint(attr).Sprintf("[%s]", tag))
	line.WriteByte(' ')
	fmt.Fprintf(&line, format, args...)
	line.WriteByte('\n')

	io.WriteString(d.output, line.String())
}

func (d *DiagnosticSystem) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if d.useColors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (d *DiagnosticSystem) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// ShouldUseColors honours NO_COLOR, then FORCE_COLOR, then TERM
func ShouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
