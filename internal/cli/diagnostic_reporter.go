package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	loggenerrors "github.com/toyz/loggen/internal/errors"
)

// DiagnosticReporter prints failures with their context and suggestions
type DiagnosticReporter struct {
	out       io.Writer
	verbose   bool
	useColors bool
}

// NewDiagnosticReporter creates a reporter writing to out
func NewDiagnosticReporter(out io.Writer, verbose, useColors bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:       out,
		verbose:   verbose,
		useColors: useColors,
	}
}

// ReportError reports err, expanding loggen errors found anywhere in its chain
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	header := color.New(color.FgRed, color.Bold)
	if r.useColors {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	var lerr loggenerrors.LoggenError
	if !stderrors.As(err, &lerr) {
		header.Fprint(r.out, "error: ")
		fmt.Fprintf(r.out, "%s\n", err.Error())
		return
	}

	header.Fprintf(r.out, "%s: ", lerr.ErrorCode())
	fmt.Fprintf(r.out, "%s\n", err.Error())

	if base, ok := lerr.(*loggenerrors.BaseError); ok && r.verbose {
		for _, key := range base.ContextKeys() {
			fmt.Fprintf(r.out, "  %s: %v\n", key, base.ContextData[key])
		}
	}

	for _, hint := range lerr.Suggestions() {
		fmt.Fprintf(r.out, "  hint: %s\n", hint)
	}

	if help := additionalHelp(lerr.ErrorCode()); help != "" {
		fmt.Fprintf(r.out, "  %s\n", help)
	}
}

// additionalHelp returns general guidance for an error code
func additionalHelp(code loggenerrors.ErrorCode) string {
	switch code {
	case loggenerrors.TypeNotFoundErrorCode:
		return "run loggen from inside the module that can import the type"
	case loggenerrors.UnsupportedTypeErrorCode:
		return "generic types and types unexported outside their package cannot be wrapped"
	case loggenerrors.RenderErrorCode:
		return "use --no-format to inspect output that is not valid Go"
	default:
		return ""
	}
}
