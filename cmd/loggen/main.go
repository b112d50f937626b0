package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	loggencli "github.com/toyz/loggen/internal/cli"
	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/utils"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// app holds the process streams and what the reporter needs after a failure
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	if err := a.command().Run(ctx, args); err != nil {
		loggencli.NewDiagnosticReporter(stderr, a.verbose, utils.ShouldUseColors()).ReportError(err)
		return 1
	}
	return 0
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "loggen",
		Usage:     "Generate a logging wrapper that overrides every eligible method of a Go type",
		ArgsUsage: "<import path>.<TypeName>",
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Usage:   "Package name of the generated file",
			},
			&cli.StringFlag{
				Name:  "package-path",
				Usage: "Import path of the generated package (defaults to the go.mod enclosing --output)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file, - for stdout",
				Value:   "-",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory the go tool resolves the type from",
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Path of a custom text/template file",
			},
			&cli.StringFlag{
				Name:  "template-name",
				Usage: "Name of the registered template to render",
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "Glob pattern of method names to leave out (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "promoted",
				Usage: "Include methods promoted from embedded types",
			},
			&cli.BoolFlag{
				Name:  "no-format",
				Usage: "Write the template output without gofmt",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show errors",
			},
		},
		Action: a.generate,
	}
}

func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	a.verbose = cmd.Bool("verbose")
	if cmd.NArg() != 1 {
		return loggenerrors.Configuration("arguments", "exactly one type name is required").
			WithSuggestion("usage: loggen [flags] <import path>.<TypeName>")
	}

	cfg := loggencli.Config{
		TypeName:     cmd.Args().First(),
		Package:      cmd.String("package"),
		PackagePath:  cmd.String("package-path"),
		Dir:          cmd.String("dir"),
		TemplatePath: cmd.String("template"),
		TemplateName: cmd.String("template-name"),
		Output:       cmd.String("output"),
		Promoted:     cmd.Bool("promoted"),
		Skip:         cmd.StringSlice("skip"),
		NoFormat:     cmd.Bool("no-format"),
		Verbose:      a.verbose,
		Quiet:        cmd.Bool("quiet"),
	}

	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticDebug
	}
	diagnostics := utils.NewDiagnosticSystemWithWriter(level, a.stderr, utils.ShouldUseColors())

	generator := loggencli.NewGenerator(diagnostics)
	generator.SetStdout(a.stdout)
	if err := generator.Run(ctx, cfg); err != nil {
		return err
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Generation complete", map[string]interface{}{
		"Type":     summary.TypeName,
		"Methods":  summary.Methods,
		"Excluded": len(summary.Excluded),
		"Imports":  summary.Imports,
		"Output":   summary.Output,
	})
	return nil
}
