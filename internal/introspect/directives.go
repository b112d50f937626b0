package introspect

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	loggenerrors "github.com/toyz/loggen/internal/errors"
)

const directivePrefix = "//loggen::"

// Directive names understood in method doc comments
const (
	DirectiveFinal = "final"
	DirectiveSkip  = "skip"
)

// Directive is a parsed //loggen::<name> [args...] comment line
type Directive struct {
	Name string
	Args []string
}

type directiveGrammar struct {
	Comment   string   `parser:"@Comment"`
	Tool      string   `parser:"@Tool"`
	Separator string   `parser:"@Separator"`
	Name      string   `parser:"@Ident"`
	Args      []string `parser:"@Ident*"`
}

var directiveParser = participle.MustBuild[directiveGrammar](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Tool", Pattern: `loggen`},
		{Name: "Separator", Pattern: `::`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
)

// ParseDirective parses one comment line. It returns nil, nil for comments
// that are not loggen directives.
func ParseDirective(line string) (*Directive, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, directivePrefix) {
		return nil, nil
	}

	parsed, err := directiveParser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("malformed directive %q: %w", line, err)
	}

	switch parsed.Name {
	case DirectiveFinal, DirectiveSkip:
	default:
		return nil, fmt.Errorf("unknown directive %q", parsed.Name)
	}

	return &Directive{Name: parsed.Name, Args: parsed.Args}, nil
}

// directiveIndex maps the position of a method name to its directives
type directiveIndex map[token.Pos][]Directive

func (idx directiveIndex) has(pos token.Pos, name string) bool {
	for _, d := range idx[pos] {
		if d.Name == name {
			return true
		}
	}
	return false
}

// collectDirectives reads the doc comments of methods and interface members
func collectDirectives(fset *token.FileSet, files []*ast.File) (directiveIndex, error) {
	idx := make(directiveIndex)

	record := func(names []*ast.Ident, groups ...*ast.CommentGroup) error {
		for _, group := range groups {
			if group == nil {
				continue
			}
			for _, c := range group.List {
				d, err := ParseDirective(c.Text)
				if err != nil {
					var loc loggenerrors.SourceLocation
					if fset != nil {
						pos := fset.Position(c.Pos())
						loc = loggenerrors.SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column}
					}
					return loggenerrors.Directive(loc, err)
				}
				if d == nil {
					continue
				}
				for _, name := range names {
					idx[name.Pos()] = append(idx[name.Pos()], *d)
				}
			}
		}
		return nil
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if err := record([]*ast.Ident{d.Name}, d.Doc); err != nil {
					return nil, err
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					it, ok := ts.Type.(*ast.InterfaceType)
					if !ok || it.Methods == nil {
						continue
					}
					for _, field := range it.Methods.List {
						if len(field.Names) == 0 {
							continue
						}
						if err := record(field.Names, field.Doc, field.Comment); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	return idx, nil
}
