package introspect

import (
	"fmt"
	"go/types"
	"strings"
)

// qualifier renders types relative to the destination package. For every
// method it records the package names the rendered text uses and the first
// type the destination package cannot refer to.
type qualifier struct {
	dest       string
	names      map[string]string // package name -> import path, current method
	unnameable string
}

func newQualifier(dest string) *qualifier {
	return &qualifier{dest: dest}
}

// begin starts collecting for a new method
func (q *qualifier) begin() {
	q.names = make(map[string]string)
	q.unnameable = ""
}

// ref renders t and collects the imports it needs
func (q *qualifier) ref(t types.Type) TypeRef {
	if q.names == nil {
		q.begin()
	}
	var imports []string
	seen := make(map[string]bool)
	name := types.TypeString(t, func(p *types.Package) string {
		if p.Path() == q.dest {
			return ""
		}
		q.note(p)
		if !seen[p.Path()] {
			seen[p.Path()] = true
			imports = append(imports, p.Path())
		}
		return p.Name()
	})
	if q.unnameable == "" {
		q.unnameable = q.hidden(t, make(map[types.Type]bool))
	}
	return TypeRef{Name: name, Imports: imports}
}

// tuple renders a result list. A single result renders bare, several in parentheses.
func (q *qualifier) tuple(results *types.Tuple) *TypeRef {
	if results.Len() == 0 {
		return nil
	}
	if results.Len() == 1 {
		r := q.ref(results.At(0).Type())
		return &r
	}
	names := make([]string, results.Len())
	var imports []string
	seen := make(map[string]bool)
	for i := 0; i < results.Len(); i++ {
		r := q.ref(results.At(i).Type())
		names[i] = r.Name
		for _, imp := range r.Imports {
			if !seen[imp] {
				seen[imp] = true
				imports = append(imports, imp)
			}
		}
	}
	return &TypeRef{Name: "(" + strings.Join(names, ", ") + ")", Imports: imports}
}

// note records the package name a rendered type uses
func (q *qualifier) note(p *types.Package) {
	path, ok := q.names[p.Name()]
	if !ok {
		q.names[p.Name()] = p.Path()
		return
	}
	if path != p.Path() && q.unnameable == "" {
		q.unnameable = fmt.Sprintf("packages %q and %q are both named %s", path, p.Path(), p.Name())
	}
}

// packages returns the names collected for the current method
func (q *qualifier) packages() map[string]string {
	out := make(map[string]string, len(q.names))
	for name, path := range q.names {
		out[name] = path
	}
	return out
}

// hidden returns why t cannot be written in the destination package, or ""
func (q *qualifier) hidden(t types.Type, visited map[types.Type]bool) string {
	if visited[t] {
		return ""
	}
	visited[t] = true

	switch t := t.(type) {
	case *types.Alias:
		return q.object(t.Obj())
	case *types.Named:
		if reason := q.object(t.Obj()); reason != "" {
			return reason
		}
		args := t.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			if reason := q.hidden(args.At(i), visited); reason != "" {
				return reason
			}
		}
	case *types.Pointer:
		return q.hidden(t.Elem(), visited)
	case *types.Slice:
		return q.hidden(t.Elem(), visited)
	case *types.Array:
		return q.hidden(t.Elem(), visited)
	case *types.Chan:
		return q.hidden(t.Elem(), visited)
	case *types.Map:
		if reason := q.hidden(t.Key(), visited); reason != "" {
			return reason
		}
		return q.hidden(t.Elem(), visited)
	case *types.Signature:
		for _, tuple := range []*types.Tuple{t.Params(), t.Results()} {
			for i := 0; i < tuple.Len(); i++ {
				if reason := q.hidden(tuple.At(i).Type(), visited); reason != "" {
					return reason
				}
			}
		}
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			f := t.Field(i)
			if reason := q.member(f); reason != "" {
				return reason
			}
			if reason := q.hidden(f.Type(), visited); reason != "" {
				return reason
			}
		}
	case *types.Interface:
		for i := 0; i < t.NumExplicitMethods(); i++ {
			m := t.ExplicitMethod(i)
			if reason := q.member(m); reason != "" {
				return reason
			}
			if reason := q.hidden(m.Type(), visited); reason != "" {
				return reason
			}
		}
		for i := 0; i < t.NumEmbeddeds(); i++ {
			if reason := q.hidden(t.EmbeddedType(i), visited); reason != "" {
				return reason
			}
		}
	}
	return ""
}

// object checks a named type or alias declared in some package
func (q *qualifier) object(obj *types.TypeName) string {
	pkg := obj.Pkg()
	if pkg == nil || pkg.Path() == q.dest {
		return ""
	}
	if !obj.Exported() {
		return fmt.Sprintf("%s.%s is unexported", pkg.Path(), obj.Name())
	}
	if !importable(q.dest, pkg.Path()) {
		return fmt.Sprintf("%s is internal to another module tree", pkg.Path())
	}
	return ""
}

// member checks an unexported field or method of a type literal, which only
// its own package can spell
func (q *qualifier) member(obj types.Object) string {
	if obj.Exported() || obj.Pkg() == nil || obj.Pkg().Path() == q.dest {
		return ""
	}
	return fmt.Sprintf("unexported member %s of %s", obj.Name(), obj.Pkg().Path())
}

// importable applies the internal/ import rule. An unknown destination
// accepts everything.
func importable(dest, path string) bool {
	if dest == "" {
		return true
	}
	parent, internal := internalParent(path)
	if !internal {
		return true
	}
	if parent == "" {
		first, _, _ := strings.Cut(dest, "/")
		return !strings.Contains(first, ".")
	}
	return dest == parent || strings.HasPrefix(dest, parent+"/")
}

// internalParent returns the directory that may import path when path has an
// internal element
func internalParent(path string) (string, bool) {
	switch {
	case path == "internal" || strings.HasPrefix(path, "internal/"):
		return "", true
	case strings.HasSuffix(path, "/internal"):
		return strings.TrimSuffix(path, "/internal"), true
	}
	if i := strings.LastIndex(path, "/internal/"); i >= 0 {
		return path[:i], true
	}
	return "", false
}
