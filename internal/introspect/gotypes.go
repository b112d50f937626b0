package introspect

import (
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	loggenerrors "github.com/toyz/loggen/internal/errors"
	"github.com/toyz/loggen/internal/models"
)

// Options controls how a type is inspected
type Options struct {
	// DestinationPath is the import path of the package the wrapper is generated
	// into. Types from it are written unqualified and its unexported methods stay
	// overridable.
	DestinationPath string
	// Promoted also enumerates methods promoted from embedded fields and
	// embedded interfaces.
	Promoted bool
}

// GoType is a TypeInfo backed by go/types
type GoType struct {
	name    string
	pkgPath string
	self    TypeRef
	iface   bool
	methods []MethodInfo
}

var _ TypeInfo = (*GoType)(nil)

// Name returns the simple type name
func (g *GoType) Name() string { return g.name }

// QualifiedName returns <import path>.<Name>
func (g *GoType) QualifiedName() string { return g.pkgPath + "." + g.name }

// Self returns the embeddable reference to the type
func (g *GoType) Self() TypeRef { return g.self }

// IsInterfaceLike reports whether the type is an interface
func (g *GoType) IsInterfaceLike() bool { return g.iface }

// DeclaredMethods returns the methods in discovery order
func (g *GoType) DeclaredMethods() []MethodInfo {
	out := make([]MethodInfo, len(g.methods))
	copy(out, g.methods)
	return out
}

// Inspect builds a GoType for the type called name in a type-checked package.
// files are the package's parsed sources; they are only read for directives
// and may be nil.
func Inspect(pkg *types.Package, fset *token.FileSet, files []*ast.File, name string, opts Options) (*GoType, error) {
	qualified := pkg.Path() + "." + name

	obj := pkg.Scope().Lookup(name)
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, loggenerrors.TypeNotFound(qualified, nil)
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, loggenerrors.UnsupportedType(qualified, "not a defined type")
	}
	if named.TypeParams().Len() > 0 {
		return nil, loggenerrors.UnsupportedType(qualified, "generic types cannot be wrapped")
	}
	if _, isPtr := named.Underlying().(*types.Pointer); isPtr {
		return nil, loggenerrors.UnsupportedType(qualified, "pointer types have no methods")
	}

	directives, err := collectDirectives(fset, files)
	if err != nil {
		return nil, err
	}

	in := &inspector{
		fset:       fset,
		opts:       opts,
		q:          newQualifier(opts.DestinationPath),
		directives: directives,
	}

	g := &GoType{
		name:    named.Obj().Name(),
		pkgPath: pkg.Path(),
		iface:   types.IsInterface(named),
	}
	in.q.begin()
	g.self = in.q.ref(named)
	if in.q.unnameable != "" {
		return nil, loggenerrors.UnsupportedType(qualified, in.q.unnameable)
	}
	if !g.iface {
		g.self.Name = "*" + g.self.Name
	}

	g.methods = in.declared(named, g.iface)
	g.methods = append(g.methods, in.associated(pkg, named)...)
	sort.SliceStable(g.methods, func(i, j int) bool {
		a, b := g.methods[i].Pos, g.methods[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	if opts.Promoted {
		g.methods = append(g.methods, in.promoted(named, g.iface)...)
	}

	return g, nil
}

type inspector struct {
	fset       *token.FileSet
	opts       Options
	q          *qualifier
	directives directiveIndex
	seen       map[*types.Func]bool
}

// declared returns the methods introduced by the type itself
func (in *inspector) declared(named *types.Named, iface bool) []MethodInfo {
	in.seen = make(map[*types.Func]bool)
	var out []MethodInfo
	if iface {
		it := named.Underlying().(*types.Interface)
		for i := 0; i < it.NumExplicitMethods(); i++ {
			m := it.ExplicitMethod(i)
			in.seen[m] = true
			out = append(out, in.method(m, false))
		}
		return out
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		in.seen[m] = true
		out = append(out, in.method(m, false))
	}
	return out
}

// associated returns package functions that construct the type. They are the
// closest Go has to static members and are never overridable.
func (in *inspector) associated(pkg *types.Package, named *types.Named) []MethodInfo {
	var out []MethodInfo
	scope := pkg.Scope()
	for _, n := range scope.Names() {
		fn, ok := scope.Lookup(n).(*types.Func)
		if !ok {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Recv() != nil {
			continue
		}
		if returns(sig, named) {
			out = append(out, in.method(fn, true))
		}
	}
	return out
}

// promoted returns methods reachable through embedding that were not declared
func (in *inspector) promoted(named *types.Named, iface bool) []MethodInfo {
	var recv types.Type = named
	if !iface {
		recv = types.NewPointer(named)
	}
	var out []MethodInfo
	ms := types.NewMethodSet(recv)
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || in.seen[fn] {
			continue
		}
		in.seen[fn] = true
		out = append(out, in.method(fn, false))
	}
	return out
}

func (in *inspector) method(fn *types.Func, static bool) MethodInfo {
	sig := fn.Type().(*types.Signature)
	in.q.begin()

	info := MethodInfo{
		Name:       fn.Name(),
		Visibility: models.VisibilityPackage,
		Static:     static,
		Final:      in.directives.has(fn.Pos(), DirectiveFinal),
		Skip:       in.directives.has(fn.Pos(), DirectiveSkip),
		Result:     in.q.tuple(sig.Results()),
		Variadic:   sig.Variadic(),
		Identity:   fn,
	}
	if fn.Exported() {
		info.Visibility = models.VisibilityPublic
	} else if fn.Pkg() != nil && fn.Pkg().Path() != in.opts.DestinationPath {
		info.Private = true
	}
	if in.fset != nil && fn.Pos().IsValid() {
		info.Pos = in.fset.Position(fn.Pos())
	}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		t := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			if s, ok := t.(*types.Slice); ok {
				t = s.Elem()
			}
		}
		info.Params = append(info.Params, in.q.ref(t))
	}
	info.Packages = in.q.packages()
	info.Unnameable = in.q.unnameable

	return info
}

// returns reports whether any result of sig is named or *named
func returns(sig *types.Signature, named *types.Named) bool {
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		t := types.Unalias(results.At(i).Type())
		if p, ok := t.(*types.Pointer); ok {
			t = types.Unalias(p.Elem())
		}
		if types.Identical(t, named) {
			return true
		}
	}
	return false
}
