package introspect

import (
	"go/types"
	"sync"
)

// RootMethods returns the methods every Go program gets for free from the
// universe scope. The only predeclared methods in Go belong to the error
// interface. Members are *types.Func objects so that a type declaring its own
// Error() string is not mistaken for the predeclared one.
var RootMethods = sync.OnceValue(func() MethodSet {
	set := make(MethodSet)
	obj := types.Universe.Lookup("error")
	if obj == nil {
		return set
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return set
	}
	for i := 0; i < iface.NumMethods(); i++ {
		set[iface.Method(i)] = struct{}{}
	}
	return set
})
