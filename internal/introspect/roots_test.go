package introspect

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootMethods(t *testing.T) {
	roots := RootMethods()
	require.Len(t, roots, 1)

	iface := types.Universe.Lookup("error").Type().Underlying().(*types.Interface)
	assert.True(t, roots.Contains(iface.Method(0)))

	// Same name and signature, different object.
	lookalike := types.NewFunc(0, nil, "Error", iface.Method(0).Type().(*types.Signature))
	assert.False(t, roots.Contains(lookalike))
	assert.False(t, roots.Contains(nil))
}

func TestRootMethods_ComputedOnce(t *testing.T) {
	a := RootMethods()
	b := RootMethods()
	for k := range a {
		assert.True(t, b.Contains(k))
	}
	assert.Len(t, b, len(a))
}
