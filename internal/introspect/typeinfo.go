// Package introspect enumerates the method surface of a Go type.
//
// TypeInfo and MethodInfo are the capability the classifier depends on. The
// go/types backed implementation lives in GoType; tests and other sources can
// supply their own.
package introspect

import (
	"go/token"

	"github.com/toyz/loggen/internal/models"
)

// TypeRef is a type as written in the destination package together with the
// import paths it needs. Predeclared types carry no imports.
type TypeRef struct {
	Name    string
	Imports []string
}

// MethodInfo is the metadata of one declared method
type MethodInfo struct {
	Name       string
	Visibility models.Visibility
	Static     bool
	Private    bool
	Final      bool
	Skip       bool     // excluded by a //loggen::skip directive
	Result     *TypeRef // nil when the method returns no value
	Params     []TypeRef
	Variadic   bool // the last entry of Params is the element type of a variadic parameter
	// Identity must be comparable. Root-method filtering compares it, never the name.
	Identity any
	Pos      token.Position
	// Packages maps each package name the signature uses to its import path
	Packages map[string]string
	// Unnameable is set when the signature uses a type the destination
	// package cannot refer to
	Unnameable string
}

// TypeInfo is a handle to an inspected type
type TypeInfo interface {
	// Name is the simple name of the type
	Name() string
	// QualifiedName is <import path>.<Name>
	QualifiedName() string
	// Self is the embeddable reference to the type from the destination package
	Self() TypeRef
	IsInterfaceLike() bool
	DeclaredMethods() []MethodInfo
}

// MethodSet is a set of method identities
type MethodSet map[any]struct{}

// Contains reports whether the identity is in the set. A nil identity never is.
func (s MethodSet) Contains(identity any) bool {
	if identity == nil {
		return false
	}
	_, ok := s[identity]
	return ok
}
