package models

import (
	"fmt"
	"strings"
)

// Visibility is the declared access level of a method
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	// VisibilityPackage is the package-default level; it renders as an empty string.
	VisibilityPackage Visibility = ""
)

// String returns the keyword as it appears in rendered output
func (v Visibility) String() string {
	return string(v)
}

// Parameter is one synthesized parameter of an overridable method
type Parameter struct {
	Name     string // synthesized positional name: arg0, arg1, ...
	Type     string // type as written in the destination package
	Variadic bool   // Type already carries the leading "..."
}

// MethodDescriptor describes one overridable method of the inspected type.
// It is built once by the classifier and never mutated afterwards.
type MethodDescriptor struct {
	visibility Visibility
	name       string
	returnType *string
	params     []Parameter
}

// NewMethodDescriptor creates a descriptor. A nil returnType means the method
// returns no value. Parameter names are synthesized in declaration order.
// When variadic is set the last parameter type is rendered as "...T".
func NewMethodDescriptor(vis Visibility, name string, returnType *string, paramTypes []string, variadic bool) *MethodDescriptor {
	m := &MethodDescriptor{
		visibility: vis,
		name:       name,
	}
	if returnType != nil {
		rt := *returnType
		m.returnType = &rt
	}
	for i, typ := range paramTypes {
		p := Parameter{Name: fmt.Sprintf("arg%d", i), Type: typ}
		if variadic && i == len(paramTypes)-1 {
			p.Type = "..." + strings.TrimPrefix(typ, "...")
			p.Variadic = true
		}
		m.params = append(m.params, p)
	}
	return m
}

// Visibility returns the declared access level
func (m *MethodDescriptor) Visibility() Visibility {
	return m.visibility
}

// Name returns the method identifier
func (m *MethodDescriptor) Name() string {
	return m.name
}

// ReturnType returns the return type name, or nil when the method returns no value
func (m *MethodDescriptor) ReturnType() *string {
	if m.returnType == nil {
		return nil
	}
	rt := *m.returnType
	return &rt
}

// HasReturn reports whether the method returns a value
func (m *MethodDescriptor) HasReturn() bool {
	return m.returnType != nil
}

// Arguments returns the parameter list as "<type> arg<i>" entries joined by
// ", ", or nil when the method takes no parameters.
func (m *MethodDescriptor) Arguments() *string {
	if len(m.params) == 0 {
		return nil
	}
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Type + " " + p.Name
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// Parameters returns a copy of the synthesized parameters
func (m *MethodDescriptor) Parameters() []Parameter {
	out := make([]Parameter, len(m.params))
	copy(out, m.params)
	return out
}

// Params renders the parameters in Go declaration order: "arg0 T, arg1 ...U"
func (m *MethodDescriptor) Params() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// CallArgs renders the parameter names for forwarding a call: "arg0, arg1..."
func (m *MethodDescriptor) CallArgs() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Name
		if p.Variadic {
			parts[i] += "..."
		}
	}
	return strings.Join(parts, ", ")
}

// ArgNames renders the parameter names without variadic expansion: "arg0, arg1"
func (m *MethodDescriptor) ArgNames() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}
