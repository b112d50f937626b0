package models

// Inheritance keywords
const (
	InheritanceImplements = "implements"
	InheritanceExtends    = "extends"
)

// GenerationScope is the complete data handed to the template renderer for
// one generation run
type GenerationScope struct {
	Package            string              // destination package name
	InheritanceKeyword string              // "implements" for interfaces, "extends" otherwise
	SuperTypeName      string              // simple name of the inspected type
	SuperTypeRef       string              // embeddable reference, e.g. "io.Reader" or "*shapes.Base"
	Methods            []*MethodDescriptor // discovery order
	Imports            *ImportSet
}

// IsInterface reports whether the wrapped type is an interface
func (s *GenerationScope) IsInterface() bool {
	return s.InheritanceKeyword == InheritanceImplements
}
