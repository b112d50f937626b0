package models

import "sort"

// ImportDescriptor names one package the generated source must import.
// Two descriptors are equal iff their qualified names are equal.
type ImportDescriptor struct {
	QualifiedName string
}

// ImportSet is a set of ImportDescriptor values
type ImportSet struct {
	items map[ImportDescriptor]struct{}
}

// NewImportSet creates an empty import set
func NewImportSet() *ImportSet {
	return &ImportSet{
		items: make(map[ImportDescriptor]struct{}),
	}
}

// Add registers a qualified name. Empty names are ignored.
func (s *ImportSet) Add(qualifiedName string) {
	if qualifiedName == "" {
		return
	}
	s.items[ImportDescriptor{QualifiedName: qualifiedName}] = struct{}{}
}

// AddAll registers every qualified name
func (s *ImportSet) AddAll(qualifiedNames ...string) {
	for _, name := range qualifiedNames {
		s.Add(name)
	}
}

// Contains reports whether the qualified name is registered
func (s *ImportSet) Contains(qualifiedName string) bool {
	_, ok := s.items[ImportDescriptor{QualifiedName: qualifiedName}]
	return ok
}

// Len returns the number of distinct imports
func (s *ImportSet) Len() int {
	return len(s.items)
}

// Sorted returns the descriptors ordered by qualified name for stable rendering
func (s *ImportSet) Sorted() []ImportDescriptor {
	out := make([]ImportDescriptor, 0, len(s.items))
	for imp := range s.items {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName < out[j].QualifiedName
	})
	return out
}
