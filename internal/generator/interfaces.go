package generator

import (
	"context"

	"github.com/toyz/loggen/internal/introspect"
)

// Resolver resolves a fully-qualified type name into a type handle
type Resolver interface {
	Resolve(ctx context.Context, qualifiedName string) (introspect.TypeInfo, error)
}
