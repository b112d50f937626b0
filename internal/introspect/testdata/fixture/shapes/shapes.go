package shapes

import (
	"io"
	"time"
)

// Shape is a contract with a method of every flavour the generator cares about.
type Shape interface {
	error
	Area() float64
	// Describe is part of the contract but must not be wrapped.
	//
	//loggen::final
	Describe() string
	Render(w io.Writer, opts ...string) (int, error)
}

// Base is a reusable Shape implementation.
type Base struct {
	Created time.Time
}

// NewBase has no receiver and cannot be overridden.
func NewBase() *Base { return &Base{Created: time.Now()} }

func (b *Base) reset() {}

// Age returns how long ago b was created.
func (b *Base) Age(now time.Time) time.Duration { return now.Sub(b.Created) }

// Touch updates the creation stamp.
func (b *Base) Touch() { b.Created = time.Now() }
