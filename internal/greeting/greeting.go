// Package greeting holds the greeting domain: the Greeter capability,
// its HelloGreeter variant, and the Status lifecycle tag.
package greeting

import "fmt"

// Greeter renders a greeting for a name. Any number of variants may
// implement it.
type Greeter interface {
	Greet(name string) string
}

// HelloGreeter is the prefix-based Greeter variant. The prefix is set
// once at construction and never reassigned.
type HelloGreeter struct {
	prefix string
}

var _ Greeter = (*HelloGreeter)(nil)

// New creates a HelloGreeter with the given prefix. Any string is
// accepted, including empty; construction cannot fail.
func New(prefix string) *HelloGreeter {
	return &HelloGreeter{prefix: prefix}
}

// Greet returns "<prefix>, <name>!". Total over all string inputs,
// no validation or normalization, no side effects.
func (g *HelloGreeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s!", g.prefix, name)
}
