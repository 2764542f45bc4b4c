package jsondelta

import (
	"fmt"

	"github.com/jsondelta/jsondelta/codec"
	"github.com/jsondelta/jsondelta/syntax"
)

// Option configures a Differ at construction.
type Option func(*Differ)

// WithSyntax selects a built-in delta syntax by name. It panics on an
// unknown name; use WithSyntaxPolicy to supply a policy by value.
func WithSyntax(name string) Option {
	return func(d *Differ) {
		s, ok := syntax.Builtin(name)
		if !ok {
			panic(fmt.Sprintf("jsondelta: unknown syntax %q (have %v)", name, syntax.Names()))
		}
		d.syntax = s
	}
}

// WithSyntaxPolicy installs a custom delta-shaping policy.
func WithSyntaxPolicy(s syntax.Syntax) Option {
	return func(d *Differ) {
		d.syntax = s
	}
}

// WithEscape sets the marker escape prefix used by the marshaling layer.
func WithEscape(esc string) Option {
	return func(d *Differ) {
		if esc == "" {
			panic("jsondelta: empty escape prefix")
		}
		d.escape = esc
	}
}

// WithMaxDepth bounds diff recursion. Containers nested deeper than n levels
// compare as opaque values: equal or fully replaced, never structurally
// diffed. Zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(d *Differ) {
		d.maxDepth = n
	}
}

// WithLoader sets the codec used by the byte-level operations to read
// documents.
func WithLoader(l codec.Loader) Option {
	return func(d *Differ) {
		d.loader = l
	}
}

// WithDumper sets the codec used by the byte-level operations to write
// documents.
func WithDumper(du codec.Dumper) Option {
	return func(d *Differ) {
		d.dumper = du
	}
}
