package jsondelta

import (
	"bytes"

	"github.com/jsondelta/jsondelta/codec"
	"github.com/jsondelta/jsondelta/syntax"
	"github.com/jsondelta/jsondelta/value"
)

// Differ computes deltas and similarity scores between value trees and
// applies deltas back. A Differ is immutable after construction and safe for
// concurrent use.
type Differ struct {
	syntax   syntax.Syntax
	escape   string
	maxDepth int
	loader   codec.Loader
	dumper   codec.Dumper

	// marker string -> symbol, derived from escape.
	symbols map[string]value.Symbol
}

// New builds a Differ. The defaults are the compact syntax, "$" as the
// marker escape, unbounded depth, and the JSON codec for the byte-level
// operations.
func New(opts ...Option) *Differ {
	d := &Differ{
		escape: "$",
		loader: codec.JSON{},
		dumper: codec.JSON{},
	}
	s, _ := syntax.Builtin("compact")
	d.syntax = s
	for _, opt := range opts {
		opt(d)
	}
	d.symbols = make(map[string]value.Symbol, len(value.Symbols()))
	for _, sym := range value.Symbols() {
		d.symbols[d.escape+sym.Label()] = sym
	}
	return d
}

// Compare diffs a against b, returning the delta and the similarity score
// in [0, 1].
func (d *Differ) Compare(a, b *value.Value) (*value.Value, float64) {
	return d.objDiff(a, b, 0)
}

// Diff returns the delta that patches a into b.
func (d *Differ) Diff(a, b *value.Value) *value.Value {
	delta, _ := d.objDiff(a, b, 0)
	return delta
}

// Similarity returns the similarity score of a and b in [0, 1]: 1 for equal
// values, 0 for values with nothing in common.
func (d *Differ) Similarity(a, b *value.Value) float64 {
	_, s := d.objDiff(a, b, 0)
	return s
}

// Patch applies a delta produced under the same syntax to base.
func (d *Differ) Patch(base, delta *value.Value) (*value.Value, error) {
	return d.syntax.Patch(base, delta)
}

// Unpatch reconstructs the base from a patched value and the delta that
// produced it.
func (d *Differ) Unpatch(target, delta *value.Value) (*value.Value, error) {
	return d.syntax.Unpatch(target, delta)
}

// DiffBytes diffs two encoded documents and returns the encoded, marshaled
// delta.
func (d *Differ) DiffBytes(a, b []byte) ([]byte, error) {
	av, err := d.loadBytes(a)
	if err != nil {
		return nil, err
	}
	bv, err := d.loadBytes(b)
	if err != nil {
		return nil, err
	}
	return d.dumpBytes(d.Diff(av, bv))
}

// SimilarityBytes scores two encoded documents.
func (d *Differ) SimilarityBytes(a, b []byte) (float64, error) {
	av, err := d.loadBytes(a)
	if err != nil {
		return 0, err
	}
	bv, err := d.loadBytes(b)
	if err != nil {
		return 0, err
	}
	return d.Similarity(av, bv), nil
}

// PatchBytes applies an encoded delta to an encoded document.
func (d *Differ) PatchBytes(base, delta []byte) ([]byte, error) {
	bv, err := d.loadBytes(base)
	if err != nil {
		return nil, err
	}
	dv, err := d.loadBytes(delta)
	if err != nil {
		return nil, err
	}
	out, err := d.Patch(bv, dv)
	if err != nil {
		return nil, err
	}
	return d.dumpBytes(out)
}

// UnpatchBytes runs an encoded delta backwards over an encoded document.
func (d *Differ) UnpatchBytes(target, delta []byte) ([]byte, error) {
	tv, err := d.loadBytes(target)
	if err != nil {
		return nil, err
	}
	dv, err := d.loadBytes(delta)
	if err != nil {
		return nil, err
	}
	out, err := d.Unpatch(tv, dv)
	if err != nil {
		return nil, err
	}
	return d.dumpBytes(out)
}

// loadBytes decodes and unmarshals. Loading always unmarshals so that
// dump-then-load is the identity; plain documents without escaped strings
// pass through unchanged.
func (d *Differ) loadBytes(src []byte) (*value.Value, error) {
	v, err := d.loader.Load(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	return d.Unmarshal(v), nil
}

func (d *Differ) dumpBytes(v *value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.dumper.Dump(&buf, d.Marshal(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
