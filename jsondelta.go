// Package jsondelta computes structural deltas between JSON-like values
// and applies them back.
//
// The value model is JSON's (null, booleans, numbers, strings, arrays,
// string-keyed objects) plus unordered sets. Diffing two values yields a
// compact nested delta describing how to turn the first into the second,
// together with a similarity score in [0, 1]. Arrays are aligned by a
// similarity-weighted common subsequence, sets by greedy best-match
// pairing, and objects field by field.
//
// The shape of the emitted delta is a policy, not a fixture: the built-in
// "compact" syntax favors minimal deltas, the "symmetric" syntax records
// both sides of every change so deltas can be run backwards. Deltas use
// reserved marker symbols internally; the Marshal layer converts them to
// escaped strings ("$delete" and friends) for encoding, and Unmarshal
// converts them back.
package jsondelta

import "github.com/jsondelta/jsondelta/value"

var std = New()

// Diff computes the delta from a to b with the default differ.
func Diff(a, b *value.Value) *value.Value {
	return std.Diff(a, b)
}

// Similarity scores a against b with the default differ.
func Similarity(a, b *value.Value) float64 {
	return std.Similarity(a, b)
}

// Patch applies a compact delta to base.
func Patch(base, delta *value.Value) (*value.Value, error) {
	return std.Patch(base, delta)
}

// Unpatch runs a delta backwards over a patched value. The default compact
// syntax only supports this for the empty delta; diff with the symmetric
// syntax to get invertible deltas.
func Unpatch(target, delta *value.Value) (*value.Value, error) {
	return std.Unpatch(target, delta)
}
