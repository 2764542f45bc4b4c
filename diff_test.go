package jsondelta

import (
	"errors"
	"math"
	"testing"

	"github.com/jsondelta/jsondelta/syntax"
	"github.com/jsondelta/jsondelta/value"
)

// checkDiff compares the marshaled delta against a plain JSON rendition of
// the expectation.
func checkDiff(t *testing.T, d *Differ, a, b *value.Value, wantDelta string, wantS float64) {
	t.Helper()
	delta, s := d.Compare(a, b)
	if math.Abs(s-wantS) > 1e-12 {
		t.Errorf("similarity = %v, want %v", s, wantS)
	}
	got := d.Marshal(delta)
	want := jv(t, wantDelta)
	if !got.Equal(want) {
		t.Errorf("delta = %s, want %s", got, want)
	}
}

func TestDiffScalars(t *testing.T) {
	d := New()
	tests := []struct {
		name  string
		a, b  *value.Value
		delta string
		s     float64
	}{
		{"equal-ints", num(1), num(1), `{}`, 1.0},
		{"int-float-equal", num(1), value.FromFloat(1.0), `{}`, 1.0},
		{"replaced", num(1), num(2), `2`, 0.0},
		{"type-change", num(1), value.FromString("1"), `"1"`, 0.0},
		{"null-vs-false", value.Null(), value.FromBool(false), `false`, 0.0},
		{"scalar-to-list", num(1), jv(t, `[1]`), `[1]`, 0.0},
		{"scalar-to-map", num(1), jv(t, `{"a":1}`), `{"$replace":{"a":1}}`, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDiff(t, d, tt.a, tt.b, tt.delta, tt.s)
		})
	}
}

func TestDiffLists(t *testing.T) {
	d := New()
	tests := []struct {
		name  string
		a, b  string
		delta string
		s     float64
	}{
		{"equal", `[1,2,3]`, `[1,2,3]`, `{}`, 1.0},
		{"both-empty", `[]`, `[]`, `{}`, 1.0},
		{
			"delete-and-insert",
			`[1,2,3]`, `[1,3,4]`,
			`{"$delete":[1],"$insert":[[2,4]]}`,
			0.5,
		},
		{
			"append",
			`[1,2]`, `[1,2,3]`,
			`{"$insert":[[2,3]]}`,
			2.0 / 3.0,
		},
		{
			"drop-head",
			`[1,2,3]`, `[2,3]`,
			`{"$delete":[0]}`,
			2.0 / 3.0,
		},
		{
			"nothing-in-common",
			`[1,2]`, `[3,4]`,
			`[3,4]`,
			0.0,
		},
		{
			"nested-change",
			`[{"a":1},{"b":2}]`, `[{"a":1},{"b":3}]`,
			`{"1":{"b":3}}`,
			0.75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDiff(t, d, jv(t, tt.a), jv(t, tt.b), tt.delta, tt.s)
		})
	}
}

func TestDiffListChangedKeysUseTargetPositions(t *testing.T) {
	// The matched pair sits at position 0 in the source but position 1 in
	// the target; the changed key must name the target position so it
	// applies after the insert.
	d := New()
	a := jv(t, `[{"a":1}]`)
	b := jv(t, `[9,{"a":2}]`)
	delta, _ := d.Compare(a, b)
	got, err := d.Patch(a, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("patched = %s, want %s", got, b)
	}
}

func TestDiffSets(t *testing.T) {
	d := New()
	tests := []struct {
		name  string
		a, b  *value.Value
		delta string
		s     float64
	}{
		{"equal", set(num(1), num(2)), set(num(2), num(1)), `{}`, 1.0},
		{"both-empty", set(), set(), `{}`, 1.0},
		{
			"overlap",
			set(num(1), num(2), num(3)), set(num(2), num(3), num(4)),
			`{"$discard":[1],"$add":[4]}`,
			0.5,
		},
		{
			"add-only",
			set(num(1)), set(num(1), num(2)),
			`{"$add":[2]}`,
			0.5,
		},
		{
			"full-replacement",
			set(num(1), num(2)), set(num(3)),
			`[3]`,
			0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDiff(t, d, tt.a, tt.b, tt.delta, tt.s)
		})
	}
}

func TestSetSimilarityPairsNearMatches(t *testing.T) {
	// {[1,2]} vs {[1,3]}: the two arrays pair up at similarity 1/3, so the
	// sets score above zero even though they share no exact element.
	d := New()
	a := set(jv(t, `[1,2]`))
	b := set(jv(t, `[1,3]`))
	if s := d.Similarity(a, b); math.Abs(s-1.0/6.0) > 1e-12 {
		t.Errorf("similarity = %v, want 1/6", s)
	}
}

func TestSetMatchingIsGreedy(t *testing.T) {
	// Best-first matching commits {[7]}->{[7,8]} at 0.5, leaving {[8]} to
	// pair with {[7,9]} at 0. The optimal pairing would score 0.25 total;
	// greedy settles for 0.125.
	d := New()
	a := set(jv(t, `[7]`), jv(t, `[8]`))
	b := set(jv(t, `[7,8]`), jv(t, `[7,9]`))
	if s := d.Similarity(a, b); math.Abs(s-0.125) > 1e-12 {
		t.Errorf("similarity = %v, want 0.125", s)
	}
}

func TestSetMatchingDirections(t *testing.T) {
	// Greedy matching promises no symmetry, so pin what both directions of
	// the non-optimal pairing from TestSetMatchingIsGreedy actually score.
	// The deterministic ranking lands on 0.125 either way.
	d := New()
	a := set(jv(t, `[7]`), jv(t, `[8]`))
	b := set(jv(t, `[7,8]`), jv(t, `[7,9]`))
	if s := d.Similarity(a, b); math.Abs(s-0.125) > 1e-12 {
		t.Errorf("forward similarity = %v, want 0.125", s)
	}
	if s := d.Similarity(b, a); math.Abs(s-0.125) > 1e-12 {
		t.Errorf("reverse similarity = %v, want 0.125", s)
	}
}

func TestDiffSetsKeepBigIntsDistinct(t *testing.T) {
	// {2^53} and {2^53+1} must not diff to the empty delta even though both
	// members round to the same float64.
	d := New()
	a := set(num(9007199254740992))
	b := set(num(9007199254740993))
	delta, s := d.Compare(a, b)
	if s == 1.0 {
		t.Fatalf("distinct sets scored as identical")
	}
	got, err := d.Patch(a, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("patched = %s, want %s", got, b)
	}
}

func TestDiffDicts(t *testing.T) {
	d := New()
	tests := []struct {
		name  string
		a, b  string
		delta string
		s     float64
	}{
		{"equal", `{"a":1}`, `{"a":1}`, `{}`, 1.0},
		{"both-empty", `{}`, `{}`, `{}`, 1.0},
		{
			"changed-value",
			`{"a":1,"b":2}`, `{"a":1,"b":3}`,
			`{"b":3}`,
			0.75,
		},
		{
			"added-key",
			`{"a":1}`, `{"a":1,"b":2}`,
			`{"b":2}`,
			0.5,
		},
		{
			"removed-key",
			`{"a":1,"b":2}`, `{"a":1}`,
			`{"$delete":["b"]}`,
			0.5,
		},
		{
			"disjoint",
			`{"a":1}`, `{"b":2}`,
			`{"$replace":{"b":2}}`,
			0.0,
		},
		{
			"nested",
			`{"a":{"x":1,"y":2},"b":5}`, `{"a":{"x":1,"y":3},"b":5}`,
			`{"a":{"y":3}}`,
			0.9375,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkDiff(t, d, jv(t, tt.a), jv(t, tt.b), tt.delta, tt.s)
		})
	}
}

func TestMaxDepth(t *testing.T) {
	a := jv(t, `{"a":{"b":{"c":1}}}`)
	b := jv(t, `{"a":{"b":{"c":2}}}`)

	deep := New()
	delta, _ := deep.Compare(a, b)
	want := jv(t, `{"a":{"b":{"c":2}}}`)
	if !deep.Marshal(delta).Equal(want) {
		t.Fatalf("unbounded delta = %s, want %s", deep.Marshal(delta), want)
	}

	shallow := New(WithMaxDepth(2))
	delta, s := shallow.Compare(a, b)
	if s != 0.75 {
		// Key "a" matches at half weight plus half of the inner score,
		// where {"c":1} is an opaque replacement worth 0.5.
		t.Errorf("similarity = %v, want 0.75", s)
	}
	got, err := shallow.Patch(a, delta)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("patched = %s, want %s", got, b)
	}
}

func TestPatchRoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		a, b *value.Value
	}{
		{"scalars", num(1), num(2)},
		{"lists", jv(t, `[1,2,3]`), jv(t, `[1,3,4]`)},
		{"list-growth", jv(t, `[]`), jv(t, `[1,2,3]`)},
		{"dicts", jv(t, `{"a":1,"b":2}`), jv(t, `{"a":1,"c":3}`)},
		{
			"nested",
			jv(t, `{"a":[1,{"x":true}],"b":{"c":null}}`),
			jv(t, `{"a":[1,{"x":false},2],"d":"new"}`),
		},
		{"sets", set(num(1), num(2), num(3)), set(num(2), num(3), num(4))},
		{"set-of-arrays", set(jv(t, `[1,2]`)), set(jv(t, `[1,3]`))},
		{"map-to-list", jv(t, `{"a":1}`), jv(t, `[1]`)},
	}
	for _, syn := range []string{"compact", "symmetric"} {
		d := New(WithSyntax(syn))
		for _, tt := range pairs {
			t.Run(syn+"/"+tt.name, func(t *testing.T) {
				delta := d.Diff(tt.a, tt.b)
				got, err := d.Patch(tt.a, delta)
				if err != nil {
					t.Fatalf("Patch: %v", err)
				}
				if !got.Equal(tt.b) {
					t.Errorf("patched = %s, want %s", got, tt.b)
				}
			})
		}
	}
}

func TestSymmetricUnpatchRoundTrip(t *testing.T) {
	d := New(WithSyntax("symmetric"))
	pairs := []struct {
		name string
		a, b *value.Value
	}{
		{"scalars", num(1), num(2)},
		{"lists", jv(t, `[1,2,3]`), jv(t, `[1,3,4]`)},
		{"dicts", jv(t, `{"a":1,"b":2}`), jv(t, `{"a":1,"c":3}`)},
		{"sets", set(num(1), num(2)), set(num(2), num(3))},
		{
			"nested",
			jv(t, `{"a":[1,{"x":true}],"b":{"c":null}}`),
			jv(t, `{"a":[1,{"x":false},2],"d":"new"}`),
		},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			delta := d.Diff(tt.a, tt.b)
			back, err := d.Unpatch(tt.b, delta)
			if err != nil {
				t.Fatalf("Unpatch: %v", err)
			}
			if !back.Equal(tt.a) {
				t.Errorf("unpatched = %s, want %s", back, tt.a)
			}
		})
	}
}

func TestCompactUnpatchNotInvertible(t *testing.T) {
	d := New()
	a, b := jv(t, `{"a":1}`), jv(t, `{"a":2}`)
	delta := d.Diff(a, b)
	if _, err := d.Unpatch(b, delta); !errors.Is(err, syntax.ErrNotInvertible) {
		t.Errorf("err = %v, want ErrNotInvertible", err)
	}
	// The empty delta is its own inverse.
	empty := d.Diff(a, a)
	back, err := d.Unpatch(a, empty)
	if err != nil {
		t.Fatalf("Unpatch(empty): %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("unpatched = %s, want %s", back, a)
	}
}
