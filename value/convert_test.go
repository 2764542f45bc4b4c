package value

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromGoToGoRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"null", nil},
		{"bool", true},
		{"int", int64(42)},
		{"float", 1.5},
		{"string", "hello"},
		{"array", []any{int64(1), "two", nil}},
		{
			"object",
			map[string]any{
				"a": int64(1),
				"b": []any{true, false},
				"c": map[string]any{"d": "e"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromGo(tt.in)
			if err != nil {
				t.Fatalf("FromGo: %v", err)
			}
			out, err := v.ToGo()
			if err != nil {
				t.Fatalf("ToGo: %v", err)
			}
			if d := cmp.Diff(tt.in, out); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFromGoNumber(t *testing.T) {
	v, err := FromGo(json.Number("9007199254740993"))
	if err != nil {
		t.Fatal(err)
	}
	if v.IsFloat() || v.Int64() != 9007199254740993 {
		t.Errorf("big integer lost precision: %s", v)
	}
	v, err = FromGo(json.Number("2.5"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsFloat() || v.Float64() != 2.5 {
		t.Errorf("got %s, want 2.5", v)
	}
}

func TestFromGoRejectsUnknown(t *testing.T) {
	if _, err := FromGo(struct{}{}); !errors.Is(err, ErrBadGoValue) {
		t.Errorf("err = %v, want ErrBadGoValue", err)
	}
}

func TestToGoRejectsSymbols(t *testing.T) {
	o := NewObject()
	o.Set(SymKey(Delete), FromSlice([]*Value{FromString("k")}))
	if _, err := o.ToGo(); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("err = %v, want ErrUnrepresentable", err)
	}
	if _, err := FromSymbol(Replace).ToGo(); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("err = %v, want ErrUnrepresentable", err)
	}
}

func TestToGoSetBecomesSlice(t *testing.T) {
	s := NewSet(FromInt(1), FromInt(2))
	out, err := s.ToGo()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{int64(1), int64(2)}, out); d != "" {
		t.Errorf("set dump mismatch (-want +got):\n%s", d)
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	v := FromMap(map[string]*Value{"b": FromInt(2), "a": FromInt(1)})
	keys := v.Keys()
	if keys[0].Str() != "a" || keys[1].Str() != "b" {
		t.Errorf("keys = %v, want sorted", keys)
	}
}
