package value

import (
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(false), false},
		{"int", FromInt(3), FromInt(3), true},
		{"int-float", FromInt(1), FromFloat(1.0), true},
		{"float", FromFloat(1.5), FromFloat(1.25), false},
		{"big-int", FromInt(9007199254740992), FromInt(9007199254740993), false},
		{"big-int-float", FromInt(9007199254740993), FromFloat(9007199254740992.0), false},
		{"string", FromString("x"), FromString("x"), true},
		{"type-mix", FromInt(0), FromBool(false), false},
		{
			"array",
			FromSlice([]*Value{FromInt(1), FromInt(2)}),
			FromSlice([]*Value{FromInt(1), FromInt(2)}),
			true,
		},
		{
			"array-order",
			FromSlice([]*Value{FromInt(1), FromInt(2)}),
			FromSlice([]*Value{FromInt(2), FromInt(1)}),
			false,
		},
		{
			"set-order",
			NewSet(FromInt(1), FromInt(2)),
			NewSet(FromInt(2), FromInt(1)),
			true,
		},
		{
			"set-array",
			NewSet(FromInt(1)),
			FromSlice([]*Value{FromInt(1)}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestObjectOrderInsensitive(t *testing.T) {
	a := NewObject()
	a.Set(StrKey("x"), FromInt(1))
	a.Set(StrKey("y"), FromInt(2))
	b := NewObject()
	b.Set(StrKey("y"), FromInt(2))
	b.Set(StrKey("x"), FromInt(1))
	if !a.Equal(b) {
		t.Errorf("field order should not affect equality")
	}
}

func TestObjectSetDelete(t *testing.T) {
	o := NewObject()
	o.Set(StrKey("a"), FromInt(1))
	o.Set(StrKey("b"), FromInt(2))
	o.Set(StrKey("a"), FromInt(3))
	if o.Len() != 2 {
		t.Fatalf("Len = %d, want 2", o.Len())
	}
	if got := o.GetStr("a"); got.Int64() != 3 {
		t.Errorf("a = %s, want 3", got)
	}
	if !o.Delete(StrKey("a")) {
		t.Errorf("Delete(a) = false")
	}
	if o.Delete(StrKey("a")) {
		t.Errorf("second Delete(a) = true")
	}
	if o.Has(StrKey("a")) || !o.Has(StrKey("b")) {
		t.Errorf("bad fields after delete: %s", o)
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet(FromInt(1), FromInt(1), FromString("1"))
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (dup dropped, string distinct)", s.Len())
	}
	if !s.SetHas(FromFloat(1.0)) {
		t.Errorf("1.0 should be a member via numeric equality")
	}
	if !s.SetDiscard(FromInt(1)) {
		t.Errorf("Discard(1) = false")
	}
	if s.SetDiscard(FromInt(1)) {
		t.Errorf("second Discard(1) = true")
	}
	s.SetAdd(NewSet(FromInt(2), FromInt(3)))
	if !s.SetHas(NewSet(FromInt(3), FromInt(2))) {
		t.Errorf("nested set membership should ignore element order")
	}
}

func TestSetBigIntMembers(t *testing.T) {
	// 2^53 and 2^53+1 collapse to the same float64, so membership has to
	// go through the exact integer form.
	a := FromInt(9007199254740992)
	b := FromInt(9007199254740993)
	s := NewSet(a, b)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.SetHas(a) || !s.SetHas(b) {
		t.Errorf("membership lost in %s", s)
	}
	if NewSet(a).SetHas(b) {
		t.Errorf("%s reported as member of {%s}", b, a)
	}
	if NewSet(a).Equal(NewSet(b)) {
		t.Errorf("distinct singleton sets compare equal")
	}
}

func TestShallowCopyShares(t *testing.T) {
	inner := FromSlice([]*Value{FromInt(1)})
	o := NewObject()
	o.Set(StrKey("a"), inner)
	c := o.ShallowCopy()
	c.Set(StrKey("b"), FromInt(2))
	if o.Has(StrKey("b")) {
		t.Errorf("copy mutation leaked into original")
	}
	if c.GetStr("a") != inner {
		t.Errorf("shallow copy should share children")
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewObject()
	inner.Set(StrKey("x"), FromInt(1))
	o := NewObject()
	o.Set(StrKey("a"), inner)
	c := o.Clone()
	c.GetStr("a").Set(StrKey("x"), FromInt(9))
	if inner.GetStr("x").Int64() != 1 {
		t.Errorf("clone mutation leaked into original")
	}
}
