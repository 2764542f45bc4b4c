package jsondelta

import (
	"strings"
	"testing"

	"github.com/jsondelta/jsondelta/codec"
	"github.com/jsondelta/jsondelta/value"
)

// jv parses a JSON literal into a value for test fixtures.
func jv(t *testing.T, src string) *value.Value {
	t.Helper()
	v, err := codec.JSON{}.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("bad fixture %q: %v", src, err)
	}
	return v
}

func set(elems ...*value.Value) *value.Value {
	return value.NewSet(elems...)
}

func num(i int64) *value.Value {
	return value.FromInt(i)
}
