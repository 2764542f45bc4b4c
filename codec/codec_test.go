package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsondelta/jsondelta/value"
)

func TestJSONLoad(t *testing.T) {
	v, err := JSON{}.Load(strings.NewReader(`{"a": 1, "b": [true, null, "x"], "c": 2.5}`))
	require.NoError(t, err)
	require.Equal(t, value.ObjectType, v.Type())

	a := v.GetStr("a")
	assert.False(t, a.IsFloat(), "integers should not decode as floats")
	assert.Equal(t, int64(1), a.Int64())
	assert.Equal(t, 2.5, v.GetStr("c").Float64())
	assert.Equal(t, 3, v.GetStr("b").Len())
}

func TestJSONLoadBigInt(t *testing.T) {
	v, err := JSON{}.Load(strings.NewReader(`9007199254740993`))
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), v.Int64())
}

func TestJSONDumpIndent(t *testing.T) {
	v, err := value.FromGo(map[string]any{"a": int64(1)})
	require.NoError(t, err)

	var flat bytes.Buffer
	require.NoError(t, JSON{}.Dump(&flat, v))
	assert.Equal(t, "{\"a\":1}\n", flat.String())

	var pretty bytes.Buffer
	require.NoError(t, JSON{Indent: "  "}.Dump(&pretty, v))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", pretty.String())
}

func TestJSONRoundTrip(t *testing.T) {
	const doc = `{"name":"svc","ports":[80,443],"meta":{"owner":null,"beta":true}}`
	v, err := JSON{}.Load(strings.NewReader(doc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSON{}.Dump(&buf, v))
	v2, err := JSON{}.Load(&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(v2), "dump then load should be the identity")
}

func TestYAMLRoundTrip(t *testing.T) {
	const doc = "name: svc\nports:\n- 80\n- 443\nbeta: true\n"
	v, err := YAML{}.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "svc", v.GetStr("name").Str())
	assert.Equal(t, int64(443), v.GetStr("ports").At(1).Int64())

	var buf bytes.Buffer
	require.NoError(t, YAML{}.Dump(&buf, v))
	v2, err := YAML{}.Load(&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(v2), "dump then load should be the identity")
}

func TestDumpRejectsSymbols(t *testing.T) {
	o := value.NewObject()
	o.Set(value.SymKey(value.Delete), value.FromSlice(nil))
	var buf bytes.Buffer
	assert.Error(t, JSON{}.Dump(&buf, o))
	assert.Error(t, YAML{}.Dump(&buf, o))
}
