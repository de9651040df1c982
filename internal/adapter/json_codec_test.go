package adapter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ldform.dev/pkg/ldform/internal/model"
)

func TestJSONCodec_DecodeKeepsKeyOrder(t *testing.T) {
	codec := NewJSONCodec(0)

	node, err := codec.Decode([]byte(`{"z":1,"a":{"y":true,"b":null},"m":["x",2.5]}`))
	require.NoError(t, err)

	root, ok := node.(*m.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, root.Keys())

	inner, _ := root.Get("a")
	assert.Equal(t, []string{"y", "b"}, inner.(*m.Mapping).Keys())

	list, _ := root.Get("m")
	seq := list.(*m.Sequence)
	require.Equal(t, 2, seq.Len())
	assert.Equal(t, m.Scalar{Value: "x"}, seq.Items[0])
	assert.Equal(t, m.Scalar{Value: json.Number("2.5")}, seq.Items[1])
}

func TestJSONCodec_DecodeScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  m.Node
	}{
		{name: "escaped string", input: `"a\"b\u00e9"`, want: m.Scalar{Value: "a\"bé"}},
		{name: "number keeps its text", input: `1e3`, want: m.Scalar{Value: json.Number("1e3")}},
		{name: "negative number", input: ` -0.50 `, want: m.Scalar{Value: json.Number("-0.50")}},
		{name: "false", input: `false`, want: m.Scalar{Value: false}},
		{name: "null", input: `null`, want: m.Scalar{Value: nil}},
	}

	codec := NewJSONCodec(0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONCodec_DecodeEscapedKeys(t *testing.T) {
	node, err := NewJSONCodec(0).Decode([]byte(`{"caf\u00e9":1,"a\"b":2,"empty":{},"list":[]}`))
	require.NoError(t, err)

	root := node.(*m.Mapping)
	assert.Equal(t, []string{"café", `a"b`, "empty", "list"}, root.Keys())

	empty, _ := root.Get("empty")
	assert.Equal(t, 0, empty.(*m.Mapping).Len())

	list, _ := root.Get("list")
	assert.Equal(t, 0, list.(*m.Sequence).Len())
}

func TestJSONCodec_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrMalformedJSON},
		{name: "truncated", input: `{"a":`, want: ErrMalformedJSON},
		{name: "trailing data", input: `{"a":1} {}`, want: ErrMalformedJSON},
		{name: "bad literal", input: `{"a":tru}`, want: ErrMalformedJSON},
		{name: "whitespace only", input: "  \n", want: ErrMalformedJSON},
		{name: "trailing comma", input: `[1,]`, want: ErrMalformedJSON},
		{name: "too deep inside object", input: `{"a":` + strings.Repeat("[", 6) + strings.Repeat("]", 6) + `}`, want: ErrNestingTooDeep},
		{name: "too deep", input: strings.Repeat("[", 10) + strings.Repeat("]", 10), want: ErrNestingTooDeep},
	}

	codec := NewJSONCodec(5)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJSONCodec_Encode(t *testing.T) {
	doc := m.NewMapping()
	doc.Set("@context", m.Scalar{Value: "https://schema.org"})
	doc.Set("name", m.Scalar{Value: "咖啡 <Mug> & co"})

	offers := m.NewMapping()
	offers.Set("price", m.Scalar{Value: json.Number("19.90")})
	doc.Set("offers", offers)
	doc.Set("tags", m.NewSequence(m.Scalar{Value: true}, m.Scalar{Value: nil}, m.Scalar{Value: 3}))
	doc.Set("empty", m.NewMapping())
	doc.Set("none", m.NewSequence())

	codec := NewJSONCodec(0)

	t.Run("compact", func(t *testing.T) {
		out, err := codec.Encode(doc, false)
		require.NoError(t, err)
		assert.Equal(t,
			`{"@context":"https://schema.org","name":"咖啡 <Mug> & co","offers":{"price":19.90},"tags":[true,null,3],"empty":{},"none":[]}`,
			string(out))
	})

	t.Run("pretty", func(t *testing.T) {
		out, err := codec.Encode(doc, true)
		require.NoError(t, err)

		want := `{
  "@context": "https://schema.org",
  "name": "咖啡 <Mug> & co",
  "offers": {
    "price": 19.90
  },
  "tags": [
    true,
    null,
    3
  ],
  "empty": {},
  "none": []
}`
		assert.Equal(t, want, string(out))
	})

	t.Run("round trip", func(t *testing.T) {
		out, err := codec.Encode(doc, true)
		require.NoError(t, err)

		back, err := codec.Decode(out)
		require.NoError(t, err)
		assert.True(t, m.Equal(doc, back))
	})

	t.Run("unsupported scalar", func(t *testing.T) {
		_, err := codec.Encode(m.Scalar{Value: struct{}{}}, false)
		assert.Error(t, err)
	})
}
