package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/adapter"
	m "ldform.dev/pkg/ldform/internal/model"
)

// render encodes node as compact JSON for readable assertions.
func render(t *testing.T, node m.Node) string {
	t.Helper()

	out, err := adapter.NewJSONCodec(0).Encode(node, false)
	require.NoError(t, err)

	return string(out)
}

func TestTreeBuilder_Build(t *testing.T) {
	tests := []struct {
		name   string
		fields m.FieldMap
		want   string
	}{
		{
			name: "nested mappings",
			fields: m.FieldMap{
				{Path: "name", Value: "Mug"},
				{Path: "brand.name", Value: "Acme"},
				{Path: "offers.price", Value: json.Number("9.5")},
				{Path: "offers.priceCurrency", Value: "EUR"},
			},
			want: `{"name":"Mug","brand":{"name":"Acme"},"offers":{"price":9.5,"priceCurrency":"EUR"}}`,
		},
		{
			name: "array with gap fill",
			fields: m.FieldMap{
				{Path: "mainEntity[0].question", Value: "Q1"},
				{Path: "mainEntity[0].acceptedAnswer.text", Value: "A1"},
				{Path: "mainEntity[2].question", Value: "Q3"},
			},
			want: `{"mainEntity":[{"question":"Q1","acceptedAnswer":{"text":"A1"}},{},{"question":"Q3"}]}`,
		},
		{
			name:   "scalar list elements",
			fields: m.FieldMap{{Path: "tags[1]", Value: "b"}, {Path: "tags[0]", Value: "a"}},
			want:   `{"tags":["a","b"]}`,
		},
		{
			name:   "dotted index equals bracket index",
			fields: m.FieldMap{{Path: "a.0.b", Value: 1}, {Path: "a[0].c", Value: 2}},
			want:   `{"a":[{"b":1,"c":2}]}`,
		},
		{
			name:   "last scalar write wins",
			fields: m.FieldMap{{Path: "name", Value: "first"}, {Path: "name", Value: "second"}},
			want:   `{"name":"second"}`,
		},
		{
			name:   "placeholder becomes sequence",
			fields: m.FieldMap{{Path: "a[1].b", Value: "x"}, {Path: "a[0][0]", Value: "y"}},
			want:   `{"a":[["y"],{"b":"x"}]}`,
		},
		{
			name:   "values are not filtered",
			fields: m.FieldMap{{Path: "a", Value: ""}, {Path: "b", Value: 0}, {Path: "c", Value: nil}, {Path: "d", Value: false}},
			want:   `{"a":"","b":0,"c":null,"d":false}`,
		},
		{name: "no fields", fields: nil, want: `{}`},
	}

	builder := NewTreeBuilder()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := builder.Build(tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, got))
		})
	}
}

func TestTreeBuilder_KeyOrderFollowsFields(t *testing.T) {
	got, err := NewTreeBuilder().Build(m.FieldMap{
		{Path: "z", Value: 1},
		{Path: "a.y", Value: 2},
		{Path: "m", Value: 3},
		{Path: "a.b", Value: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, got.Keys())

	inner, _ := got.Get("a")
	assert.Equal(t, []string{"y", "b"}, inner.(*m.Mapping).Keys())
}

func TestTreeBuilder_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		fields m.FieldMap
		prefix string
		want   m.Kind
		found  m.Kind
	}{
		{
			name:   "key under scalar",
			fields: m.FieldMap{{Path: "tags", Value: "x"}, {Path: "tags.name", Value: "y"}},
			prefix: "tags",
			want:   m.KindMapping,
			found:  m.KindScalar,
		},
		{
			name:   "scalar over mapping",
			fields: m.FieldMap{{Path: "tags.name", Value: "y"}, {Path: "tags", Value: "x"}},
			prefix: "tags",
			want:   m.KindScalar,
			found:  m.KindMapping,
		},
		{
			name:   "index into mapping",
			fields: m.FieldMap{{Path: "a.b", Value: 1}, {Path: "a[0]", Value: 2}},
			prefix: "a",
			want:   m.KindSequence,
			found:  m.KindMapping,
		},
		{
			name:   "key into sequence",
			fields: m.FieldMap{{Path: "a[0]", Value: 1}, {Path: "a.b", Value: 2}},
			prefix: "a",
			want:   m.KindMapping,
			found:  m.KindSequence,
		},
		{
			name:   "scalar over list",
			fields: m.FieldMap{{Path: "a[0]", Value: 1}, {Path: "a", Value: 2}},
			prefix: "a",
			want:   m.KindScalar,
			found:  m.KindSequence,
		},
	}

	builder := NewTreeBuilder()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(tt.fields)
			require.ErrorIs(t, err, ErrStructuralConflict)

			var conflict *ConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, tt.prefix, conflict.Prefix)
			assert.Equal(t, tt.want, conflict.Want)
			assert.Equal(t, tt.found, conflict.Found)
		})
	}
}

func TestTreeBuilder_Limits(t *testing.T) {
	t.Run("depth", func(t *testing.T) {
		deep := strings.TrimSuffix(strings.Repeat("a.", 5), ".")

		_, err := NewTreeBuilder(WithMaxDepth(4)).Build(m.FieldMap{{Path: deep, Value: 1}})
		assert.ErrorIs(t, err, ErrDepthExceeded)

		_, err = NewTreeBuilder(WithMaxDepth(5)).Build(m.FieldMap{{Path: deep, Value: 1}})
		assert.NoError(t, err)
	})

	t.Run("index", func(t *testing.T) {
		_, err := NewTreeBuilder(WithMaxIndex(10)).Build(m.FieldMap{{Path: "a[11]", Value: 1}})
		assert.ErrorIs(t, err, ErrInvalidPath)

		got, err := NewTreeBuilder(WithMaxIndex(10)).Build(m.FieldMap{{Path: "a[10]", Value: 1}})
		require.NoError(t, err)

		list, _ := got.Get("a")
		assert.Equal(t, 11, list.(*m.Sequence).Len())
	})

	t.Run("invalid path", func(t *testing.T) {
		_, err := NewTreeBuilder().Build(m.FieldMap{{Path: "[0].a", Value: 1}})
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := NewTreeBuilder().Build(m.FieldMap{{Path: "a", Value: []string{"x"}}})
		assert.Error(t, err)
	})
}
