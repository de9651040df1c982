package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ldform.dev/pkg/ldform/internal/model"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  m.Path
	}{
		{name: "single key", input: "name", want: m.Path{m.Key("name")}},
		{name: "dotted", input: "brand.name", want: m.Path{m.Key("brand"), m.Key("name")}},
		{
			name:  "index in brackets",
			input: "a.b[0].c",
			want:  m.Path{m.Key("a"), m.Key("b"), m.Index(0), m.Key("c")},
		},
		{
			name:  "dotted index",
			input: "a.0.c",
			want:  m.Path{m.Key("a"), m.Index(0), m.Key("c")},
		},
		{
			name:  "consecutive indices",
			input: "grid[1][2]",
			want:  m.Path{m.Key("grid"), m.Index(1), m.Index(2)},
		},
		{name: "empty tokens dropped", input: "a..b.", want: m.Path{m.Key("a"), m.Key("b")}},
		{name: "non digit bracket is literal", input: "a[x].b", want: m.Path{m.Key("a[x]"), m.Key("b")}},
		{name: "unclosed bracket is literal", input: "a[0", want: m.Path{m.Key("a[0")}},
		{name: "empty bracket is literal", input: "a[]", want: m.Path{m.Key("a[]")}},
		{name: "reserved characters kept", input: "@type", want: m.Path{m.Key("@type")}},
		{name: "unicode key", input: "名称.值", want: m.Path{m.Key("名称"), m.Key("值")}},
		{name: "leading zeros", input: "a[007]", want: m.Path{m.Key("a"), m.Index(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only separators", input: "..."},
		{name: "leading index", input: "[0].a"},
		{name: "leading dotted index", input: "0.a"},
		{name: "index overflow", input: "a[99999999999999999999999]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.input)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestParsePath_RenderRoundTrip(t *testing.T) {
	for _, input := range []string{"name", "a.b[0].c", "mainEntity[2].acceptedAnswer.text", "grid[1][2]"} {
		t.Run(input, func(t *testing.T) {
			path, err := ParsePath(input)
			require.NoError(t, err)
			assert.Equal(t, input, path.String())
		})
	}
}
