package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/adapter"
	adaptermocks "ldform.dev/pkg/ldform/internal/adapter/mocks"
	m "ldform.dev/pkg/ldform/internal/model"
)

func newLocalWorkflow(t *testing.T) Workflow {
	t.Helper()

	fs := adapter.NewLocalFileAdapter()
	codec := adapter.NewJSONCodec(0)

	return NewWorkflow(fs, adapter.NewLocalFieldFileAdapter(fs, codec), codec, builtinCatalog(t))
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWorkflow_Generate(t *testing.T) {
	t.Run("flags override field files", func(t *testing.T) {
		fs := adaptermocks.NewMockFileAdapter(t)
		fieldFiles := adaptermocks.NewMockFieldFileAdapter(t)
		fieldFiles.EXPECT().ReadFields("product.yaml").Return(m.FieldMap{
			{Path: "name", Value: "Mug"},
			{Path: "description", Value: "Stoneware"},
		}, nil).Once()

		wf := NewWorkflow(fs, fieldFiles, adapter.NewJSONCodec(0), builtinCatalog(t))

		got, err := wf.Generate(context.Background(), BuildArgs{
			Type:       "Product",
			FieldFiles: []string{"product.yaml"},
			Fields:     m.FieldMap{{Path: "name", Value: "Cup"}},
		})
		require.NoError(t, err)

		assert.Equal(t, `{"@context":"https://schema.org","@type":"Product","name":"Cup","description":"Stoneware"}`, string(got.JSON))
		assert.Empty(t, got.Warnings)
		assert.Len(t, got.ETag, 34)
		assert.Equal(t, byte('"'), got.ETag[0])
	})

	t.Run("same input gives the same etag", func(t *testing.T) {
		wf := newLocalWorkflow(t)
		args := BuildArgs{Type: "Article", Fields: m.FieldMap{{Path: "headline", Value: "Hi"}}, Pretty: true}

		first, err := wf.Generate(context.Background(), args)
		require.NoError(t, err)

		second, err := wf.Generate(context.Background(), args)
		require.NoError(t, err)

		assert.Equal(t, first.ETag, second.ETag)
		assert.Contains(t, string(first.JSON), "\n  \"headline\": \"Hi\"")
	})

	t.Run("field file errors are wrapped", func(t *testing.T) {
		fieldFiles := adaptermocks.NewMockFieldFileAdapter(t)
		fieldFiles.EXPECT().ReadFields("broken.yaml").Return(nil, adapter.ErrInvalidFieldFile).Once()

		wf := NewWorkflow(adaptermocks.NewMockFileAdapter(t), fieldFiles, adapter.NewJSONCodec(0), builtinCatalog(t))

		_, err := wf.Generate(context.Background(), BuildArgs{Type: "Product", FieldFiles: []string{"broken.yaml"}})
		require.ErrorIs(t, err, adapter.ErrInvalidFieldFile)
		assert.Contains(t, err.Error(), "read fields")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := newLocalWorkflow(t).Generate(context.Background(), BuildArgs{Type: "Spaceship"})
		require.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newLocalWorkflow(t).Generate(ctx, BuildArgs{Type: "Product"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkflow_GenerateBatch(t *testing.T) {
	t.Run("writes one document per field file", func(t *testing.T) {
		src := t.TempDir()
		out := filepath.Join(t.TempDir(), "site")

		writeFixture(t, filepath.Join(src, "a.yaml"), "name: Alpha\n")
		writeFixture(t, filepath.Join(src, "b.yaml"), "name: Beta\nbrand.name: Acme\n")
		writeFixture(t, filepath.Join(src, "c.yaml"), "\"@type\": Person\n")

		items, err := newLocalWorkflow(t).GenerateBatch(context.Background(), BatchArgs{
			Type:    "Product",
			Pattern: filepath.Join(src, "*.yaml"),
			OutDir:  out,
			Threads: 2,
		})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrReservedKey)
		require.Len(t, items, 3)

		assert.Equal(t, filepath.Join(src, "a.yaml"), items[0].Source)
		assert.Equal(t, filepath.Join(out, "a.json"), items[0].Output)
		require.NoError(t, items[0].Err)
		require.NoError(t, items[1].Err)
		require.ErrorIs(t, items[2].Err, ErrReservedKey)
		assert.Empty(t, items[2].Output)

		data, readErr := os.ReadFile(filepath.Join(out, "b.json"))
		require.NoError(t, readErr)
		assert.Equal(t, `{"@context":"https://schema.org","@type":"Product","name":"Beta","brand":{"name":"Acme"}}`+"\n", string(data))

		_, statErr := os.Stat(filepath.Join(out, "c.json"))
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := newLocalWorkflow(t).GenerateBatch(context.Background(), BatchArgs{
			Type:    "Product",
			Pattern: filepath.Join(t.TempDir(), "*.yaml"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no field files match")
	})
}

func TestWorkflow_Compare(t *testing.T) {
	wf := newLocalWorkflow(t)

	t.Run("identical documents", func(t *testing.T) {
		got, err := wf.Compare(context.Background(), CompareArgs{
			A:       []byte(`{"a":1,"b":{"c":true}}`),
			B:       []byte(`{"b":{"c":true},"a":1.0}`),
			Unified: true,
		})
		require.NoError(t, err)

		assert.True(t, got.Identical)
		assert.Empty(t, got.Differences)
		assert.Empty(t, got.Unified)
		assert.Equal(t, []string{"a", "b", "b.c"}, pathStrings(got.Common))
	})

	t.Run("differences with unified diff", func(t *testing.T) {
		got, err := wf.Compare(context.Background(), CompareArgs{
			A:       []byte(`{"name":"Mug","price":10}`),
			B:       []byte(`{"name":"Cup","price":10}`),
			NameA:   "old.json",
			NameB:   "new.json",
			Unified: true,
		})
		require.NoError(t, err)

		assert.False(t, got.Identical)
		require.Len(t, got.Differences, 1)
		assert.Equal(t, m.ValueChanged, got.Differences[0].Kind)
		assert.Equal(t, "name", got.Differences[0].Path.String())
		assert.Contains(t, got.Unified, "--- old.json")
		assert.Contains(t, got.Unified, "+++ new.json")
		assert.Contains(t, got.Unified, `-  "name": "Mug",`)
		assert.Contains(t, got.Unified, `+  "name": "Cup",`)
	})

	tests := []struct {
		name string
		a, b string
		side DocumentSide
	}{
		{name: "first input malformed", a: `{"a":`, b: `{}`, side: SideA},
		{name: "second input malformed", a: `{}`, b: `not json`, side: SideB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wf.Compare(context.Background(), CompareArgs{A: []byte(tt.a), B: []byte(tt.b)})

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.side, parseErr.Side)
			assert.ErrorIs(t, err, adapter.ErrMalformedJSON)
		})
	}

	t.Run("non-object root", func(t *testing.T) {
		_, err := wf.Compare(context.Background(), CompareArgs{A: []byte(`[1]`), B: []byte(`{}`)})
		require.ErrorIs(t, err, ErrInvalidDocument)

		var parseErr *ParseError
		assert.False(t, errors.As(err, &parseErr))
	})
}

func TestWorkflow_Extract(t *testing.T) {
	wf := newLocalWorkflow(t)
	doc := []byte(`{"@context":"https://schema.org","@type":"Product","name":"Mug","offers":{"price":9.5},"image":["a.png","b.png"]}`)

	t.Run("lists field paths", func(t *testing.T) {
		got, err := wf.Extract(context.Background(), ExtractArgs{Document: doc})
		require.NoError(t, err)

		assert.Equal(t, []string{"@context", "@type", "image", "name", "offers", "offers.price"}, got.Fields)
		assert.Nil(t, got.Values)
	})

	t.Run("values file feeds a new build", func(t *testing.T) {
		valuesFile := filepath.Join(t.TempDir(), "values.yaml")

		got, err := wf.Extract(context.Background(), ExtractArgs{Document: doc, ValuesFile: valuesFile})
		require.NoError(t, err)

		paths := make([]string, 0, len(got.Values))
		for _, field := range got.Values {
			paths = append(paths, field.Path)
		}

		assert.Equal(t, []string{"name", "offers.price", "image[0]", "image[1]"}, paths)

		rebuilt, err := wf.Generate(context.Background(), BuildArgs{Type: "Product", FieldFiles: []string{valuesFile}})
		require.NoError(t, err)

		cmp, err := wf.Compare(context.Background(), CompareArgs{A: doc, B: rebuilt.JSON})
		require.NoError(t, err)
		assert.True(t, cmp.Identical, "differences: %v", cmp.Differences)
	})

	t.Run("keys without a field path form keep the values file unwritten", func(t *testing.T) {
		valuesFile := filepath.Join(t.TempDir(), "values.yaml")
		lossy := []byte(`{"@type":"Place","hours":{"0":"mon","1":"tue"},"a.b":"dot"}`)

		_, err := wf.Extract(context.Background(), ExtractArgs{Document: lossy, ValuesFile: valuesFile})
		require.ErrorIs(t, err, ErrInvalidPath)
		assert.NoFileExists(t, valuesFile)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := wf.Extract(context.Background(), ExtractArgs{Document: []byte(`{`)})
		require.ErrorIs(t, err, adapter.ErrMalformedJSON)
	})
}

func TestWorkflow_Prompt(t *testing.T) {
	wf := newLocalWorkflow(t)

	t.Run("product prompt", func(t *testing.T) {
		got, err := wf.Prompt(context.Background(), PromptArgs{
			Type: "Product",
			Kind: PromptProduct,
			Fields: m.FieldMap{
				{Path: "name", Value: "Mug"},
				{Path: "brand.name", Value: "Acme"},
				{Path: "offers.price", Value: "12"},
			},
		})
		require.NoError(t, err)

		assert.Contains(t, got, `"Mug" product by the "Acme" brand`)
		assert.Contains(t, got, "sells for 12 CNY")
	})

	t.Run("kind not matching the type falls back to generic", func(t *testing.T) {
		got, err := wf.Prompt(context.Background(), PromptArgs{
			Type:   "Person",
			Kind:   PromptArticle,
			Fields: m.FieldMap{{Path: "name", Value: "Ada"}},
		})
		require.NoError(t, err)

		assert.Contains(t, got, `"name": "Ada"`)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := wf.Prompt(context.Background(), PromptArgs{Type: "Nope", Kind: PromptGeneric})
		require.ErrorIs(t, err, ErrUnknownType)
	})
}
