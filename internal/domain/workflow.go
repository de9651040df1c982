// Package domain contains the ldform core: the path and tree engine, the
// document composer, prompts, accounts and the workflow tying them together.
package domain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/blake3"

	"ldform.dev/pkg/ldform/internal/adapter"
	m "ldform.dev/pkg/ldform/internal/model"
)

// BuildArgs contains the arguments for generating one document.
type BuildArgs struct {
	Type string
	// FieldFiles are read in order before Fields, so flags override files.
	FieldFiles []string
	Fields     m.FieldMap
	SameAs     []string
	Template   bool
	Pretty     bool
}

// BuildResult is a generated document.
type BuildResult struct {
	Document *m.Mapping
	JSON     []byte
	Warnings []Warning
	// ETag is a content hash of JSON.
	ETag string
}

// BatchArgs contains the arguments for generating one document per field file.
type BatchArgs struct {
	Type     string
	Pattern  string
	OutDir   string
	SameAs   []string
	Template bool
	Pretty   bool
	Threads  uint
}

// BatchItem reports the outcome for one field file of a batch.
type BatchItem struct {
	Source   string
	Output   string
	Warnings []Warning
	Err      error
}

// CompareArgs contains the two JSON texts to compare.
type CompareArgs struct {
	A, B         []byte
	NameA, NameB string
	Unified      bool
}

// CompareResult is the structural comparison of two documents.
type CompareResult struct {
	Identical   bool
	Differences []m.DiffRecord
	Common      []m.Path
	// Unified is a line diff of the re-indented documents, when requested.
	Unified string
}

// ExtractArgs contains a document whose field paths are listed.
type ExtractArgs struct {
	Document []byte
	// ValuesFile, when set, receives the scalar leaves as a field file.
	ValuesFile string
}

// ExtractResult lists the field paths of a document.
type ExtractResult struct {
	Fields []string
	Values m.FieldMap
}

// PromptArgs contains the form input a prompt is written from.
type PromptArgs struct {
	Type       string
	Kind       PromptKind
	FieldFiles []string
	Fields     m.FieldMap
	Template   bool
}

// Workflow is the entry point the CLI and the HTTP server share.
type Workflow interface {
	Catalog() *m.Catalog
	Generate(ctx context.Context, args BuildArgs) (BuildResult, error)
	GenerateBatch(ctx context.Context, args BatchArgs) ([]BatchItem, error)
	Compare(ctx context.Context, args CompareArgs) (CompareResult, error)
	Extract(ctx context.Context, args ExtractArgs) (ExtractResult, error)
	Prompt(ctx context.Context, args PromptArgs) (string, error)
}

type workflow struct {
	adapter.FileAdapter
	adapter.FieldFileAdapter
	adapter.DocumentCodec
	Composer
	Differ
	Flattener
	PromptGenerator
	catalog *m.Catalog
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FileAdapter,
	fieldFiles adapter.FieldFileAdapter,
	codec adapter.DocumentCodec,
	catalog *m.Catalog,
	opts ...Option,
) Workflow {
	return &workflow{
		FileAdapter:      fsAdapter,
		FieldFileAdapter: fieldFiles,
		DocumentCodec:    codec,
		Composer:         NewComposer(catalog, opts...),
		Differ:           NewDiffer(opts...),
		Flattener:        NewFlattener(opts...),
		PromptGenerator:  NewPromptGenerator(codec),
		catalog:          catalog,
	}
}

func (w *workflow) Catalog() *m.Catalog {
	return w.catalog
}

func (w *workflow) collectFields(files []string, fields m.FieldMap) (m.FieldMap, error) {
	var all m.FieldMap

	for _, file := range files {
		fromFile, err := w.ReadFields(file)
		if err != nil {
			return nil, err
		}

		all = append(all, fromFile...)
	}

	return append(all, fields...), nil
}

func (w *workflow) Generate(ctx context.Context, args BuildArgs) (BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	fields, err := w.collectFields(args.FieldFiles, args.Fields)
	if err != nil {
		return BuildResult{}, fmt.Errorf("read fields: %w", err)
	}

	return w.render(ComposeRequest{Type: args.Type, Fields: fields, SameAs: args.SameAs, Template: args.Template}, args.Pretty)
}

func (w *workflow) render(req ComposeRequest, pretty bool) (BuildResult, error) {
	composition, err := w.Compose(req)
	if err != nil {
		return BuildResult{}, err
	}

	data, err := w.Encode(composition.Document, pretty)
	if err != nil {
		return BuildResult{}, fmt.Errorf("encode document: %w", err)
	}

	sum := blake3.Sum256(data)

	return BuildResult{
		Document: composition.Document,
		JSON:     data,
		Warnings: composition.Warnings,
		ETag:     `"` + hex.EncodeToString(sum[:16]) + `"`,
	}, nil
}

// GenerateBatch builds one document per field file matching args.Pattern and
// writes it to args.OutDir as <name>.json. Items keep the sorted file order; a
// failing file does not stop the others.
func (w *workflow) GenerateBatch(ctx context.Context, args BatchArgs) ([]BatchItem, error) {
	sources, err := w.Glob(args.Pattern)
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no field files match %q", args.Pattern)
	}

	items := make([]BatchItem, len(sources))

	var (
		failures   []error
		failuresMu sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			item := w.batchItem(args, source)
			items[i] = item

			if item.Err != nil {
				slog.Error("batch item failed", "source", source, "error", item.Err)

				failuresMu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", source, item.Err))
				failuresMu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return items, err
	}

	return items, errors.Join(failures...)
}

func (w *workflow) batchItem(args BatchArgs, source string) BatchItem {
	item := BatchItem{Source: source}

	fields, err := w.ReadFields(source)
	if err != nil {
		item.Err = err
		return item
	}

	result, err := w.render(ComposeRequest{Type: args.Type, Fields: fields, SameAs: args.SameAs, Template: args.Template}, args.Pretty)
	if err != nil {
		item.Err = err
		return item
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".json"
	item.Output = w.JoinPath(args.OutDir, name)
	item.Warnings = result.Warnings

	if err := w.WriteFile(item.Output, append(result.JSON, '\n'), 0o644); err != nil {
		item.Err = err
	}

	return item
}

func (w *workflow) decodeSide(side DocumentSide, data []byte) (m.Node, error) {
	node, err := w.Decode(data)
	if err != nil {
		return nil, &ParseError{Side: side, Err: err}
	}

	return node, nil
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) (CompareResult, error) {
	if err := ctx.Err(); err != nil {
		return CompareResult{}, err
	}

	a, err := w.decodeSide(SideA, args.A)
	if err != nil {
		return CompareResult{}, err
	}

	b, err := w.decodeSide(SideB, args.B)
	if err != nil {
		return CompareResult{}, err
	}

	diffs, err := w.Diff(a, b)
	if err != nil {
		return CompareResult{}, err
	}

	common, err := w.CommonPaths(a, b)
	if err != nil {
		return CompareResult{}, err
	}

	result := CompareResult{Identical: len(diffs) == 0, Differences: diffs, Common: common}

	if args.Unified && !result.Identical {
		result.Unified, err = w.unified(a, b, args.NameA, args.NameB)
		if err != nil {
			return CompareResult{}, err
		}
	}

	slog.Debug("documents compared", "differences", len(diffs), "common", len(common))

	return result, nil
}

func (w *workflow) unified(a, b m.Node, nameA, nameB string) (string, error) {
	textA, err := w.Encode(a, true)
	if err != nil {
		return "", err
	}

	textB, err := w.Encode(b, true)
	if err != nil {
		return "", err
	}

	if nameA == "" {
		nameA = string(SideA)
	}

	if nameB == "" {
		nameB = string(SideB)
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(textA) + "\n"),
		B:        difflib.SplitLines(string(textB) + "\n"),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  3,
	})
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs) (ExtractResult, error) {
	if err := ctx.Err(); err != nil {
		return ExtractResult{}, err
	}

	node, err := w.Decode(args.Document)
	if err != nil {
		return ExtractResult{}, err
	}

	fields, err := w.FieldList(node)
	if err != nil {
		return ExtractResult{}, err
	}

	result := ExtractResult{Fields: fields}

	if args.ValuesFile != "" {
		leaves, err := w.Leaves(node)
		if err != nil {
			return ExtractResult{}, err
		}

		result.Values = withoutReserved(leaves)

		if err := w.WriteFields(args.ValuesFile, result.Values); err != nil {
			return ExtractResult{}, fmt.Errorf("write values: %w", err)
		}
	}

	return result, nil
}

// withoutReserved drops @context and @type so the values can be fed back to a build.
func withoutReserved(fields m.FieldMap) m.FieldMap {
	out := make(m.FieldMap, 0, len(fields))

	for _, field := range fields {
		if checkReserved(field.Path) != nil {
			continue
		}

		out = append(out, field)
	}

	return out
}

func (w *workflow) Prompt(ctx context.Context, args PromptArgs) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields, err := w.collectFields(args.FieldFiles, args.Fields)
	if err != nil {
		return "", fmt.Errorf("read fields: %w", err)
	}

	composition, err := w.Compose(ComposeRequest{Type: args.Type, Fields: fields, Template: args.Template})
	if err != nil {
		return "", err
	}

	if args.Template {
		st, _ := w.catalog.Lookup(args.Type)
		fields = append(st.TemplateFields(), fields...)
	}

	return w.Render(args.Kind, args.Type, fields, composition.Document)
}
