package domain

import (
	"fmt"
	"log/slog"

	m "ldform.dev/pkg/ldform/internal/model"
)

// TreeBuilder turns flat path assignments into a nested document.
type TreeBuilder interface {
	Build(fields m.FieldMap) (*m.Mapping, error)
}

type treeBuilder struct {
	limits Limits
}

// NewTreeBuilder creates a TreeBuilder with the given limits.
func NewTreeBuilder(opts ...Option) TreeBuilder {
	return &treeBuilder{limits: newLimits(opts)}
}

// Build merges every field into one root mapping. The builder does not filter
// values; callers drop blank entries beforehand.
func (b *treeBuilder) Build(fields m.FieldMap) (*m.Mapping, error) {
	root := m.NewMapping()

	for _, field := range fields {
		if err := b.insert(root, field.Path, field.Value); err != nil {
			slog.Debug("build rejected field", "path", field.Path, "error", err)
			return nil, err
		}
	}

	return root, nil
}

func (b *treeBuilder) insert(root *m.Mapping, raw string, value any) error {
	path, err := ParsePath(raw)
	if err != nil {
		return err
	}

	if len(path) > b.limits.MaxDepth {
		return fmt.Errorf("%w: %q has %d segments (limit %d)", ErrDepthExceeded, raw, len(path), b.limits.MaxDepth)
	}

	for _, seg := range path {
		if seg.IsIndex() && seg.Index > b.limits.MaxIndex {
			return fmt.Errorf("%w: %q: index %d exceeds limit %d", ErrInvalidPath, raw, seg.Index, b.limits.MaxIndex)
		}
	}

	leaf, err := m.NewScalar(value)
	if err != nil {
		return fmt.Errorf("field %q: %w", raw, err)
	}

	var current m.Node = root

	last := len(path) - 1
	for i := 0; i < last; i++ {
		current, err = b.descend(current, path[:i+1], path[i+1].Kind)
		if err != nil {
			return err
		}
	}

	return b.assign(current, path, leaf)
}

// descend moves from parent into the child addressed by the last segment of
// prefix, creating it when missing. want is the container kind the following
// segment requires.
func (b *treeBuilder) descend(parent m.Node, prefix m.Path, want m.SegmentKind) (m.Node, error) {
	seg := prefix[len(prefix)-1]

	existing, replace, err := slot(parent, prefix)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		child := newContainer(want)
		replace(child)

		return child, nil
	}

	wantKind := containerKind(want)
	if existing.Kind() == wantKind {
		return existing, nil
	}

	// Index placeholders are empty mappings; they may still become sequences.
	if m.IsEmptyContainer(existing) {
		child := newContainer(want)
		replace(child)

		return child, nil
	}

	slog.Debug("structural conflict", "prefix", prefix.String(), "segment", seg.String(), "want", wantKind, "found", existing.Kind())

	return nil, &ConflictError{Prefix: prefix.String(), Want: wantKind, Found: existing.Kind()}
}

// assign stores leaf at the full path. A prior scalar or an empty placeholder
// is overwritten; a populated container is a conflict.
func (b *treeBuilder) assign(parent m.Node, path m.Path, leaf m.Scalar) error {
	existing, replace, err := slot(parent, path)
	if err != nil {
		return err
	}

	if existing != nil && existing.Kind() != m.KindScalar && !m.IsEmptyContainer(existing) {
		return &ConflictError{Prefix: path.String(), Want: m.KindScalar, Found: existing.Kind()}
	}

	replace(leaf)

	return nil
}

// slot resolves the last segment of path against parent. It returns the node
// currently stored there (nil when absent) and a setter for that position.
// Sequences are grown with empty mapping placeholders so the index exists.
func slot(parent m.Node, path m.Path) (m.Node, func(m.Node), error) {
	seg := path[len(path)-1]
	parentPrefix := path[:len(path)-1]

	switch node := parent.(type) {
	case *m.Mapping:
		if seg.IsIndex() {
			return nil, nil, &ConflictError{Prefix: parentPrefix.String(), Want: m.KindSequence, Found: m.KindMapping}
		}

		existing, _ := node.Get(seg.Key)

		return existing, func(n m.Node) { node.Set(seg.Key, n) }, nil
	case *m.Sequence:
		if !seg.IsIndex() {
			return nil, nil, &ConflictError{Prefix: parentPrefix.String(), Want: m.KindMapping, Found: m.KindSequence}
		}

		for len(node.Items) <= seg.Index {
			node.Items = append(node.Items, m.NewMapping())
		}

		return node.Items[seg.Index], func(n m.Node) { node.Items[seg.Index] = n }, nil
	case m.Scalar:
		return nil, nil, &ConflictError{Prefix: parentPrefix.String(), Want: containerKind(seg.Kind), Found: m.KindScalar}
	default:
		return nil, nil, fmt.Errorf("unexpected node %T at %q", parent, parentPrefix.String())
	}
}

func containerKind(seg m.SegmentKind) m.Kind {
	if seg == m.SegmentIndex {
		return m.KindSequence
	}

	return m.KindMapping
}

func newContainer(seg m.SegmentKind) m.Node {
	if seg == m.SegmentIndex {
		return m.NewSequence()
	}

	return m.NewMapping()
}
