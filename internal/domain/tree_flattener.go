package domain

import (
	"fmt"
	"slices"
	"sort"

	m "ldform.dev/pkg/ldform/internal/model"
)

// Flattener lists the paths contained in a nested document.
type Flattener interface {
	// Flatten returns every key path in walk order, intermediate keys included.
	// Sequence positions are transparent: "a[0].b" is reported, "a[0]" is not.
	Flatten(node m.Node) ([]m.Path, error)
	// FieldList returns the rendered paths of Flatten, deduplicated and sorted.
	FieldList(node m.Node) ([]string, error)
	// Leaves returns the scalar leaves with their values in walk order. It
	// fails with ErrInvalidPath when a key cannot be written as a field path
	// that parses back to the same location (digit-only keys, keys holding
	// '.' or "[n]", empty keys).
	Leaves(node m.Node) (m.FieldMap, error)
}

type flattener struct {
	limits Limits
}

// NewFlattener creates a Flattener with the given limits.
func NewFlattener(opts ...Option) Flattener {
	return &flattener{limits: newLimits(opts)}
}

func (f *flattener) Flatten(node m.Node) ([]m.Path, error) {
	var paths []m.Path

	err := f.walk(node, nil, 0, func(path m.Path, _ m.Node, keyed bool) {
		if keyed {
			paths = append(paths, path)
		}
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func (f *flattener) FieldList(node m.Node) ([]string, error) {
	paths, err := f.Flatten(node)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(paths))
	fields := make([]string, 0, len(paths))

	for _, path := range paths {
		key := path.String()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		fields = append(fields, key)
	}

	sort.Strings(fields)

	return fields, nil
}

func (f *flattener) Leaves(node m.Node) (m.FieldMap, error) {
	var (
		fields m.FieldMap
		lossy  error
	)

	err := f.walk(node, nil, 0, func(path m.Path, value m.Node, _ bool) {
		scalar, ok := value.(m.Scalar)
		if !ok || lossy != nil {
			return
		}

		rendered := path.String()
		if back, err := ParsePath(rendered); len(path) > 0 && (err != nil || !slices.Equal(back, path)) {
			lossy = fmt.Errorf("%w: keys along %q have no field path form", ErrInvalidPath, rendered)
			return
		}

		fields = append(fields, m.Field{Path: rendered, Value: scalar.Value})
	})
	if err != nil {
		return nil, err
	}

	if lossy != nil {
		return nil, lossy
	}

	return fields, nil
}

// walk calls emit for every node below node, parents before children. keyed
// is false for sequence elements.
func (f *flattener) walk(node m.Node, prefix m.Path, depth int, emit func(m.Path, m.Node, bool)) error {
	if depth > f.limits.MaxDepth {
		return fmt.Errorf("%w: at %q", ErrDepthExceeded, prefix.String())
	}

	switch n := node.(type) {
	case *m.Mapping:
		for _, key := range n.Keys() {
			child, _ := n.Get(key)
			path := prefix.Append(m.Key(key))

			emit(path, child, true)

			if err := f.walk(child, path, depth+1, emit); err != nil {
				return err
			}
		}
	case *m.Sequence:
		for i, item := range n.Items {
			path := prefix.Append(m.Index(i))

			emit(path, item, false)

			if err := f.walk(item, path, depth+1, emit); err != nil {
				return err
			}
		}
	case m.Scalar, nil:
	default:
		return fmt.Errorf("unexpected node %T at %q", node, prefix.String())
	}

	return nil
}
