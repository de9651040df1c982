package domain

import (
	"fmt"
	"sort"

	m "ldform.dev/pkg/ldform/internal/model"
)

// Differ compares two documents structurally.
type Differ interface {
	// Diff lists the differences between a and b. At each mapping level the
	// keys only in a come first, then the keys only in b, then the shared keys
	// in a's order.
	Diff(a, b m.Node) ([]m.DiffRecord, error)
	// CommonPaths lists the paths present in both documents, sorted.
	CommonPaths(a, b m.Node) ([]m.Path, error)
}

type differ struct {
	limits Limits
}

// NewDiffer creates a Differ with the given limits.
func NewDiffer(opts ...Option) Differ {
	return &differ{limits: newLimits(opts)}
}

func (d *differ) Diff(a, b m.Node) ([]m.DiffRecord, error) {
	ma, mb, err := documentRoots(a, b)
	if err != nil {
		return nil, err
	}

	records := []m.DiffRecord{}
	if err := d.diffMappings(ma, mb, nil, 0, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (d *differ) CommonPaths(a, b m.Node) ([]m.Path, error) {
	ma, mb, err := documentRoots(a, b)
	if err != nil {
		return nil, err
	}

	paths := []m.Path{}
	if err := d.common(ma, mb, nil, 0, &paths); err != nil {
		return nil, err
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].String() < paths[j].String()
	})

	return paths, nil
}

func documentRoots(a, b m.Node) (*m.Mapping, *m.Mapping, error) {
	ma, ok := a.(*m.Mapping)
	if !ok {
		return nil, nil, fmt.Errorf("%w: document A root is a %s", ErrInvalidDocument, kindOf(a))
	}

	mb, ok := b.(*m.Mapping)
	if !ok {
		return nil, nil, fmt.Errorf("%w: document B root is a %s", ErrInvalidDocument, kindOf(b))
	}

	return ma, mb, nil
}

func kindOf(n m.Node) string {
	if n == nil {
		return "null"
	}

	return n.Kind().String()
}

func (d *differ) checkDepth(depth int, prefix m.Path) error {
	if depth > d.limits.MaxDepth {
		return fmt.Errorf("%w: at %q", ErrDepthExceeded, prefix.String())
	}

	return nil
}

func (d *differ) diffMappings(a, b *m.Mapping, prefix m.Path, depth int, out *[]m.DiffRecord) error {
	if err := d.checkDepth(depth, prefix); err != nil {
		return err
	}

	for _, key := range a.Keys() {
		if !b.Has(key) {
			value, _ := a.Get(key)
			*out = append(*out, m.DiffRecord{Kind: m.OnlyInA, Path: prefix.Append(m.Key(key)), A: value})
		}
	}

	for _, key := range b.Keys() {
		if !a.Has(key) {
			value, _ := b.Get(key)
			*out = append(*out, m.DiffRecord{Kind: m.OnlyInB, Path: prefix.Append(m.Key(key)), B: value})
		}
	}

	for _, key := range a.Keys() {
		vb, shared := b.Get(key)
		if !shared {
			continue
		}

		va, _ := a.Get(key)
		path := prefix.Append(m.Key(key))

		if err := d.diffValues(va, vb, path, depth+1, out); err != nil {
			return err
		}
	}

	return nil
}

func (d *differ) diffValues(va, vb m.Node, path m.Path, depth int, out *[]m.DiffRecord) error {
	switch a := va.(type) {
	case *m.Mapping:
		if b, ok := vb.(*m.Mapping); ok {
			return d.diffMappings(a, b, path, depth, out)
		}
	case *m.Sequence:
		if b, ok := vb.(*m.Sequence); ok {
			return d.diffSequences(a, b, path, depth, out)
		}
	}

	if !m.Equal(va, vb) {
		*out = append(*out, m.DiffRecord{Kind: m.ValueChanged, Path: path, A: va, B: vb})
	}

	return nil
}

func (d *differ) diffSequences(a, b *m.Sequence, path m.Path, depth int, out *[]m.DiffRecord) error {
	if err := d.checkDepth(depth, path); err != nil {
		return err
	}

	if a.Len() != b.Len() {
		*out = append(*out, m.DiffRecord{Kind: m.ListLengthChanged, Path: path, LenA: a.Len(), LenB: b.Len()})
	}

	shared := min(a.Len(), b.Len())
	for i := 0; i < shared; i++ {
		ea, eb := a.Items[i], b.Items[i]

		ma, aIsMap := ea.(*m.Mapping)
		mb, bIsMap := eb.(*m.Mapping)

		if aIsMap && bIsMap {
			if err := d.diffMappings(ma, mb, path.Append(m.Index(i)), depth+1, out); err != nil {
				return err
			}

			continue
		}

		if !m.Equal(ea, eb) {
			*out = append(*out, m.DiffRecord{Kind: m.ListElementChanged, Path: path, Index: i, A: ea, B: eb})
		}
	}

	for i := shared; i < a.Len(); i++ {
		*out = append(*out, m.DiffRecord{Kind: m.OnlyInA, Path: path.Append(m.Index(i)), A: a.Items[i]})
	}

	for i := shared; i < b.Len(); i++ {
		*out = append(*out, m.DiffRecord{Kind: m.OnlyInB, Path: path.Append(m.Index(i)), B: b.Items[i]})
	}

	return nil
}

func (d *differ) common(a, b *m.Mapping, prefix m.Path, depth int, out *[]m.Path) error {
	if err := d.checkDepth(depth, prefix); err != nil {
		return err
	}

	for _, key := range a.Keys() {
		vb, shared := b.Get(key)
		if !shared {
			continue
		}

		va, _ := a.Get(key)
		path := prefix.Append(m.Key(key))
		*out = append(*out, path)

		switch x := va.(type) {
		case *m.Mapping:
			if y, ok := vb.(*m.Mapping); ok {
				if err := d.common(x, y, path, depth+1, out); err != nil {
					return err
				}
			}
		case *m.Sequence:
			y, ok := vb.(*m.Sequence)
			if !ok {
				continue
			}

			for i := 0; i < min(x.Len(), y.Len()); i++ {
				ex, xIsMap := x.Items[i].(*m.Mapping)
				ey, yIsMap := y.Items[i].(*m.Mapping)

				if !xIsMap || !yIsMap {
					continue
				}

				if err := d.common(ex, ey, path.Append(m.Index(i)), depth+1, out); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
