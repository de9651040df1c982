// Package model defines the data structures shared by the ldform packages.
package model

import (
	"sort"
	"strconv"
	"strings"
)

// SegmentKind tells a named key apart from a numeric array index.
type SegmentKind int

const (
	// SegmentKey addresses a member of a mapping.
	SegmentKey SegmentKind = iota
	// SegmentIndex addresses an element of a sequence.
	SegmentIndex
)

// Segment is one step of a Path: either Key or Index is meaningful, never both.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Key returns a named-key segment.
func Key(name string) Segment {
	return Segment{Kind: SegmentKey, Key: name}
}

// Index returns a numeric-index segment.
func Index(n int) Segment {
	return Segment{Kind: SegmentIndex, Index: n}
}

// IsIndex reports whether the segment addresses a sequence element.
func (s Segment) IsIndex() bool {
	return s.Kind == SegmentIndex
}

func (s Segment) String() string {
	if s.IsIndex() {
		return "[" + strconv.Itoa(s.Index) + "]"
	}

	return s.Key
}

// Path addresses one value inside a nested document.
type Path []Segment

// String renders the path in dotted/bracket notation, e.g. "mainEntity[0].question".
func (p Path) String() string {
	var b strings.Builder

	for i, seg := range p {
		if !seg.IsIndex() && i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(seg.String())
	}

	return b.String()
}

// Append returns a new path extended by seg. The receiver is never modified,
// so sibling paths built from the same prefix do not share backing storage.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, seg)
}

// Field is a single flat assignment of a scalar value to a path string.
type Field struct {
	Path  string
	Value any
}

// FieldMap is an ordered list of flat assignments. When a path appears more
// than once the last assignment wins.
type FieldMap []Field

// Get returns the last value assigned to path.
func (f FieldMap) Get(path string) (any, bool) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i].Path == path {
			return f[i].Value, true
		}
	}

	return nil, false
}

// String returns the value assigned to path formatted as text, or "".
func (f FieldMap) String(path string) string {
	v, ok := f.Get(path)
	if !ok || v == nil {
		return ""
	}

	return ScalarText(v)
}

// FieldsFromMap converts an unordered map into a FieldMap sorted by path.
func FieldsFromMap(values map[string]any) FieldMap {
	paths := make([]string, 0, len(values))
	for path := range values {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	fields := make(FieldMap, 0, len(paths))
	for _, path := range paths {
		fields = append(fields, Field{Path: path, Value: values[path]})
	}

	return fields
}
