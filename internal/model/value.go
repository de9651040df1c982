package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the concrete shape of a Node.
type Kind int

const (
	// KindScalar is a string, number, boolean or null leaf.
	KindScalar Kind = iota
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindMapping is a string-keyed object with insertion-ordered keys.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is a nested document value. The only implementations are Scalar,
// *Sequence and *Mapping.
type Node interface {
	Kind() Kind
	node()
}

// Scalar wraps a leaf value: string, bool, nil, json.Number or a Go numeric type.
type Scalar struct {
	Value any
}

// Kind implements Node.
func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) node()      {}

// String formats the wrapped value as plain text.
func (s Scalar) String() string {
	return ScalarText(s.Value)
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	Items []Node
}

// NewSequence returns a sequence holding items.
func NewSequence(items ...Node) *Sequence {
	return &Sequence{Items: items}
}

// Kind implements Node.
func (*Sequence) Kind() Kind { return KindSequence }
func (*Sequence) node()      {}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.Items)
}

// Mapping is a string-keyed object that remembers key insertion order.
type Mapping struct {
	keys   []string
	values map[string]Node
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: map[string]Node{}}
}

// Kind implements Node.
func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) node()      {}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set stores value under key. A new key goes to the end; an existing key keeps
// its position.
func (m *Mapping) Set(key string, value Node) {
	if m.values == nil {
		m.values = map[string]Node{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key if present.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)

	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// NewScalar wraps a Go value as a Scalar. It fails for anything that is not a
// string, bool, nil, json.Number or numeric value.
func NewScalar(v any) (Scalar, error) {
	switch v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Scalar{Value: v}, nil
	default:
		return Scalar{}, fmt.Errorf("unsupported scalar type %T", v)
	}
}

// IsEmptyContainer reports whether n is a mapping or sequence without members.
func IsEmptyContainer(n Node) bool {
	switch v := n.(type) {
	case *Mapping:
		return v.Len() == 0
	case *Sequence:
		return v.Len() == 0
	default:
		return false
	}
}

// IsZeroScalar reports whether v is the empty string or a numeric zero.
func IsZeroScalar(v any) bool {
	if s, ok := v.(string); ok {
		return s == ""
	}

	if f, ok := Numeric(v); ok {
		return f == 0
	}

	return false
}

// Numeric returns v as float64 when v is a number.
func Numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ScalarText formats a scalar value the way it reads in a report.
func ScalarText(v any) string {
	switch s := v.(type) {
	case nil:
		return "null"
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	case float64:
		return formatFloat(s)
	case float32:
		return formatFloat(float64(s))
	default:
		return fmt.Sprint(s)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal reports deep equality of two nodes. Mapping key order is ignored and
// numbers compare by value, so 1 and 1.0 are equal.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && scalarEqual(av.Value, bv.Value)
	case *Sequence:
		bv, ok := b.(*Sequence)
		if !ok || av.Len() != bv.Len() {
			return false
		}

		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}

		return true
	case *Mapping:
		bv, ok := b.(*Mapping)
		if !ok || av.Len() != bv.Len() {
			return false
		}

		for _, key := range av.keys {
			other, found := bv.values[key]
			if !found || !Equal(av.values[key], other) {
				return false
			}
		}

		return true
	default:
		return a == nil && b == nil
	}
}

func scalarEqual(a, b any) bool {
	af, aNum := Numeric(a)
	bf, bNum := Numeric(b)

	if aNum || bNum {
		return aNum && bNum && af == bf
	}

	return a == b
}
