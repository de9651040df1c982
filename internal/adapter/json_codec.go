// Package adapter contains the IO adapters the ldform domain relies on:
// JSON and YAML codecs, the local file system, the schema catalog and user stores.
package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	m "ldform.dev/pkg/ldform/internal/model"
)

var (
	// ErrMalformedJSON reports input that is not valid JSON text.
	ErrMalformedJSON = errors.New("malformed JSON")
	// ErrNestingTooDeep reports JSON nested deeper than the codec accepts.
	ErrNestingTooDeep = errors.New("JSON nesting too deep")
)

const defaultCodecDepth = 64

// DocumentCodec converts between JSON text and document nodes.
type DocumentCodec interface {
	// Decode parses JSON text, keeping object keys in document order.
	Decode(data []byte) (m.Node, error)
	// Encode renders a node as JSON; pretty adds two-space indentation.
	Encode(node m.Node, pretty bool) ([]byte, error)
}

// JSONCodec is the DocumentCodec backed by gjson for reading and a
// hand-ordered writer for output.
type JSONCodec struct {
	maxDepth int
}

// NewJSONCodec creates a codec that rejects documents nested deeper than maxDepth.
func NewJSONCodec(maxDepth int) *JSONCodec {
	if maxDepth <= 0 {
		maxDepth = defaultCodecDepth
	}

	return &JSONCodec{maxDepth: maxDepth}
}

// Decode implements DocumentCodec.
func (c *JSONCodec) Decode(data []byte) (m.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, syntaxDetail(data))
	}

	return c.node(gjson.ParseBytes(data), 0)
}

func (c *JSONCodec) node(v gjson.Result, depth int) (m.Node, error) {
	if depth > c.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", ErrNestingTooDeep, c.maxDepth)
	}

	switch {
	case v.IsObject():
		obj := m.NewMapping()

		var err error
		v.ForEach(func(key, value gjson.Result) bool {
			var child m.Node
			if child, err = c.node(value, depth+1); err != nil {
				return false
			}

			obj.Set(key.Str, child)

			return true
		})
		if err != nil {
			return nil, err
		}

		return obj, nil
	case v.IsArray():
		seq := m.NewSequence()

		var err error
		v.ForEach(func(_, value gjson.Result) bool {
			var child m.Node
			if child, err = c.node(value, depth+1); err != nil {
				return false
			}

			seq.Items = append(seq.Items, child)

			return true
		})
		if err != nil {
			return nil, err
		}

		return seq, nil
	}

	switch v.Type {
	case gjson.String:
		return m.Scalar{Value: v.Str}, nil
	case gjson.Number:
		return m.Scalar{Value: json.Number(v.Raw)}, nil
	case gjson.True, gjson.False:
		return m.Scalar{Value: v.Bool()}, nil
	default:
		return m.Scalar{Value: nil}, nil
	}
}

// syntaxDetail names the first syntax error; gjson only reports validity.
func syntaxDetail(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}

	return "not a single JSON value"
}

// Encode implements DocumentCodec. Non-ASCII text and HTML characters are
// written as-is.
func (c *JSONCodec) Encode(node m.Node, pretty bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := &nodeEncoder{buf: &buf, pretty: pretty}
	if err := enc.encode(node, 0); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type nodeEncoder struct {
	buf    *bytes.Buffer
	pretty bool
}

func (e *nodeEncoder) newline(depth int) {
	if !e.pretty {
		return
	}

	e.buf.WriteByte('\n')
	e.buf.WriteString(strings.Repeat("  ", depth))
}

func (e *nodeEncoder) encode(node m.Node, depth int) error {
	switch n := node.(type) {
	case nil:
		e.buf.WriteString("null")
	case m.Scalar:
		return e.scalar(n.Value)
	case *m.Sequence:
		if n.Len() == 0 {
			e.buf.WriteString("[]")
			return nil
		}

		e.buf.WriteByte('[')

		for i, item := range n.Items {
			if i > 0 {
				e.buf.WriteByte(',')
			}

			e.newline(depth + 1)

			if err := e.encode(item, depth+1); err != nil {
				return err
			}
		}

		e.newline(depth)
		e.buf.WriteByte(']')
	case *m.Mapping:
		if n.Len() == 0 {
			e.buf.WriteString("{}")
			return nil
		}

		e.buf.WriteByte('{')

		for i, key := range n.Keys() {
			if i > 0 {
				e.buf.WriteByte(',')
			}

			e.newline(depth + 1)

			if err := e.str(key); err != nil {
				return err
			}

			e.buf.WriteByte(':')

			if e.pretty {
				e.buf.WriteByte(' ')
			}

			child, _ := n.Get(key)
			if err := e.encode(child, depth+1); err != nil {
				return err
			}
		}

		e.newline(depth)
		e.buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node %T", node)
	}

	return nil
}

func (e *nodeEncoder) scalar(v any) error {
	switch s := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case string:
		return e.str(s)
	case bool:
		e.buf.WriteString(strconv.FormatBool(s))
	case json.Number:
		if !json.Valid([]byte(s)) {
			return fmt.Errorf("invalid number literal %q", string(s))
		}

		e.buf.WriteString(s.String())
	default:
		if _, ok := m.Numeric(v); !ok {
			return fmt.Errorf("cannot encode scalar %T", v)
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}

		e.buf.Write(raw)
	}

	return nil
}

func (e *nodeEncoder) str(s string) error {
	var scratch bytes.Buffer

	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	e.buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))

	return nil
}
