package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "ldform.dev/pkg/ldform/internal/model"
)

// ErrInvalidFieldFile reports a field file that is not a flat path to scalar mapping.
var ErrInvalidFieldFile = errors.New("invalid field file")

// FieldFileAdapter reads and writes flat field files. YAML is the default
// format; files ending in .json are read as JSON.
type FieldFileAdapter interface {
	ReadFields(path string) (m.FieldMap, error)
	WriteFields(path string, fields m.FieldMap) error
}

// LocalFieldFileAdapter stores field files on the local file system.
type LocalFieldFileAdapter struct {
	fs    FileAdapter
	codec DocumentCodec
}

// NewLocalFieldFileAdapter creates a field file adapter on top of fs.
func NewLocalFieldFileAdapter(fs FileAdapter, codec DocumentCodec) *LocalFieldFileAdapter {
	return &LocalFieldFileAdapter{fs: fs, codec: codec}
}

// ReadFields loads path and returns its fields in file order.
func (a *LocalFieldFileAdapter) ReadFields(path string) (m.FieldMap, error) {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fields %s: %w", path, err)
	}

	if isJSONFile(path) {
		return DecodeFieldsJSON(a.codec, data)
	}

	return DecodeFieldsYAML(data)
}

// WriteFields stores fields at path, as JSON or YAML depending on the extension.
func (a *LocalFieldFileAdapter) WriteFields(path string, fields m.FieldMap) error {
	var (
		data []byte
		err  error
	)

	if isJSONFile(path) {
		data, err = EncodeFieldsJSON(a.codec, fields)
	} else {
		data, err = EncodeFieldsYAML(fields)
	}

	if err != nil {
		return err
	}

	return a.fs.WriteFile(path, data, 0o644)
}

func isJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DecodeFieldsYAML parses a flat YAML mapping. Quoted and date-like values
// stay strings.
func DecodeFieldsYAML(data []byte) (m.FieldMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFieldFile, err)
	}

	if doc.Kind == 0 {
		return m.FieldMap{}, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidFieldFile)
	}

	fields := make(m.FieldMap, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: field %q (line %d) must be a scalar", ErrInvalidFieldFile, key.Value, value.Line)
		}

		v, err := yamlScalar(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidFieldFile, key.Value, err)
		}

		fields = append(fields, m.Field{Path: key.Value, Value: v})
	}

	return fields, nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!str", "!!timestamp":
		return n.Value, nil
	case "!!null":
		return nil, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// EncodeFieldsYAML renders fields as a flat YAML mapping in field order.
func EncodeFieldsYAML(fields m.FieldMap) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, field := range fields {
		value, err := yamlValueNode(field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Path, err)
		}

		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Path}, value)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func yamlValueNode(v any) (*yaml.Node, error) {
	switch s := v.(type) {
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(s.String(), ".eE") {
			tag = "!!float"
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s.String()}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	if _, err := m.NewScalar(v); err != nil {
		return nil, err
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}

	return node, nil
}

// DecodeFieldsJSON parses a flat JSON object.
func DecodeFieldsJSON(codec DocumentCodec, data []byte) (m.FieldMap, error) {
	node, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	return FieldsFromNode(node)
}

// FieldsFromNode converts a decoded flat object into fields.
func FieldsFromNode(node m.Node) (m.FieldMap, error) {
	obj, ok := node.(*m.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidFieldFile)
	}

	fields := make(m.FieldMap, 0, obj.Len())

	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)

		scalar, ok := value.(m.Scalar)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be a scalar", ErrInvalidFieldFile, key)
		}

		fields = append(fields, m.Field{Path: key, Value: scalar.Value})
	}

	return fields, nil
}

// EncodeFieldsJSON renders fields as a flat JSON object.
func EncodeFieldsJSON(codec DocumentCodec, fields m.FieldMap) ([]byte, error) {
	obj := m.NewMapping()

	for _, field := range fields {
		scalar, err := m.NewScalar(field.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Path, err)
		}

		obj.Set(field.Path, scalar)
	}

	return codec.Encode(obj, true)
}
