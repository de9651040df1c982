package adapter

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "ldform.dev/pkg/ldform/internal/model"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// ErrInvalidCatalog reports a catalog file that cannot be used.
var ErrInvalidCatalog = errors.New("invalid catalog")

// CatalogLoader provides the schema type catalog.
type CatalogLoader interface {
	Load() (*m.Catalog, error)
}

// YAMLCatalogLoader reads the catalog from a YAML file, falling back to the
// built-in catalog when no path is configured.
type YAMLCatalogLoader struct {
	fs   FileAdapter
	path string
}

// NewYAMLCatalogLoader creates a loader. An empty path selects the built-in catalog.
func NewYAMLCatalogLoader(fs FileAdapter, path string) *YAMLCatalogLoader {
	return &YAMLCatalogLoader{fs: fs, path: path}
}

// Load implements CatalogLoader.
func (l *YAMLCatalogLoader) Load() (*m.Catalog, error) {
	data := builtinCatalog

	if l.path != "" {
		raw, err := l.fs.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
		}

		data = raw
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded", "path", l.path, "types", len(catalog.Types), "socials", len(catalog.Socials))

	return catalog, nil
}

type catalogFile struct {
	Types   []catalogType      `yaml:"types"`
	Socials []m.SocialPlatform `yaml:"socials"`
}

type catalogType struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Example     []string  `yaml:"example"`
	Fields      []string  `yaml:"fields"`
	Template    yaml.Node `yaml:"template"`
}

// ParseCatalog decodes catalog YAML. Template entries keep their file order.
func ParseCatalog(data []byte) (*m.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if len(file.Types) == 0 {
		return nil, fmt.Errorf("%w: no types defined", ErrInvalidCatalog)
	}

	catalog := &m.Catalog{Socials: file.Socials}
	seen := make(map[string]struct{}, len(file.Types))

	for i, ct := range file.Types {
		if ct.Name == "" {
			return nil, fmt.Errorf("%w: type #%d has no name", ErrInvalidCatalog, i+1)
		}

		if _, dup := seen[ct.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate type %q", ErrInvalidCatalog, ct.Name)
		}

		seen[ct.Name] = struct{}{}

		st := m.SchemaType{
			Name:        ct.Name,
			Description: ct.Description,
			Example:     ct.Example,
			Fields:      ct.Fields,
		}

		if ct.Template.Kind != 0 {
			if ct.Template.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: template of %s must be a mapping", ErrInvalidCatalog, ct.Name)
			}

			st.Template = make(map[string]string, len(ct.Template.Content)/2)

			for j := 0; j+1 < len(ct.Template.Content); j += 2 {
				key, value := ct.Template.Content[j], ct.Template.Content[j+1]
				if value.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("%w: template %s.%s must be a scalar", ErrInvalidCatalog, ct.Name, key.Value)
				}

				if _, exists := st.Template[key.Value]; !exists {
					st.TemplateOrder = append(st.TemplateOrder, key.Value)
				}

				st.Template[key.Value] = value.Value
			}
		}

		catalog.Types = append(catalog.Types, st)
	}

	return catalog, nil
}
