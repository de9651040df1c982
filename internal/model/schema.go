package model

import "strings"

const (
	// SchemaContext is the fixed @context of every generated document.
	SchemaContext = "https://schema.org"
	// ContextKey is the reserved JSON-LD context key.
	ContextKey = "@context"
	// TypeKey is the reserved JSON-LD type key.
	TypeKey = "@type"
	// SameAsKey holds the social profile links of a document.
	SameAsKey = "sameAs"
)

// SchemaType describes one schema.org type the forms can produce.
type SchemaType struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Example     []string          `yaml:"example,omitempty" json:"example,omitempty"`
	Fields      []string          `yaml:"fields" json:"fields"`
	Template    map[string]string `yaml:"template,omitempty" json:"template,omitempty"`
	// TemplateOrder keeps template paths in declaration order; filled by the loader.
	TemplateOrder []string `yaml:"-" json:"-"`
}

// TemplateFields returns the example values as an ordered FieldMap.
func (t SchemaType) TemplateFields() FieldMap {
	fields := make(FieldMap, 0, len(t.Template))

	order := t.TemplateOrder
	if len(order) == 0 {
		return FieldsFromMap(stringsToAny(t.Template))
	}

	for _, path := range order {
		if v, ok := t.Template[path]; ok {
			fields = append(fields, Field{Path: path, Value: v})
		}
	}

	return fields
}

func stringsToAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// SocialPlatform is a profile site whose links end up in sameAs.
type SocialPlatform struct {
	Name        string `yaml:"name" json:"name"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
}

// Catalog is the set of schema types and social platforms known to the forms.
type Catalog struct {
	Types   []SchemaType     `yaml:"types" json:"types"`
	Socials []SocialPlatform `yaml:"socials" json:"socials"`
}

// Lookup finds a schema type by exact name.
func (c Catalog) Lookup(name string) (SchemaType, bool) {
	for _, t := range c.Types {
		if t.Name == name {
			return t, true
		}
	}

	return SchemaType{}, false
}

// Names returns the type names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.Name)
	}

	return names
}

// InputKind is the form widget a field path calls for.
type InputKind string

// Input kinds, in the order InputFor checks them.
const (
	InputDate     InputKind = "date"
	InputURL      InputKind = "url"
	InputPrice    InputKind = "price"
	InputRating   InputKind = "rating"
	InputLongText InputKind = "textarea"
	InputText     InputKind = "text"
)

var longTextFields = []string{"articleBody", "description", "reviewBody", "recipeInstructions"}

// InputFor derives the widget kind from the field path.
func InputFor(path string) InputKind {
	lower := strings.ToLower(path)

	switch {
	case strings.Contains(lower, "date"):
		return InputDate
	case strings.Contains(lower, "url"), strings.Contains(lower, "image"), strings.Contains(lower, "logo"):
		return InputURL
	case strings.Contains(lower, "price") && !strings.Contains(lower, "currency"):
		return InputPrice
	case strings.Contains(lower, "ratingvalue"):
		return InputRating
	}

	for _, name := range longTextFields {
		if strings.Contains(path, name) {
			return InputLongText
		}
	}

	return InputText
}
