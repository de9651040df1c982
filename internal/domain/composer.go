package domain

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	m "ldform.dev/pkg/ldform/internal/model"
)

// ComposeRequest is the form input for one document.
type ComposeRequest struct {
	Type string
	// Fields are applied in order; a later path overrides an earlier one.
	Fields m.FieldMap
	// SameAs holds social profile links. Empty entries are ignored.
	SameAs []string
	// Template prefills the fields with the type's example values.
	Template bool
}

// Warning flags a field whose value looks wrong but is still used.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Composition is a generated document with the warnings raised on the way.
type Composition struct {
	Document *m.Mapping
	Warnings []Warning
}

// Composer turns form input into a schema.org JSON-LD document.
type Composer interface {
	Compose(req ComposeRequest) (Composition, error)
}

type composer struct {
	catalog *m.Catalog
	builder TreeBuilder
}

// NewComposer creates a Composer over catalog.
func NewComposer(catalog *m.Catalog, opts ...Option) Composer {
	return &composer{catalog: catalog, builder: NewTreeBuilder(opts...)}
}

// Compose validates the type, filters blank values, builds the nested tree
// and places @context and @type ahead of the fields and sameAs after them.
func (c *composer) Compose(req ComposeRequest) (Composition, error) {
	st, ok := c.catalog.Lookup(req.Type)
	if !ok {
		return Composition{}, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}

	fields := req.Fields
	if req.Template {
		fields = append(st.TemplateFields(), req.Fields...)
	}

	var warnings []Warning

	kept := make(m.FieldMap, 0, len(fields))

	for _, field := range fields {
		if err := checkReserved(field.Path); err != nil {
			return Composition{}, err
		}

		value, warning := normalizeValue(field.Path, field.Value)
		if warning != "" {
			warnings = append(warnings, Warning{Field: field.Path, Message: warning})
		}

		if m.IsZeroScalar(value) {
			continue
		}

		kept = append(kept, m.Field{Path: field.Path, Value: value})
	}

	tree, err := c.builder.Build(kept)
	if err != nil {
		return Composition{}, err
	}

	doc := m.NewMapping()
	doc.Set(m.ContextKey, m.Scalar{Value: m.SchemaContext})
	doc.Set(m.TypeKey, m.Scalar{Value: st.Name})

	for _, key := range tree.Keys() {
		child, _ := tree.Get(key)
		doc.Set(key, child)
	}

	links, linkWarnings := sameAs(req.SameAs)
	warnings = append(warnings, linkWarnings...)

	if links.Len() > 0 {
		if tree.Has(m.SameAsKey) {
			warnings = append(warnings, Warning{
				Field:   m.SameAsKey,
				Message: "form fields under sameAs are replaced by the social links",
			})
		}

		doc.Set(m.SameAsKey, links)
	}

	slog.Debug("document composed", "type", st.Name, "fields", len(kept), "dropped", len(fields)-len(kept), "warnings", len(warnings))

	return Composition{Document: doc, Warnings: warnings}, nil
}

// checkReserved rejects paths whose first segment is @context or @type, in
// whatever spelling ParsePath accepts for them (".@type", "..@context").
// Unparsable paths pass; the builder reports them.
func checkReserved(path string) error {
	segments, err := ParsePath(path)
	if err != nil {
		return nil
	}

	if head := segments[0].Key; head == m.ContextKey || head == m.TypeKey {
		return fmt.Errorf("%w: %q is set from the schema type", ErrReservedKey, path)
	}

	return nil
}

// normalizeValue applies the input hint of path to value. Price and rating
// text becomes a number when it parses as one.
func normalizeValue(path string, value any) (any, string) {
	text, isText := value.(string)

	switch m.InputFor(path) {
	case m.InputURL:
		if isText && text != "" && !isHTTPURL(text) {
			return value, "should be a URL starting with http:// or https://"
		}
	case m.InputDate:
		if isText && text != "" {
			if _, err := time.Parse(time.DateOnly, text); err != nil {
				return value, "should be a date in YYYY-MM-DD form"
			}
		}
	case m.InputPrice:
		if isText && text != "" {
			if !isNumberText(text) {
				return value, "should be a number"
			}

			return json.Number(text), ""
		}
	case m.InputRating:
		number := value

		if isText && text != "" {
			if !isNumberText(text) {
				return value, "should be a number between 1 and 5"
			}

			number = json.Number(text)
		}

		if f, ok := m.Numeric(number); ok && f != 0 && (f < 1 || f > 5) {
			return number, "should be between 1 and 5"
		}

		return number, ""
	}

	return value, ""
}

// isNumberText accepts JSON number literals only, so "NaN" or "0x10" stay text.
func isNumberText(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return false
	}

	return json.Valid([]byte(s))
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func sameAs(links []string) (*m.Sequence, []Warning) {
	seq := m.NewSequence()

	var warnings []Warning

	for _, link := range links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}

		if !isHTTPURL(link) {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("%s[%d]", m.SameAsKey, seq.Len()),
				Message: "should be a URL starting with http:// or https://",
			})
		}

		seq.Items = append(seq.Items, m.Scalar{Value: link})
	}

	return seq, warnings
}
