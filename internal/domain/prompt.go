package domain

import (
	"fmt"
	"strings"
	"time"

	"ldform.dev/pkg/ldform/internal/adapter"
	m "ldform.dev/pkg/ldform/internal/model"
)

// PromptKind selects the writing task a prompt asks for.
type PromptKind string

// Prompt kinds. Article, product and FAQ prompts apply to the matching schema
// type only; other combinations fall back to the generic prompt.
const (
	PromptArticle PromptKind = "article"
	PromptProduct PromptKind = "product"
	PromptFAQ     PromptKind = "faq"
	PromptGeneric PromptKind = "generic"
)

// PromptKinds lists the accepted kinds.
var PromptKinds = []PromptKind{PromptArticle, PromptProduct, PromptFAQ, PromptGeneric}

// ParsePromptKind validates a kind name.
func ParsePromptKind(s string) (PromptKind, error) {
	for _, kind := range PromptKinds {
		if strings.EqualFold(s, string(kind)) {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown prompt kind %q", s)
}

const articleSummaryRunes = 100

// PromptGenerator writes a text prompt for a language model from form data.
type PromptGenerator interface {
	Render(kind PromptKind, schemaType string, fields m.FieldMap, doc *m.Mapping) (string, error)
}

type promptGenerator struct {
	codec adapter.DocumentCodec
	now   func() time.Time
}

// NewPromptGenerator creates a PromptGenerator. The codec renders the field
// block of generic prompts.
func NewPromptGenerator(codec adapter.DocumentCodec) PromptGenerator {
	return &promptGenerator{codec: codec, now: time.Now}
}

func (p *promptGenerator) Render(kind PromptKind, schemaType string, fields m.FieldMap, doc *m.Mapping) (string, error) {
	switch {
	case kind == PromptArticle && schemaType == "Article":
		return p.article(fields), nil
	case kind == PromptProduct && schemaType == "Product":
		return p.product(fields), nil
	case kind == PromptFAQ && schemaType == "FAQPage":
		return p.faq(doc), nil
	default:
		return p.generic(fields)
	}
}

// fieldOr returns the text of path, or fallback when the field is missing or blank.
func fieldOr(fields m.FieldMap, path, fallback string) string {
	v, ok := fields.Get(path)
	if !ok || v == nil || m.IsZeroScalar(v) {
		return fallback
	}

	return m.ScalarText(v)
}

func (p *promptGenerator) article(fields m.FieldMap) string {
	headline := fieldOr(fields, "headline", "a topic")
	author := fieldOr(fields, "author.name", "the author")
	published := fieldOr(fields, "datePublished", p.now().Format(time.DateOnly))
	body := fieldOr(fields, "articleBody", "an overview of the article")

	summary, _, _ := strings.Cut(body, "\n")

	if runes := []rune(summary); len(runes) > articleSummaryRunes {
		summary = string(runes[:articleSummaryRunes])
	}

	return fmt.Sprintf("Write a detailed article about %q. It was published on %s by %s. "+
		"Work in or expand on the following points: %s... "+
		"Keep the structure clear and the language professional and engaging.",
		headline, published, author, summary)
}

func (p *promptGenerator) product(fields m.FieldMap) string {
	name := fieldOr(fields, "name", "the product")
	description := fieldOr(fields, "description", "a detailed description")
	price := fieldOr(fields, "offers.price", "an unknown price")
	currency := fieldOr(fields, "offers.priceCurrency", "CNY")
	brand := fieldOr(fields, "brand.name", "an unknown brand")

	return fmt.Sprintf("Write an engaging marketing description for the %q product by the %q brand. "+
		"Its features: %s. It currently sells for %s %s. "+
		"Highlight its core strengths and the value it gives the user.",
		name, brand, description, price, currency)
}

func (p *promptGenerator) faq(doc *m.Mapping) string {
	var pairs []string

	if doc != nil {
		if entities, ok := doc.Get("mainEntity"); ok {
			if seq, ok := entities.(*m.Sequence); ok {
				for i, item := range seq.Items {
					entry, ok := item.(*m.Mapping)
					if !ok {
						continue
					}

					question := textAt(entry, fmt.Sprintf("Question %d", i+1), "question")
					answer := textAt(entry, fmt.Sprintf("Answer %d", i+1), "acceptedAnswer", "text")
					pairs = append(pairs, "Q: "+question+"\nA: "+answer)
				}
			}
		}
	}

	if len(pairs) == 0 {
		return "Enter FAQ content in the fields (for example mainEntity[0].question and " +
			"mainEntity[0].acceptedAnswer.text) to generate an FAQ prompt."
	}

	return "Generate an FAQ list containing the following questions and answers, " +
		"keeping each answer short and clear:\n\n" + strings.Join(pairs, "\n\n")
}

// textAt follows keys through nested mappings and returns the scalar text found.
func textAt(node *m.Mapping, fallback string, keys ...string) string {
	var current m.Node = node

	for _, key := range keys {
		mapping, ok := current.(*m.Mapping)
		if !ok {
			return fallback
		}

		if current, ok = mapping.Get(key); !ok {
			return fallback
		}
	}

	scalar, ok := current.(m.Scalar)
	if !ok || scalar.Value == nil || m.IsZeroScalar(scalar.Value) {
		return fallback
	}

	return scalar.String()
}

func (p *promptGenerator) generic(fields m.FieldMap) (string, error) {
	flat := m.NewMapping()

	for _, field := range fields {
		if m.IsZeroScalar(field.Value) {
			continue
		}

		scalar, err := m.NewScalar(field.Value)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", field.Path, err)
		}

		flat.Set(field.Path, scalar)
	}

	if flat.Len() == 0 {
		return "Fill in some fields to generate a generic prompt.", nil
	}

	data, err := p.codec.Encode(flat, true)
	if err != nil {
		return "", err
	}

	return "Write a detailed description or report based on the following structured data:\n\n" +
		"```json\n" + string(data) + "\n```\n\n" +
		"Extract the key information and explain it in natural language.", nil
}
