package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

// TypeSummary is one catalog entry in the type list.
type TypeSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Example     []string `json:"example,omitempty"`
}

// TypesResponse lists the catalog.
type TypesResponse struct {
	Types   []TypeSummary      `json:"types"`
	Socials []m.SocialPlatform `json:"socials"`
}

// FieldHint names a form field and the input it calls for.
type FieldHint struct {
	Path  string      `json:"path"`
	Input m.InputKind `json:"input"`
}

// FieldValue is one template assignment.
type FieldValue struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// TypeResponse describes one schema type.
type TypeResponse struct {
	TypeSummary
	Fields   []FieldHint  `json:"fields"`
	Template []FieldValue `json:"template,omitempty"`
}

// DocumentRequest is the form input for POST /api/v1/documents.
type DocumentRequest struct {
	Type     string          `json:"type"`
	Fields   json.RawMessage `json:"fields"`
	SameAs   []string        `json:"same_as"`
	Template bool            `json:"template"`
	Pretty   bool            `json:"pretty"`
}

// DocumentResponse carries a generated document both as an object and as the
// exact text the CLI would print.
type DocumentResponse struct {
	Document json.RawMessage  `json:"document"`
	JSON     string           `json:"json"`
	Warnings []domain.Warning `json:"warnings"`
	ETag     string           `json:"etag"`
}

// DiffRequest holds two documents, each either a JSON object or a string of JSON text.
type DiffRequest struct {
	A       json.RawMessage `json:"a"`
	B       json.RawMessage `json:"b"`
	Unified bool            `json:"unified"`
}

// DiffEntry is one difference between the documents.
type DiffEntry struct {
	Kind  string          `json:"kind"`
	Path  string          `json:"path"`
	Index *int            `json:"index,omitempty"`
	A     json.RawMessage `json:"a,omitempty"`
	B     json.RawMessage `json:"b,omitempty"`
	LenA  *int            `json:"len_a,omitempty"`
	LenB  *int            `json:"len_b,omitempty"`
}

// DiffResponse is the comparison result.
type DiffResponse struct {
	Identical   bool        `json:"identical"`
	Differences []DiffEntry `json:"differences"`
	Common      []string    `json:"common"`
	Unified     string      `json:"unified,omitempty"`
}

// ExtractRequest holds the document to list.
type ExtractRequest struct {
	Document json.RawMessage `json:"document"`
}

// ExtractResponse lists the field paths of a document.
type ExtractResponse struct {
	Fields []string `json:"fields"`
}

// PromptRequest is the input of POST /api/v1/prompts.
type PromptRequest struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind"`
	Fields   json.RawMessage `json:"fields"`
	Template bool            `json:"template"`
}

// PromptResponse carries the generated prompt.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// ListTypes returns the catalog.
func (h *Handler) ListTypes(w http.ResponseWriter, _ *http.Request) {
	catalog := h.workflow.Catalog()

	resp := TypesResponse{Types: make([]TypeSummary, 0, len(catalog.Types)), Socials: catalog.Socials}
	for _, st := range catalog.Types {
		resp.Types = append(resp.Types, TypeSummary{Name: st.Name, Description: st.Description, Example: st.Example})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetType returns the fields and template of one schema type.
func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	st, ok := h.workflow.Catalog().Lookup(r.PathValue("type"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown schema type", nil)
		return
	}

	resp := TypeResponse{
		TypeSummary: TypeSummary{Name: st.Name, Description: st.Description, Example: st.Example},
		Fields:      make([]FieldHint, 0, len(st.Fields)),
	}

	for _, path := range st.Fields {
		resp.Fields = append(resp.Fields, FieldHint{Path: path, Input: m.InputFor(path)})
	}

	for _, field := range st.TemplateFields() {
		resp.Template = append(resp.Template, FieldValue{Path: field.Path, Value: field.Value})
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeFields reads a flat fields object in document order.
func (h *Handler) decodeFields(raw json.RawMessage) (m.FieldMap, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	node, err := h.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	return adapter.FieldsFromNode(node)
}

// documentText accepts a document given inline or as a JSON string.
func documentText(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed, nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// CreateDocument builds a JSON-LD document from form fields.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	fields, err := h.decodeFields(req.Fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fields", err)
		return
	}

	result, err := h.workflow.Generate(r.Context(), domain.BuildArgs{
		Type:     req.Type,
		Fields:   fields,
		SameAs:   req.SameAs,
		Template: req.Template,
		Pretty:   req.Pretty,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("ETag", result.ETag)

	if r.Header.Get("If-None-Match") == result.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []domain.Warning{}
	}

	writeJSON(w, http.StatusOK, DocumentResponse{
		Document: result.JSON,
		JSON:     string(result.JSON),
		Warnings: warnings,
		ETag:     result.ETag,
	})
}

// Diff compares two documents.
func (h *Handler) Diff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := documentText(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed document A", err)
		return
	}

	b, err := documentText(req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed document B", err)
		return
	}

	result, err := h.workflow.Compare(r.Context(), domain.CompareArgs{A: a, B: b, Unified: req.Unified})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := DiffResponse{
		Identical:   result.Identical,
		Differences: make([]DiffEntry, 0, len(result.Differences)),
		Common:      make([]string, 0, len(result.Common)),
		Unified:     result.Unified,
	}

	for _, record := range result.Differences {
		entry, err := h.diffEntry(record)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp.Differences = append(resp.Differences, entry)
	}

	for _, path := range result.Common {
		resp.Common = append(resp.Common, path.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) diffEntry(record m.DiffRecord) (DiffEntry, error) {
	entry := DiffEntry{Kind: record.Kind.String(), Path: record.Path.String()}

	switch record.Kind {
	case m.ListLengthChanged:
		entry.LenA, entry.LenB = &record.LenA, &record.LenB
		return entry, nil
	case m.ListElementChanged:
		entry.Index = &record.Index
	}

	var err error
	if record.Kind != m.OnlyInB {
		if entry.A, err = h.encodeValue(record.A); err != nil {
			return DiffEntry{}, err
		}
	}

	if record.Kind != m.OnlyInA {
		if entry.B, err = h.encodeValue(record.B); err != nil {
			return DiffEntry{}, err
		}
	}

	return entry, nil
}

func (h *Handler) encodeValue(node m.Node) (json.RawMessage, error) {
	data, err := h.codec.Encode(node, false)
	if err != nil {
		return nil, fmt.Errorf("encode diff value: %w", err)
	}

	return data, nil
}

// Extract lists the field paths of a document.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := documentText(req.Document)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed document", err)
		return
	}

	result, err := h.workflow.Extract(r.Context(), domain.ExtractArgs{Document: doc})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{Fields: result.Fields})
}

// CreatePrompt writes a language model prompt from form fields.
func (h *Handler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !decodeBody(w, r, &req) {
		return
	}

	kind := domain.PromptGeneric
	if req.Kind != "" {
		var err error
		if kind, err = domain.ParsePromptKind(req.Kind); err != nil {
			writeError(w, http.StatusBadRequest, "invalid prompt kind", err)
			return
		}
	}

	fields, err := h.decodeFields(req.Fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fields", err)
		return
	}

	prompt, err := h.workflow.Prompt(r.Context(), domain.PromptArgs{
		Type:     req.Type,
		Kind:     kind,
		Fields:   fields,
		Template: req.Template,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PromptResponse{Prompt: prompt})
}
