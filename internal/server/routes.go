package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/auth"
	"ldform.dev/pkg/ldform/internal/domain"
)

const maxBodyBytes = 1 << 20

// Handler wraps dependencies for HTTP handlers.
type Handler struct {
	workflow     domain.Workflow
	accounts     domain.Accounts
	tokens       *auth.TokenService
	codec        adapter.DocumentCodec
	secureCookie bool
}

// NewHandler creates a new API handler.
func NewHandler(
	workflow domain.Workflow,
	accounts domain.Accounts,
	tokens *auth.TokenService,
	codec adapter.DocumentCodec,
	secureCookie bool,
) *Handler {
	return &Handler{
		workflow:     workflow,
		accounts:     accounts,
		tokens:       tokens,
		codec:        codec,
		secureCookie: secureCookie,
	}
}

// NewRouter creates the HTTP router with all routes registered.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.Handle("POST /api/v1/auth/logout", h.WithAuth(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /api/v1/me", h.WithAuth(http.HandlerFunc(h.GetMe)))

	// Catalog
	mux.Handle("GET /api/v1/types", h.WithAuth(http.HandlerFunc(h.ListTypes)))
	mux.Handle("GET /api/v1/types/{type}", h.WithAuth(http.HandlerFunc(h.GetType)))

	// Documents
	mux.Handle("POST /api/v1/documents", h.WithAuth(http.HandlerFunc(h.CreateDocument)))
	mux.Handle("POST /api/v1/diff", h.WithAuth(http.HandlerFunc(h.Diff)))
	mux.Handle("POST /api/v1/extract", h.WithAuth(http.HandlerFunc(h.Extract)))
	mux.Handle("POST /api/v1/prompts", h.WithAuth(http.HandlerFunc(h.CreatePrompt)))

	// User administration
	mux.Handle("GET /api/v1/admin/users", Chain(
		http.HandlerFunc(h.ListUsers),
		h.WithAuth,
		RequireAdmin,
	))
	mux.Handle("POST /api/v1/admin/users", Chain(
		http.HandlerFunc(h.CreateUser),
		h.WithAuth,
		RequireAdmin,
	))
	mux.Handle("PUT /api/v1/admin/users/{name}/password", Chain(
		http.HandlerFunc(h.ResetPassword),
		h.WithAuth,
		RequireAdmin,
	))
	mux.Handle("DELETE /api/v1/admin/users/{name}", Chain(
		http.HandlerFunc(h.DeleteUser),
		h.WithAuth,
		RequireAdmin,
	))

	return mux
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}

	writeJSON(w, status, resp)
}

var errorStatus = []struct {
	err    error
	status int
}{
	{adapter.ErrMalformedJSON, http.StatusBadRequest},
	{adapter.ErrNestingTooDeep, http.StatusBadRequest},
	{adapter.ErrInvalidFieldFile, http.StatusBadRequest},
	{domain.ErrMissingCredentials, http.StatusBadRequest},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrSelfModification, http.StatusForbidden},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrUserExists, http.StatusConflict},
	{domain.ErrLastAdmin, http.StatusConflict},
	{domain.ErrUnknownType, http.StatusUnprocessableEntity},
	{domain.ErrInvalidPath, http.StatusUnprocessableEntity},
	{domain.ErrStructuralConflict, http.StatusUnprocessableEntity},
	{domain.ErrReservedKey, http.StatusUnprocessableEntity},
	{domain.ErrDepthExceeded, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDocument, http.StatusUnprocessableEntity},
}

// writeDomainError maps workflow and account errors to a status code. The
// message is the matching sentinel's text; the details carry the full error.
func writeDomainError(w http.ResponseWriter, err error) {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		writeError(w, http.StatusBadRequest, "malformed document "+string(parseErr.Side), parseErr.Err)
		return
	}

	for _, entry := range errorStatus {
		if errors.Is(err, entry.err) {
			writeError(w, entry.status, entry.err.Error(), err)
			return
		}
	}

	slog.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error", nil)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}

	return true
}
