// Package server exposes the ldform workflow and user administration over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"ldform.dev/pkg/ldform/internal/auth"
	m "ldform.dev/pkg/ldform/internal/model"
)

type contextKey string

const ctxSession contextKey = "session"

// SessionCookie carries the session token for browser clients.
const SessionCookie = "ldform_session"

// SessionFromContext returns the session stored by WithAuth.
func SessionFromContext(ctx context.Context) (m.Session, bool) {
	s, ok := ctx.Value(ctxSession).(m.Session)
	return s, ok
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session m.Session) context.Context {
	return context.WithValue(ctx, ctxSession, session)
}

// WithAuth is middleware that authenticates requests by bearer token or session cookie.
func (h *Handler) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.ExtractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}
		}

		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization", nil)
			return
		}

		claims, err := h.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token", err)
			return
		}

		session := m.Session{Username: claims.Username, Admin: claims.Admin}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireAdmin is middleware that rejects sessions without administrator rights.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		if !session.Admin {
			writeError(w, http.StatusForbidden, "administrator rights required", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithDefaults adds logging, panic recovery and, when compress is set, gzip
// response compression.
func WithDefaults(h http.Handler, compress bool) http.Handler {
	if compress {
		h = gzhttp.GzipHandler(h)
	}

	return withLogging(withRecovery(h))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		level := slog.LevelDebug
		if wrapped.status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if wrapped.status >= http.StatusBadRequest {
			level = slog.LevelInfo
		}

		slog.Log(r.Context(), level, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration", time.Since(start),
		)
	})
}

func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic in handler", "path", r.URL.Path, "panic", err, "stack", string(debug.Stack()))
				writeError(w, http.StatusInternalServerError, "internal server error", nil)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Chain combines multiple middleware; the first one runs outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}
