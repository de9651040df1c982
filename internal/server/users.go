package server

import (
	"net/http"
	"time"

	m "ldform.dev/pkg/ldform/internal/model"
)

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	Admin     bool   `json:"admin"`
}

// MeResponse describes the signed-in user.
type MeResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// UserResponse is one account in the admin listing.
type UserResponse struct {
	Name      string     `json:"name"`
	Admin     bool       `json:"is_admin"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateUserRequest is the body of POST /api/v1/admin/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// PasswordRequest is the body of PUT /api/v1/admin/users/{name}/password.
type PasswordRequest struct {
	Password string `json:"password"`
}

func userResponse(user m.User) UserResponse {
	resp := UserResponse{Name: user.Name, Admin: user.Admin}
	if !user.CreatedAt.IsZero() {
		created := user.CreatedAt.UTC()
		resp.CreatedAt = &created
	}

	return resp
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Login checks the credentials and starts a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := h.tokens.GenerateToken(session.Username, session.Admin)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	h.setSessionCookie(w, token)

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.tokens.TTL().Seconds()),
		Admin:     session.Admin,
	})
}

// Logout drops the session cookie. Bearer tokens stay valid until they expire.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// GetMe returns the signed-in user.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, MeResponse{Username: session.Username, Admin: session.Admin})
}

// ListUsers returns every account.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	users, err := h.accounts.List(r.Context(), session)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, userResponse(user))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateUser adds an account.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, _ := SessionFromContext(r.Context())

	user, err := h.accounts.Add(r.Context(), session, req.Username, req.Password, req.Admin)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse(user))
}

// ResetPassword sets a new password for another account.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, _ := SessionFromContext(r.Context())

	if err := h.accounts.ResetPassword(r.Context(), session, r.PathValue("name"), req.Password); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser removes another account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	if err := h.accounts.Delete(r.Context(), session, r.PathValue("name")); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
