package model

import "time"

// User is an account that may sign in to the forms.
type User struct {
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Session identifies the signed-in user of a request or command. It is passed
// explicitly instead of living in process-wide state.
type Session struct {
	Username string
	Admin    bool
	// System marks local tooling (the CLI) acting with full rights.
	System bool
}

// SystemSession is the session used by local administrative commands.
func SystemSession() Session {
	return Session{Admin: true, System: true}
}
