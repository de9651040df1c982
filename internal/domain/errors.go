package domain

import (
	"errors"
	"fmt"

	m "ldform.dev/pkg/ldform/internal/model"
)

var (
	// ErrInvalidPath reports a malformed path string.
	ErrInvalidPath = errors.New("invalid path")
	// ErrStructuralConflict reports a path that needs a container kind other
	// than the one already built at the same prefix.
	ErrStructuralConflict = errors.New("structural conflict")
	// ErrInvalidDocument reports a document root that is not a mapping.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrDepthExceeded reports nesting deeper than the configured limit.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrUnknownType reports a schema type missing from the catalog.
	ErrUnknownType = errors.New("unknown schema type")
	// ErrReservedKey reports a field that tries to set @context or @type.
	ErrReservedKey = errors.New("reserved key")
)

// ConflictError names the prefix where two paths disagree about the node kind.
type ConflictError struct {
	Prefix string
	Want   m.Kind
	Found  m.Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("structural conflict at %q: expected %s, found %s", e.Prefix, e.Want, e.Found)
}

// Unwrap lets errors.Is match ErrStructuralConflict.
func (e *ConflictError) Unwrap() error {
	return ErrStructuralConflict
}

// DocumentSide names one of the two inputs of a comparison.
type DocumentSide string

// Comparison sides.
const (
	SideA DocumentSide = "A"
	SideB DocumentSide = "B"
)

// ParseError reports that one comparison input is not valid JSON. It is kept
// apart from ErrInvalidDocument, which is about well-formed input of the wrong shape.
type ParseError struct {
	Side DocumentSide
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Side, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidCredentials reports an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMissingCredentials reports an empty username or password.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrForbidden reports an action that needs an administrator.
	ErrForbidden = errors.New("administrator rights required")
	// ErrUserExists reports a duplicate user name.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound reports an unknown user name.
	ErrUserNotFound = errors.New("user not found")
	// ErrLastAdmin reports an attempt to remove the only administrator.
	ErrLastAdmin = errors.New("cannot remove the last administrator")
	// ErrSelfModification reports an administrator acting on their own account
	// through the admin surface.
	ErrSelfModification = errors.New("cannot modify the signed-in account")
)
