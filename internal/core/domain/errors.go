package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound is returned when a session token is missing, has an
	// invalid signature, or no longer resolves to a live session.
	ErrSessionNotFound = errors.New("session not found")

	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrForbidden         = errors.New("access forbidden")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMissingFile         = errors.New("no file provided")
)

// FieldErrors maps field names to user-correctable validation messages. It is
// the error shape for every validation failure, including duplicate-key
// violations surfaced by the store after the application-level pre-check.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}
