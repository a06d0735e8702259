package ports

import "context"

// SessionStore persists the binding between an opaque session id and a user
// id. A zero TTL configured on the implementation means sessions live until
// an explicit Delete.
type SessionStore interface {
	// Create stores a new session for userID and returns its opaque id.
	Create(ctx context.Context, userID string) (string, error)
	// Get resolves a session id to the bound user id, or
	// domain.ErrSessionNotFound when the session does not exist.
	Get(ctx context.Context, sid string) (string, error)
	// Delete invalidates the session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, sid string) error
}
