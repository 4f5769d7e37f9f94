package domain

import (
	"context"
	"time"
)

// Session is the server-side record binding a session id to an account.
// The client-held token only references it, so deleting the record is an
// effective revocation regardless of the token's own expiry.
type Session struct {
	ID        string      `json:"id"`
	AccountID string      `json:"account_id"`
	Kind      AccountKind `json:"kind"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type SessionStore interface {
	Create(ctx context.Context, session *Session) error
	// Get returns ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*Session, error)
	// Delete is idempotent; deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
