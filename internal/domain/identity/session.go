// internal/domain/identity/session.go
package identity

import (
	"context"
	"time"
)

// Session is one anonymous UI session.
// UID is the anonymous user record behind the session; the session id
// is what travels in the cookie. Cart state is keyed by Session.ID and
// dies with the session.
type Session struct {
	ID        string
	UID       string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Provider establishes anonymous identities with the external auth
// collaborator. The storefront treats it as a gate: success -> ready,
// error -> failed (fatal, no retry).
type Provider interface {
	// EstablishAnonymous creates a new anonymous user and returns its uid.
	EstablishAnonymous(ctx context.Context) (string, error)
}
