// internal/adapters/out/firebase/anonymous_provider_fb.go
package firebase

import (
	"context"
	"errors"
	"fmt"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
)

// AnonymousProviderFB implements identity.Provider with Firebase Auth.
//
// An anonymous session is backed by a real user record with no sign-in
// properties, created through the admin SDK. The storefront never
// reads anything back from the record; only the uid travels into the
// session.
type AnonymousProviderFB struct {
	Auth *fbauth.Client
}

func NewAnonymousProviderFB(auth *fbauth.Client) *AnonymousProviderFB {
	return &AnonymousProviderFB{Auth: auth}
}

// EstablishAnonymous creates an anonymous user and returns its uid.
func (p *AnonymousProviderFB) EstablishAnonymous(ctx context.Context) (string, error) {
	if p == nil || p.Auth == nil {
		return "", errors.New("anonymous_provider_fb: auth client is nil")
	}

	// no properties = anonymous user record
	u, err := p.Auth.CreateUser(ctx, (&fbauth.UserToCreate{}))
	if err != nil {
		return "", fmt.Errorf("anonymous_provider_fb: create user: %w", err)
	}

	log.Printf("[identity] anonymous user created uid=%s", u.UID)
	return u.UID, nil
}
