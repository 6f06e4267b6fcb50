// internal/application/usecase/session_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sprout/internal/domain/identity"
	"sprout/internal/pkg/clock"
)

var (
	ErrSessionProviderNil = errors.New("session_usecase: identity provider is nil")
)

// DefaultSessionTTL is the inactivity window after which a session and
// its cart are evicted. Mirrors the "state resets on session end"
// lifecycle: eviction IS session end.
const DefaultSessionTTL = 2 * time.Hour

// SessionEntry pairs one anonymous session with its cart store.
type SessionEntry struct {
	Session identity.Session
	Store   *CartStore
}

// SessionUsecase owns the live session registry.
//
//   - one CartStore per session, created with the session
//   - sessions are anonymous: the identity provider mints a uid, the
//     registry mints the cookie-facing session id
//   - a provider error is fatal for that request (the caller renders
//     the terminal error view); nothing is registered on failure
type SessionUsecase struct {
	provider identity.Provider
	clock    clock.Clock
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*SessionEntry
}

func NewSessionUsecase(provider identity.Provider, clk clock.Clock, ttl time.Duration) *SessionUsecase {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUsecase{
		provider: provider,
		clock:    clk,
		ttl:      ttl,
		sessions: map[string]*SessionEntry{},
	}
}

// Ensure returns the live entry for sessionID, or establishes a new
// anonymous session when the id is empty, unknown, or expired. The
// bool result reports whether a new session was created (the caller
// must then set the cookie).
func (uc *SessionUsecase) Ensure(ctx context.Context, sessionID string) (*SessionEntry, bool, error) {
	if uc.provider == nil {
		return nil, false, ErrSessionProviderNil
	}

	now := uc.clock.Now()
	sid := strings.TrimSpace(sessionID)

	if sid != "" {
		uc.mu.Lock()
		if e, ok := uc.sessions[sid]; ok && now.Before(e.Session.ExpiresAt) {
			e.Session.ExpiresAt = now.Add(uc.ttl)
			uc.mu.Unlock()
			return e, false, nil
		}
		// expired entry: drop it before re-establishing
		delete(uc.sessions, sid)
		uc.mu.Unlock()
	}

	uid, err := uc.provider.EstablishAnonymous(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("session_usecase: establish anonymous session: %w", err)
	}

	e := &SessionEntry{
		Session: identity.Session{
			ID:        uuid.NewString(),
			UID:       uid,
			CreatedAt: now,
			ExpiresAt: now.Add(uc.ttl),
		},
		Store: NewCartStore(),
	}

	uc.mu.Lock()
	uc.sessions[e.Session.ID] = e
	uc.mu.Unlock()

	log.Printf("[session] established sid=%s uid=%s", e.Session.ID, uid)
	return e, true, nil
}

// Get returns the live, unexpired entry for sessionID, or nil.
func (uc *SessionUsecase) Get(sessionID string) *SessionEntry {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil
	}

	now := uc.clock.Now()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	e, ok := uc.sessions[sid]
	if !ok || !now.Before(e.Session.ExpiresAt) {
		return nil
	}
	return e
}

// EvictExpired drops every expired session and returns how many went.
func (uc *SessionUsecase) EvictExpired() int {
	now := uc.clock.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	n := 0
	for sid, e := range uc.sessions {
		if !now.Before(e.Session.ExpiresAt) {
			delete(uc.sessions, sid)
			n++
		}
	}
	return n
}

// Len returns the live session count (expired-but-unevicted included).
func (uc *SessionUsecase) Len() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.sessions)
}

// Janitor evicts expired sessions every interval until ctx is done.
// Run it on its own goroutine.
func (uc *SessionUsecase) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := uc.EvictExpired(); n > 0 {
				log.Printf("[session] evicted %d expired session(s)", n)
			}
		}
	}
}
