// internal/adapters/in/http/middleware/session.go
package middleware

import (
	"context"
	"log"
	"net/http"

	usecase "sprout/internal/application/usecase"
)

// SessionCookie carries the storefront session id. The cookie holds
// only the opaque session id; everything else lives server-side in the
// session registry.
const SessionCookie = "sprout_session"

// context key uses a private type instead of string (SA1029).
type ctxKey struct{ name string }

var ctxKeySession = ctxKey{name: "session"}

// SessionFromContext returns the session entry attached by Session, or
// nil when the middleware did not run.
func SessionFromContext(ctx context.Context) *usecase.SessionEntry {
	e, _ := ctx.Value(ctxKeySession).(*usecase.SessionEntry)
	return e
}

// fatalMessage is the single static terminal error. No retry hints by
// design: the fatal state never recovers within a process.
const fatalMessage = "The plant shop is unavailable right now."

// WriteFatal renders the terminal error view.
func WriteFatal(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(`{"view":"error","message":"` + fatalMessage + `"}`))
}

// Session ensures every request runs inside an anonymous session:
//
//   - tripped fatal latch -> terminal error view, nothing else runs
//   - missing/expired session -> establish anonymous identity, set cookie
//   - identity establishment failure -> fatal for this request
type Session struct {
	Sessions *usecase.SessionUsecase
	Fatal    *usecase.FatalState
}

func (m *Session) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Sessions == nil {
			http.Error(w, "session middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		if m.Fatal != nil {
			if reason, failed := m.Fatal.Failed(); failed {
				log.Printf("[session] fatal state (%s); rendering error view path=%s", reason, r.URL.Path)
				WriteFatal(w)
				return
			}
		}

		sid := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			sid = c.Value
		}

		entry, created, err := m.Sessions.Ensure(r.Context(), sid)
		if err != nil {
			// identity gate failure is fatal: block rendering entirely
			log.Printf("[session] establish failed path=%s err=%v", r.URL.Path, err)
			WriteFatal(w)
			return
		}

		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    entry.Session.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ctxKeySession, entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
