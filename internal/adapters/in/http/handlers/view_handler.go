// internal/adapters/in/http/handlers/view_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sprout/internal/adapters/in/http/middleware"
	query "sprout/internal/application/query"
)

// ViewHandler serves the four storefront views behind the single
// current-view selector: home, catalog, cart, help. There is no
// history stack; the client asks for exactly one view at a time.
//
// Mounted at "/" (home) and "/views/".
type ViewHandler struct {
	query *query.StorefrontQuery
}

func NewViewHandler(q *query.StorefrontQuery) http.Handler {
	return &ViewHandler{query: q}
}

func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if h.query == nil {
		writeErr(w, http.StatusInternalServerError, "view handler is not configured")
		return
	}

	path := trimPath(r.URL.Path)

	name := "home"
	if strings.HasPrefix(path, "/views/") {
		name = strings.TrimPrefix(path, "/views/")
	} else if path != "/" && path != "/views" {
		notFound(w)
		return
	}

	view, err := query.ParseView(name)
	if err != nil {
		if errors.Is(err, query.ErrUnknownView) {
			notFound(w)
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch view {
	case query.ViewHome:
		writeJSON(w, http.StatusOK, h.query.HomeView())
	case query.ViewCatalog:
		writeJSON(w, http.StatusOK, h.query.CatalogView())
	case query.ViewHelp:
		writeJSON(w, http.StatusOK, h.query.HelpView())
	case query.ViewCart:
		entry := middleware.SessionFromContext(r.Context())
		if entry == nil {
			writeErr(w, http.StatusServiceUnavailable, "no session")
			return
		}
		writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))
	default:
		notFound(w)
	}
}
