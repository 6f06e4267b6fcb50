// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"sprout/internal/adapters/in/http/middleware"
	query "sprout/internal/application/query"
	usecase "sprout/internal/application/usecase"
	"sprout/internal/domain/catalog"
)

// CartHandler serves the session cart.
//
//	GET    /cart               current cart view
//	DELETE /cart               clear
//	POST   /cart/items         add one of {productId} (snapshot at add time)
//	PUT    /cart/items/{id}    set quantity absolutely ({quantity} < 1 removes)
//	DELETE /cart/items/{id}    remove
//	POST   /cart/checkout      stub (acknowledges, changes nothing)
//	GET    /cart/watch         SSE stream, re-renders on every mutation
//
// The session middleware guarantees a live session entry in context.
type CartHandler struct {
	query  *query.StorefrontQuery
	plants catalog.Feed
}

func NewCartHandler(q *query.StorefrontQuery, plants catalog.Feed) http.Handler {
	return &CartHandler{query: q, plants: plants}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.query == nil || h.plants == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	entry := middleware.SessionFromContext(r.Context())
	if entry == nil {
		writeErr(w, http.StatusServiceUnavailable, "no session")
		return
	}

	path := trimPath(r.URL.Path)

	switch {
	case path == "/cart" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))

	case path == "/cart" && r.Method == http.MethodDelete:
		entry.Store.ClearCart()
		writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))

	case path == "/cart/items" && r.Method == http.MethodPost:
		h.addItem(w, r, entry)

	case strings.HasPrefix(path, "/cart/items/"):
		productID := strings.TrimPrefix(path, "/cart/items/")
		switch r.Method {
		case http.MethodPut:
			h.setQuantity(w, r, entry, productID)
		case http.MethodDelete:
			entry.Store.RemoveFromCart(productID)
			writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))
		default:
			methodNotAllowed(w)
		}

	case path == "/cart/checkout" && r.Method == http.MethodPost:
		// checkout is a stub: no payment, no order, cart untouched
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "unavailable",
			"message": "Checkout isn't open yet. Your cart is kept for this visit.",
		})

	case path == "/cart/watch" && r.Method == http.MethodGet:
		h.watch(w, r, entry)

	default:
		if path == "/cart" || path == "/cart/items" || path == "/cart/checkout" || path == "/cart/watch" {
			methodNotAllowed(w)
			return
		}
		notFound(w)
	}
}

// addItem captures the product snapshot from the CURRENT catalog and
// adds it to the cart. Lines already in the cart keep their original
// snapshot even when the catalog entry has changed since.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, entry *usecase.SessionEntry) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	pid := strings.TrimSpace(req.ProductID)
	if pid == "" {
		writeErr(w, http.StatusBadRequest, "productId is required")
		return
	}

	p, ok := findProduct(h.plants.Current(), pid)
	if !ok {
		writeErr(w, http.StatusNotFound, "unknown product: "+pid)
		return
	}

	entry.Store.AddToCart(p)
	writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))
}

func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request, entry *usecase.SessionEntry, productID string) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	// qty < 1 removes by policy; absent id is a no-op, never an error
	entry.Store.UpdateQuantity(strings.TrimSpace(productID), req.Quantity)
	writeJSON(w, http.StatusOK, h.query.CartView(entry.Store))
}

// watch streams the cart view over SSE, re-rendering after every store
// mutation. The store subscription is cancelled exactly once when the
// client goes away.
func (h *CartHandler) watch(w http.ResponseWriter, r *http.Request, entry *usecase.SessionEntry) {
	fl, ok := w.(http.Flusher)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func() {
		b, err := json.Marshal(h.query.CartView(entry.Store))
		if err != nil {
			log.Printf("[cart_handler] watch marshal: %v", err)
			return
		}
		_, _ = fmt.Fprintf(w, "data: %s\n\n", b)
		fl.Flush()
	}

	// coalesce bursts; the latest render always reflects current state
	events := make(chan struct{}, 1)
	cancel := entry.Store.Subscribe(func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	defer cancel()

	send()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-events:
			send()
		}
	}
}

func findProduct(snap catalog.Snapshot, productID string) (catalog.Product, bool) {
	for _, p := range snap.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return catalog.Product{}, false
}
