// internal/application/query/storefront_query.go
package query

import (
	"errors"
	"strings"

	cartdom "sprout/internal/domain/cart"
	"sprout/internal/domain/catalog"
	"sprout/internal/domain/faq"
)

var (
	ErrUnknownView = errors.New("storefront_query: unknown view")
)

// View is the single current-view selector. There is no history stack
// and no deep linking; the UI is always on exactly one of these.
type View string

const (
	ViewHome    View = "home"
	ViewCatalog View = "catalog"
	ViewCart    View = "cart"
	ViewHelp    View = "help"
)

// ParseView maps a path segment onto a View.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewHome:
		return ViewHome, nil
	case ViewCatalog:
		return ViewCatalog, nil
	case ViewCart:
		return ViewCart, nil
	case ViewHelp:
		return ViewHelp, nil
	default:
		return "", ErrUnknownView
	}
}

// featuredCount is how many products the home view spotlights.
const featuredCount = 3

// HomeViewDTO is the landing page payload.
type HomeViewDTO struct {
	View         View              `json:"view"`
	StoreName    string            `json:"storeName"`
	Tagline      string            `json:"tagline"`
	Featured     []catalog.Product `json:"featured"`
	ProductCount int               `json:"productCount"`
	Revision     int64             `json:"revision"`
}

// CatalogViewDTO is the full product grid payload.
type CatalogViewDTO struct {
	View     View              `json:"view"`
	Products []catalog.Product `json:"products"`
	Revision int64             `json:"revision"`
}

// CartViewDTO is the cart page payload. Total is derived on every
// render, never stored.
type CartViewDTO struct {
	View      View           `json:"view"`
	Lines     []cartdom.Line `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Total     float64        `json:"total"`
}

// HelpViewDTO is the FAQ page payload. An empty Entries slice is the
// degraded state when the faqs feed never delivered.
type HelpViewDTO struct {
	View     View        `json:"view"`
	Entries  []faq.Entry `json:"entries"`
	Revision int64       `json:"revision"`
}

// StorefrontQuery renders view payloads from the current feed
// snapshots and a session's cart store. It holds no state of its own;
// every call reads the feeds' latest atomic snapshot.
type StorefrontQuery struct {
	StoreName string
	Tagline   string

	Plants catalog.Feed
	FAQs   faq.Feed
}

func NewStorefrontQuery(storeName, tagline string, plants catalog.Feed, faqs faq.Feed) *StorefrontQuery {
	return &StorefrontQuery{
		StoreName: storeName,
		Tagline:   tagline,
		Plants:    plants,
		FAQs:      faqs,
	}
}

// HomeView spotlights the first few catalog entries.
func (q *StorefrontQuery) HomeView() HomeViewDTO {
	snap := q.plantsSnapshot()
	featured := snap.Products
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	return HomeViewDTO{
		View:         ViewHome,
		StoreName:    q.StoreName,
		Tagline:      q.Tagline,
		Featured:     featured,
		ProductCount: len(snap.Products),
		Revision:     snap.Revision,
	}
}

// CatalogView renders the whole current plants snapshot.
func (q *StorefrontQuery) CatalogView() CatalogViewDTO {
	snap := q.plantsSnapshot()
	return CatalogViewDTO{
		View:     ViewCatalog,
		Products: snap.Products,
		Revision: snap.Revision,
	}
}

// CartView renders the given session's cart.
func (q *StorefrontQuery) CartView(store CartReader) CartViewDTO {
	lines := store.Lines()
	count := 0
	for _, ln := range lines {
		count += ln.Quantity
	}
	return CartViewDTO{
		View:      ViewCart,
		Lines:     lines,
		ItemCount: count,
		Total:     store.Total(),
	}
}

// HelpView renders the current faqs snapshot (possibly empty).
func (q *StorefrontQuery) HelpView() HelpViewDTO {
	var snap faq.Snapshot
	if q.FAQs != nil {
		snap = q.FAQs.Current()
	}
	if snap.Entries == nil {
		snap.Entries = []faq.Entry{}
	}
	return HelpViewDTO{
		View:     ViewHelp,
		Entries:  snap.Entries,
		Revision: snap.Revision,
	}
}

func (q *StorefrontQuery) plantsSnapshot() catalog.Snapshot {
	var snap catalog.Snapshot
	if q.Plants != nil {
		snap = q.Plants.Current()
	}
	if snap.Products == nil {
		snap.Products = []catalog.Product{}
	}
	return snap
}

// CartReader is the read side of a session cart store.
type CartReader interface {
	Lines() []cartdom.Line
	Total() float64
}
