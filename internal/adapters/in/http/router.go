// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"sprout/internal/adapters/in/http/handlers"
	"sprout/internal/adapters/in/http/middleware"
	query "sprout/internal/application/query"
	usecase "sprout/internal/application/usecase"
	"sprout/internal/domain/catalog"
)

// RouterDeps collects everything injected from the DI container.
type RouterDeps struct {
	Storefront *query.StorefrontQuery
	Plants     catalog.Feed
	Sessions   *usecase.SessionUsecase
	Fatal      *usecase.FatalState

	// optional: nil disables the route
	InquiryUC   *usecase.InquiryUsecase
	PlantImages handlers.PlantImageOpener
}

// NewRouter sets up HTTP routing for the storefront.
// Everything except /healthz and /assets runs behind the session gate.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on, no session)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	session := &middleware.Session{Sessions: deps.Sessions, Fatal: deps.Fatal}

	if deps.Storefront != nil {
		views := handlers.NewViewHandler(deps.Storefront)
		mux.Handle("/", session.Handler(views))
		mux.Handle("/views/", session.Handler(views))
	}

	if deps.Storefront != nil && deps.Plants != nil {
		cart := handlers.NewCartHandler(deps.Storefront, deps.Plants)
		mux.Handle("/cart", session.Handler(cart))
		mux.Handle("/cart/", session.Handler(cart))
	}

	if deps.InquiryUC != nil {
		mux.Handle("/help/contact", session.Handler(handlers.NewContactHandler(deps.InquiryUC)))
	}

	if deps.PlantImages != nil {
		mux.Handle("/assets/plants/", handlers.NewAssetsHandler(deps.PlantImages))
	}

	return mux
}
