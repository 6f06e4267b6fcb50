// internal/adapters/in/http/handlers/assets_handler.go
package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"sprout/internal/adapters/out/gcs"
)

// PlantImageOpener is the read port for plant image assets.
type PlantImageOpener interface {
	Open(ctx context.Context, object string) (io.ReadCloser, string, error)
}

// AssetsHandler streams plant images for catalog entries whose
// imageUrl is bucket-relative.
//
//	GET /assets/plants/{object}
type AssetsHandler struct {
	images PlantImageOpener
}

func NewAssetsHandler(images PlantImageOpener) http.Handler {
	return &AssetsHandler{images: images}
}

func (h *AssetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if h.images == nil {
		writeErr(w, http.StatusServiceUnavailable, "assets are not configured")
		return
	}

	object := strings.TrimPrefix(r.URL.Path, "/assets/plants/")
	rd, contentType, err := h.images.Open(r.Context(), object)
	if err != nil {
		if errors.Is(err, gcs.ErrImageNotFound) {
			notFound(w)
			return
		}
		log.Printf("[assets_handler] open %q: %v", object, err)
		writeErr(w, http.StatusInternalServerError, "asset read failed")
		return
	}
	defer rd.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, rd)
}
