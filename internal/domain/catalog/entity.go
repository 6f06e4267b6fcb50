// internal/domain/catalog/entity.go
package catalog

// Product is one plant in the storefront catalog.
//
// The catalog collection is owned by the content pipeline; this service
// only reads snapshots. Documents carry an opaque stable docId plus
// arbitrary fields, so decoding is tolerant: missing or mistyped fields
// fall back to zero values instead of failing the whole snapshot.
type Product struct {
	// ID is the Firestore docId (source of truth, not stored in the doc).
	ID string `json:"id" firestore:"-"`

	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Price       float64 `json:"price" firestore:"price"`
	ImageURL    string  `json:"imageUrl" firestore:"imageUrl"`
}

// ProductFromDoc builds a Product from a raw document.
// Unknown fields are ignored; known fields with the wrong type are
// treated as absent (schema drift in the content collection must not
// take the catalog down).
func ProductFromDoc(id string, data map[string]any) Product {
	return Product{
		ID:          id,
		Name:        stringField(data, "name"),
		Description: stringField(data, "description"),
		Price:       numberField(data, "price"),
		ImageURL:    stringField(data, "imageUrl"),
	}
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// numberField accepts the numeric types Firestore actually delivers
// (float64 for doubles, int64 for integers). Anything else counts as 0.
func numberField(data map[string]any, key string) float64 {
	if data == nil {
		return 0
	}
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
